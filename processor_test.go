package markchain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recordingLogger collects debug messages.
type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Debug(msg string, args ...any) {
	r.messages = append(r.messages, msg+" "+fmt.Sprint(args...))
}

func TestProcessor_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []Option
		text  string
		chain func() Handler
		want  string
	}{
		{
			name:  "CRLF input and trailing newline",
			text:  "Object Recursion\r\nThis is a concept came up in 1998\r\n",
			chain: func() Handler { return NewUpper(NewLineBreak(NewTagWrapper(TagHTML, true, NewTagWrapper(TagBody, true, nil)))) },
			want: "<html>\n" +
				"    <body>\n" +
				"        OBJECT RECURSION<br/>\n" +
				"        THIS IS A CONCEPT CAME UP IN 1998<br/>\n" +
				"    </body>\n" +
				"</html>",
		},
		{
			name:  "empty text",
			text:  "",
			chain: func() Handler { return NewTagWrapper(TagP, false, nil) },
			want:  "<p>\n\n</p>",
		},
		{
			name:  "highlights off keeps syntax",
			text:  "==x==",
			chain: func() Handler { return NewUpper(nil) },
			want:  "==X==",
		},
		{
			name:  "highlights on survive case folding",
			opts:  []Option{WithHighlights()},
			text:  "==x==",
			chain: func() Handler { return NewUpper(NewIndent(nil)) },
			want:  "    <mark>X</mark>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewProcessor(tt.opts...)
			got, err := p.Process(context.Background(), Input{Text: tt.text, Chain: tt.chain()})
			if err != nil {
				t.Fatalf("Process() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Process() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessor_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil chain", func(t *testing.T) {
		t.Parallel()

		_, err := NewProcessor().Process(context.Background(), Input{Text: "x"})
		if !errors.Is(err, ErrNilHandler) {
			t.Errorf("Process() error = %v, want ErrNilHandler", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewProcessor().Process(ctx, Input{Text: "x", Chain: NewUpper(nil)})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Process() error = %v, want context.Canceled", err)
		}
	})

	t.Run("chain error wrapped", func(t *testing.T) {
		t.Parallel()

		_, err := NewProcessor().Process(context.Background(), Input{
			Text:  "x",
			Chain: NewTagWrapper(Tag("div"), false, nil),
		})
		if !errors.Is(err, ErrUnknownTag) {
			t.Errorf("Process() error = %v, want ErrUnknownTag", err)
		}
	})
}

func TestProcessor_Logger(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	p := NewProcessor(WithLogger(logger))

	chain := NewUpper(NewTagWrapper(TagP, true, nil))
	if _, err := p.Process(context.Background(), Input{Text: "a\nb", Chain: chain}); err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}

	if len(logger.messages) != 2 {
		t.Fatalf("got %d log messages, want 2: %v", len(logger.messages), logger.messages)
	}
	if !strings.HasPrefix(logger.messages[0], "chain start") {
		t.Errorf("first message = %q", logger.messages[0])
	}
	if !strings.Contains(logger.messages[1], "upper > tag(p) > indent") {
		t.Errorf("second message = %q, want handler list", logger.messages[1])
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithLogger", func() { WithLogger(nil) }},
		{"WithPreprocessor", func() { WithPreprocessor(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Errorf("%s(nil) did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	got, err := Render("hi\n", NewTagWrapper(TagH1, false, nil))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "<h1>\nhi\n</h1>" {
		t.Errorf("Render() = %q", got)
	}
}
