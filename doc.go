// Package markchain transforms multi-line text through a chain of handlers
// that wrap each other like nested recursive calls.
//
// # Quick Start
//
// Build a chain by nesting constructors, then run it over a letter:
//
//	chain := markchain.NewUpper(
//	    markchain.NewLineBreak(
//	        markchain.NewTagWrapper(markchain.TagHTML, true,
//	            markchain.NewTagWrapper(markchain.TagBody, true, nil))))
//
//	letter := markchain.NewLetter("Object Recursion\nThis is a concept came up in 1998")
//	if err := markchain.Handle(chain, letter); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(letter)
//
// Output:
//
//	<html>
//	    <body>
//	        OBJECT RECURSION<br/>
//	        THIS IS A CONCEPT CAME UP IN 1998<br/>
//	    </body>
//	</html>
//
// # Handler Order
//
// Handle calls PreHandle, then the successor chain, then PostHandle. For a
// chain H1 -> H2 -> H3 the steps run as:
//
//	H1.pre, H2.pre, H3.pre, H3.post, H2.post, H1.post
//
// Content handlers (Upper, Lower, LineBreak, Markdown) work in PreHandle so
// they only see the original text. Wrapping handlers (Indent, TagWrapper)
// work in PostHandle so they wrap everything produced inside them. A
// TagWrapper created with indent=true owns an Indent successor, which is
// why each tag level above adds one indent level.
//
// # Single Use
//
// A Letter is mutated in place and none of the handlers are idempotent:
// running a chain twice would stack indents, repeat break markers and
// re-wrap tags. Handle therefore refuses a letter it has already processed
// (ErrLetterHandled). The chain itself can be reused with a new Letter.
//
// # Declarative Chains
//
// Chains can also be described as data, e.g. from a config file:
//
//	chain, err := markchain.BuildChain(
//	    markchain.Step{Kind: markchain.StepUpper},
//	    markchain.Step{Kind: markchain.StepBreak},
//	    markchain.Step{Kind: markchain.StepTag, Tag: "html"},
//	    markchain.Step{Kind: markchain.StepTag, Tag: "body"},
//	)
//
// # Processor
//
// Processor wraps the whole flow for raw input: it normalizes line endings,
// drops a final newline, optionally converts ==text== highlights, runs the
// chain and returns the rendered string.
//
//	p := markchain.NewProcessor(markchain.WithHighlights())
//	out, err := p.Process(ctx, markchain.Input{Text: text, Chain: chain})
package markchain
