package render

import (
	"strings"

	"github.com/flowlens/flowlens/internal/flow"
)

// Generate runs the shared traversal over one parsed flow and delegates text
// encoding to the strategy: header, every node in canonical order, every
// transition in emission order, footer. Empty sections are omitted from the
// join. Rendering is total over a well-formed ParsedFlow.
func Generate(pf *flow.ParsedFlow, s Strategy, opts Options) string {
	var sections []string
	push := func(text string) {
		if text != "" {
			sections = append(sections, text)
		}
	}

	push(s.Header(pf.Label))
	for _, node := range Project(pf, opts) {
		push(s.Node(node))
	}
	for _, t := range pf.Transitions {
		push(s.Transition(t))
	}
	push(s.Footer())

	return strings.Join(sections, "\n") + "\n"
}

// Syntax names a built-in rendering strategy.
type Syntax string

const (
	SyntaxMermaid  Syntax = "mermaid"
	SyntaxPlantUML Syntax = "plantuml"
	SyntaxDot      Syntax = "dot"
)

// StrategyFor returns the built-in strategy for the given syntax, defaulting
// to Mermaid for anything unrecognized.
func StrategyFor(syntax Syntax) Strategy {
	switch syntax {
	case SyntaxPlantUML:
		return PlantUML{}
	case SyntaxDot:
		return Dot{}
	default:
		return Mermaid{}
	}
}
