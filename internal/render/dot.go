package render

import (
	"fmt"
	"strings"

	"github.com/flowlens/flowlens/internal/flow"
)

// Dot encodes the diagram as Graphviz DOT text.
type Dot struct{}

func (Dot) Header(label string) string {
	var b strings.Builder
	b.WriteString("digraph flow {\n")
	b.WriteString("    rankdir=TB;\n")
	if label != "" {
		fmt.Fprintf(&b, "    label=\"%s\";\n", dotEscape(label))
	}
	b.WriteString("    node [style=filled, fontcolor=white, fontname=\"Helvetica\"];")
	return b.String()
}

func (Dot) Node(n DiagramNode) string {
	id := safeID(n.ID)

	lines := []string{n.Label, "(" + n.Type + ")"}
	for _, inner := range n.InnerNodes {
		lines = append(lines, "["+inner.Label+"]")
		lines = append(lines, inner.Content...)
	}
	body := dotEscape(strings.Join(lines, "\n"))

	color := n.Color
	if c, ok := diffColors[n.DiffStatus]; ok {
		color = c
	}
	return fmt.Sprintf("    %s [label=\"%s\", shape=%s, fillcolor=\"%s\"];", id, body, dotShape(n.Kind), color)
}

func (Dot) Transition(t flow.Transition) string {
	from, to := safeID(t.From), safeID(t.To)
	var attrs []string
	if t.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=\"%s\"", dotEscape(t.Label)))
	}
	if t.Fault {
		attrs = append(attrs, "style=dashed", fmt.Sprintf("color=%q", faultEdgeColor))
	}
	if len(attrs) == 0 {
		return fmt.Sprintf("    %s -> %s;", from, to)
	}
	return fmt.Sprintf("    %s -> %s [%s];", from, to, strings.Join(attrs, ", "))
}

func (Dot) Footer() string { return "}" }

func dotShape(kind flow.Kind) string {
	switch kind {
	case flow.KindStart:
		return "circle"
	case flow.KindDecision:
		return "diamond"
	case flow.KindLoop:
		return "hexagon"
	case flow.KindWait:
		return "ellipse"
	default:
		return "box"
	}
}

// dotEscape escapes quotes and turns real newlines into DOT line breaks.
func dotEscape(s string) string {
	r := strings.NewReplacer(`"`, `\"`, "\n", `\n`)
	return r.Replace(s)
}
