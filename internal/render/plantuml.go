package render

import (
	"fmt"
	"strings"

	"github.com/flowlens/flowlens/internal/flow"
)

// PlantUML encodes the diagram as a PlantUML deployment diagram.
type PlantUML struct{}

func (PlantUML) Header(label string) string {
	var b strings.Builder
	b.WriteString("@startuml\n")
	if label != "" {
		fmt.Fprintf(&b, "title %s\n", plantUMLEscape(label))
	}
	b.WriteString("skinparam defaultTextAlignment left\nskinparam shadowing false")
	return b.String()
}

func (PlantUML) Node(n DiagramNode) string {
	id := safeID(n.ID)

	lines := []string{fmt.Sprintf("%s <b>%s</b>", n.Icon, plantUMLEscape(n.Label)), plantUMLEscape(n.Type)}
	for _, inner := range n.InnerNodes {
		lines = append(lines, "....", "<i>"+plantUMLEscape(inner.Label)+"</i>")
		for _, content := range inner.Content {
			lines = append(lines, plantUMLEscape(content))
		}
	}
	body := strings.Join(lines, `\n`)

	color := n.Color
	if c, ok := diffColors[n.DiffStatus]; ok {
		color = c
	}
	return fmt.Sprintf("%s \"%s\" as %s %s", plantUMLShape(n.Kind), body, id, color)
}

func (PlantUML) Transition(t flow.Transition) string {
	from, to := safeID(t.From), safeID(t.To)
	arrow := "-->"
	if t.Fault {
		arrow = "..>"
	}
	if t.Label != "" {
		return fmt.Sprintf("%s %s %s : %s", from, arrow, to, plantUMLEscape(t.Label))
	}
	return fmt.Sprintf("%s %s %s", from, arrow, to)
}

func (PlantUML) Footer() string { return "@enduml" }

func plantUMLShape(kind flow.Kind) string {
	switch kind {
	case flow.KindStart:
		return "circle"
	case flow.KindDecision:
		return "hexagon"
	default:
		return "card"
	}
}

func plantUMLEscape(s string) string {
	r := strings.NewReplacer(`"`, "'", `\`, "/")
	return r.Replace(s)
}
