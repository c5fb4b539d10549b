package render

import (
	"fmt"
	"strings"

	"github.com/flowlens/flowlens/internal/compare"
	"github.com/flowlens/flowlens/internal/flow"
)

// Mermaid encodes the diagram as a Mermaid flowchart.
type Mermaid struct{}

func (Mermaid) Header(label string) string {
	var b strings.Builder
	b.WriteString("flowchart TD")
	if label != "" {
		fmt.Fprintf(&b, "\n    %%%% %s", label)
	}
	return b.String()
}

func (Mermaid) Node(n DiagramNode) string {
	id := safeID(n.ID)

	lines := []string{fmt.Sprintf("%s <b>%s</b>", n.Icon, mermaidEscape(n.Label))}
	lines = append(lines, mermaidEscape(n.Type))
	for _, inner := range n.InnerNodes {
		lines = append(lines, "<i>"+mermaidEscape(inner.Label)+"</i>")
		for _, content := range inner.Content {
			lines = append(lines, mermaidEscape(content))
		}
	}
	body := strings.Join(lines, "<br/>")

	open, closing := mermaidShape(n.Kind)
	cls := mermaidClass(n)
	return fmt.Sprintf("    %s%s\"%s\"%s:::%s", id, open, body, closing, cls)
}

func (Mermaid) Transition(t flow.Transition) string {
	from, to := safeID(t.From), safeID(t.To)
	if t.Fault {
		if t.Label == "" {
			return fmt.Sprintf("    %s -.-> %s", from, to)
		}
		return fmt.Sprintf("    %s -. %s .-> %s", from, mermaidEscape(t.Label), to)
	}
	if t.Label != "" {
		return fmt.Sprintf("    %s -->|%s| %s", from, mermaidEscape(t.Label), to)
	}
	return fmt.Sprintf("    %s --> %s", from, to)
}

// Footer emits one classDef per node kind plus the three diff highlight
// classes, which win over the kind color when applied.
func (Mermaid) Footer() string {
	var b strings.Builder
	for _, kind := range []flow.Kind{
		flow.KindStart, flow.KindApexPluginCall, flow.KindActionCall, flow.KindAssignment,
		flow.KindCollectionProcessor, flow.KindCustomError, flow.KindDecision, flow.KindLoop,
		flow.KindOrchestratedStage, flow.KindRecordCreate, flow.KindRecordDelete,
		flow.KindRecordLookup, flow.KindRecordRollback, flow.KindRecordUpdate, flow.KindScreen,
		flow.KindStep, flow.KindSubflow, flow.KindTransform, flow.KindWait,
	} {
		meta := kindMetaTable[kind]
		fmt.Fprintf(&b, "    classDef %s fill:%s,color:#fff\n", kindClass(kind), meta.Color)
	}
	fmt.Fprintf(&b, "    classDef added fill:%s,stroke:#166534,color:#fff\n", diffColors[compare.StatusAdded])
	fmt.Fprintf(&b, "    classDef deleted fill:%s,stroke:#991b1b,color:#fff,stroke-dasharray:5 5\n", diffColors[compare.StatusDeleted])
	fmt.Fprintf(&b, "    classDef modified fill:%s,stroke:#854d0e,color:#000", diffColors[compare.StatusModified])
	return b.String()
}

// mermaidShape returns the bracket pair for a node kind.
func mermaidShape(kind flow.Kind) (string, string) {
	switch kind {
	case flow.KindStart:
		return "((", "))"
	case flow.KindDecision:
		return "{", "}"
	case flow.KindLoop:
		return "[[", "]]"
	case flow.KindWait:
		return "([", "])"
	case flow.KindScreen:
		return "[/", "/]"
	case flow.KindCustomError:
		return "[[", "]]"
	default:
		return "[", "]"
	}
}

func mermaidClass(n DiagramNode) string {
	switch n.DiffStatus {
	case compare.StatusAdded:
		return "added"
	case compare.StatusDeleted:
		return "deleted"
	case compare.StatusModified:
		return "modified"
	default:
		return kindClass(n.Kind)
	}
}

func kindClass(kind flow.Kind) string {
	return "k_" + string(kind)
}

// mermaidEscape neutralizes characters Mermaid treats as syntax inside a
// quoted label.
func mermaidEscape(s string) string {
	r := strings.NewReplacer(
		`"`, "#quot;",
		"{", "#123;",
		"}", "#125;",
		"|", "#124;",
	)
	return r.Replace(s)
}
