// Package render turns a parsed Flow into diagram text. One shared traversal
// builds a render-facing projection of the graph; interchangeable strategies
// encode that projection into a concrete diagram syntax (Mermaid, PlantUML,
// Graphviz DOT) or a PNG image.
package render

import (
	"strings"

	"github.com/flowlens/flowlens/internal/compare"
	"github.com/flowlens/flowlens/internal/flow"
)

// DiagramNode is the render-facing projection of one flow node. It is built
// by the shared traversal, never by a strategy.
type DiagramNode struct {
	ID         string
	Label      string
	Kind       flow.Kind
	Type       string // human-readable kind name
	Icon       string
	Color      string
	DiffStatus compare.Status // "" when unchanged or not diffing
	InnerNodes []InnerNode
}

// InnerNode is a kind-specific detail block nested under a diagram node: a
// decision's rule conditions, a lookup's filter criteria, an update's field
// assignments.
type InnerNode struct {
	ID      string
	Type    string
	Label   string
	Content []string
}

// Strategy encodes the shared projection into one target syntax. All four
// primitives are pure text encoding; everything a node means is already
// decided by the time a strategy sees it.
type Strategy interface {
	Header(label string) string
	Node(n DiagramNode) string
	Transition(t flow.Transition) string
	Footer() string
}

// Options adjusts the shared traversal. Diff, when set, is projected onto
// each node's DiffStatus.
type Options struct {
	Diff compare.Result
}

// kindMeta carries the presentation attributes of each node kind.
type kindMeta struct {
	Name  string
	Icon  string
	Color string
}

var kindMetaTable = map[flow.Kind]kindMeta{
	flow.KindStart:               {"Start", "🏁", "#16a34a"},
	flow.KindApexPluginCall:      {"Apex Plugin Call", "⚙️", "#7c3aed"},
	flow.KindActionCall:          {"Action Call", "⚡", "#8b5cf6"},
	flow.KindAssignment:          {"Assignment", "✏️", "#f97316"},
	flow.KindCollectionProcessor: {"Collection Processor", "🧮", "#0d9488"},
	flow.KindCustomError:         {"Custom Error", "🚫", "#dc2626"},
	flow.KindDecision:            {"Decision", "🔀", "#f59e0b"},
	flow.KindLoop:                {"Loop", "🔁", "#0ea5e9"},
	flow.KindOrchestratedStage:   {"Orchestrated Stage", "🗂️", "#a855f7"},
	flow.KindRecordCreate:        {"Record Create", "➕", "#e11d48"},
	flow.KindRecordDelete:        {"Record Delete", "🗑️", "#9f1239"},
	flow.KindRecordLookup:        {"Record Lookup", "🔍", "#db2777"},
	flow.KindRecordRollback:      {"Record Rollback", "↩️", "#881337"},
	flow.KindRecordUpdate:        {"Record Update", "📝", "#be185d"},
	flow.KindScreen:              {"Screen", "🖥️", "#3b82f6"},
	flow.KindStep:                {"Step", "👣", "#94a3b8"},
	flow.KindSubflow:             {"Subflow", "📦", "#6366f1"},
	flow.KindTransform:           {"Transform", "🔄", "#14b8a6"},
	flow.KindWait:                {"Wait", "⏳", "#64748b"},
}

// faultEdgeColor marks fault-path edges in the DOT and PNG outputs.
const faultEdgeColor = "#dc2626"

// diffColors maps a change status to its highlight color, shared by all
// strategies so a review reads the same in every syntax.
var diffColors = map[compare.Status]string{
	compare.StatusAdded:    "#22c55e",
	compare.StatusDeleted:  "#ef4444",
	compare.StatusModified: "#eab308",
}

// safeID converts a node name to an identifier every target syntax accepts.
func safeID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", " ", "_")
	return r.Replace(id)
}
