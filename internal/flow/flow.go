// Package flow defines the typed data model for a parsed Salesforce Flow:
// the document layout as it appears in metadata XML, the node kinds, the
// resolved transition graph, and structural equality over all of it.
package flow

import "encoding/xml"

// Kind classifies a node by its Flow element kind.
type Kind string

const (
	KindApexPluginCall      Kind = "apexPluginCall"
	KindAssignment          Kind = "assignment"
	KindCollectionProcessor Kind = "collectionProcessor"
	KindDecision            Kind = "decision"
	KindLoop                Kind = "loop"
	KindOrchestratedStage   Kind = "orchestratedStage"
	KindRecordCreate        Kind = "recordCreate"
	KindRecordDelete        Kind = "recordDelete"
	KindRecordLookup        Kind = "recordLookup"
	KindRecordRollback      Kind = "recordRollback"
	KindRecordUpdate        Kind = "recordUpdate"
	KindScreen              Kind = "screen"
	KindStep                Kind = "step"
	KindSubflow             Kind = "subflow"
	KindTransform           Kind = "transform"
	KindWait                Kind = "wait"
	KindActionCall          Kind = "actionCall"
	KindCustomError         Kind = "customError"
	KindStart               Kind = "start"
)

// StartName is the synthetic identity of the Start node. Start elements carry
// no name in Flow metadata, so transitions originating there use this sentinel.
const StartName = "START"

// Node is implemented by every Flow element kind, including Start.
type Node interface {
	NodeName() string
	NodeLabel() string
	Kind() Kind
	// Equal reports structural equality: same kind, same field values,
	// nested records compared recursively. Layout coordinates count as
	// structure so that moved-and-edited nodes compare unequal the same
	// way any other field change does.
	Equal(other Node) bool
}

// Element carries the attributes common to every named Flow node.
type Element struct {
	Name        string `xml:"name" json:"name"`
	Label       string `xml:"label" json:"label"`
	LocationX   int    `xml:"locationX" json:"locationX"`
	LocationY   int    `xml:"locationY" json:"locationY"`
	Description string `xml:"description" json:"description,omitempty"`
}

func (e Element) NodeName() string { return e.Name }

func (e Element) NodeLabel() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Name
}

// Transition is a resolved directed edge between two node names.
type Transition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Fault bool   `json:"fault"`
	Label string `json:"label,omitempty"`
}

// Document mirrors the Flow metadata XML layout. Repeated elements decode into
// slices, so a single occurrence and an explicit list normalize identically.
type Document struct {
	XMLName     xml.Name `xml:"Flow" json:"-"`
	APIVersion  string   `xml:"apiVersion" json:"apiVersion,omitempty"`
	Label       string   `xml:"label" json:"label"`
	Description string   `xml:"description" json:"description,omitempty"`
	ProcessType string   `xml:"processType" json:"processType,omitempty"`
	Status      string   `xml:"status" json:"status,omitempty"`

	Start *Start `xml:"start" json:"start,omitempty"`

	ApexPluginCalls      []ApexPluginCall      `xml:"apexPluginCalls" json:"apexPluginCalls,omitempty"`
	Assignments          []Assignment          `xml:"assignments" json:"assignments,omitempty"`
	CollectionProcessors []CollectionProcessor `xml:"collectionProcessors" json:"collectionProcessors,omitempty"`
	Decisions            []Decision            `xml:"decisions" json:"decisions,omitempty"`
	Loops                []Loop                `xml:"loops" json:"loops,omitempty"`
	OrchestratedStages   []OrchestratedStage   `xml:"orchestratedStages" json:"orchestratedStages,omitempty"`
	RecordCreates        []RecordCreate        `xml:"recordCreates" json:"recordCreates,omitempty"`
	RecordDeletes        []RecordDelete        `xml:"recordDeletes" json:"recordDeletes,omitempty"`
	RecordLookups        []RecordLookup        `xml:"recordLookups" json:"recordLookups,omitempty"`
	RecordRollbacks      []RecordRollback      `xml:"recordRollbacks" json:"recordRollbacks,omitempty"`
	RecordUpdates        []RecordUpdate        `xml:"recordUpdates" json:"recordUpdates,omitempty"`
	Screens              []Screen              `xml:"screens" json:"screens,omitempty"`
	Steps                []Step                `xml:"steps" json:"steps,omitempty"`
	Subflows             []Subflow             `xml:"subflows" json:"subflows,omitempty"`
	Transforms           []Transform           `xml:"transforms" json:"transforms,omitempty"`
	Waits                []Wait                `xml:"waits" json:"waits,omitempty"`
	ActionCalls          []ActionCall          `xml:"actionCalls" json:"actionCalls,omitempty"`
	CustomErrors         []CustomError         `xml:"customErrors" json:"customErrors,omitempty"`
}

// Nodes returns every node in canonical order: Start first, then each kind in
// the order the kinds are declared on Document, nodes within a kind in
// declaration order. Transition emission and rendering both follow this order
// so output is reproducible.
func (d *Document) Nodes() []Node {
	var nodes []Node
	if d.Start != nil {
		nodes = append(nodes, d.Start)
	}
	for i := range d.ApexPluginCalls {
		nodes = append(nodes, &d.ApexPluginCalls[i])
	}
	for i := range d.Assignments {
		nodes = append(nodes, &d.Assignments[i])
	}
	for i := range d.CollectionProcessors {
		nodes = append(nodes, &d.CollectionProcessors[i])
	}
	for i := range d.Decisions {
		nodes = append(nodes, &d.Decisions[i])
	}
	for i := range d.Loops {
		nodes = append(nodes, &d.Loops[i])
	}
	for i := range d.OrchestratedStages {
		nodes = append(nodes, &d.OrchestratedStages[i])
	}
	for i := range d.RecordCreates {
		nodes = append(nodes, &d.RecordCreates[i])
	}
	for i := range d.RecordDeletes {
		nodes = append(nodes, &d.RecordDeletes[i])
	}
	for i := range d.RecordLookups {
		nodes = append(nodes, &d.RecordLookups[i])
	}
	for i := range d.RecordRollbacks {
		nodes = append(nodes, &d.RecordRollbacks[i])
	}
	for i := range d.RecordUpdates {
		nodes = append(nodes, &d.RecordUpdates[i])
	}
	for i := range d.Screens {
		nodes = append(nodes, &d.Screens[i])
	}
	for i := range d.Steps {
		nodes = append(nodes, &d.Steps[i])
	}
	for i := range d.Subflows {
		nodes = append(nodes, &d.Subflows[i])
	}
	for i := range d.Transforms {
		nodes = append(nodes, &d.Transforms[i])
	}
	for i := range d.Waits {
		nodes = append(nodes, &d.Waits[i])
	}
	for i := range d.ActionCalls {
		nodes = append(nodes, &d.ActionCalls[i])
	}
	for i := range d.CustomErrors {
		nodes = append(nodes, &d.CustomErrors[i])
	}
	return nodes
}

// ParsedFlow is the immutable result of parsing one Flow document: the typed
// document plus the derived name index and transition sequence. Construct it
// through parser.Parse; do not mutate after construction.
type ParsedFlow struct {
	Document
	NameToNode  map[string]Node `json:"-"`
	Transitions []Transition    `json:"transitions"`
}
