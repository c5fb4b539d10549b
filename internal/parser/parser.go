// Package parser turns raw Flow metadata XML into a validated flow.ParsedFlow.
package parser

import (
	"encoding/xml"

	"github.com/flowlens/flowlens/internal/flow"
)

// FaultLabel is the label on every fault-path edge.
const FaultLabel = "Fault"

// LoopEachLabel is the label on a Loop's body edge.
const LoopEachLabel = "For Each"

// AsyncPathLabel is the label on a Start's asynchronous-commit path.
const AsyncPathLabel = "Run Asynchronously"

// Options carries the configurable edge labels. The exact wording of a
// Decision's default path and a Loop's exit path is presentation, not
// metadata, so both stay overridable.
type Options struct {
	DefaultPathLabel string
	LoopExitLabel    string
}

func (o Options) withDefaults() Options {
	if o.DefaultPathLabel == "" {
		o.DefaultPathLabel = "Default"
	}
	if o.LoopExitLabel == "" {
		o.LoopExitLabel = "After Last"
	}
	return o
}

// Parse parses one Flow document with default options.
func Parse(raw []byte) (*flow.ParsedFlow, error) {
	return ParseWithOptions(raw, Options{})
}

// ParseWithOptions parses one Flow document. It fails with
// MALFORMED_DOCUMENT when the input is not well-formed Flow XML,
// MISSING_START when no start element is present, DUPLICATE_NAME when two
// nodes share a name, and UNRESOLVED_TRANSITION when a connector targets an
// undeclared node.
func ParseWithOptions(raw []byte, opts Options) (*flow.ParsedFlow, error) {
	opts = opts.withDefaults()

	var doc flow.Document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, flow.NewErrorf(flow.ErrCodeMalformedDocument, "decode flow XML: %s", err).WithCause(err)
	}
	if doc.Start == nil {
		return nil, flow.NewError(flow.ErrCodeMissingStart, "flow has no start element")
	}

	pf := &flow.ParsedFlow{Document: doc}

	index, err := buildIndex(&pf.Document)
	if err != nil {
		return nil, err
	}
	pf.NameToNode = index

	pf.Transitions = buildTransitions(&pf.Document, opts)

	for _, t := range pf.Transitions {
		if _, ok := index[t.To]; !ok {
			return nil, flow.NewErrorf(flow.ErrCodeUnresolvedTransition,
				"connector from %q targets undeclared node %q", t.From, t.To).WithNode(t.To)
		}
		if _, ok := index[t.From]; !ok {
			return nil, flow.NewErrorf(flow.ErrCodeUnresolvedTransition,
				"transition to %q originates from undeclared node %q", t.To, t.From).WithNode(t.From)
		}
	}

	return pf, nil
}

// buildIndex maps every node name, including the START sentinel, to its node.
// A collision is rejected instead of silently overwriting: the index is the
// resolution authority for both transitions and diffing, and an overwritten
// entry would corrupt both.
func buildIndex(doc *flow.Document) (map[string]flow.Node, error) {
	index := make(map[string]flow.Node)
	for _, n := range doc.Nodes() {
		name := n.NodeName()
		if prev, ok := index[name]; ok {
			return nil, flow.NewErrorf(flow.ErrCodeDuplicateName,
				"name used by both a %s and a %s node", prev.Kind(), n.Kind()).WithNode(name)
		}
		index[name] = n
	}
	return index, nil
}

// buildTransitions emits edges for every node in canonical order. This is the
// one place that knows how each node kind expresses control flow.
func buildTransitions(doc *flow.Document, opts Options) []flow.Transition {
	var out []flow.Transition
	edge := func(from string, c *flow.Connector, label string, fault bool) {
		if c == nil || c.TargetReference == "" {
			return
		}
		out = append(out, flow.Transition{From: from, To: c.TargetReference, Fault: fault, Label: label})
	}

	for _, node := range doc.Nodes() {
		from := node.NodeName()
		switch n := node.(type) {
		case *flow.Start:
			edge(from, n.Connector, "", false)
			for _, p := range n.ScheduledPaths {
				edge(from, p.Connector, scheduledPathLabel(p), false)
			}

		case *flow.Decision:
			for _, r := range n.Rules {
				label := r.Label
				if label == "" {
					label = r.Name
				}
				edge(from, r.Connector, label, false)
			}
			label := n.DefaultConnectorLabel
			if label == "" {
				label = opts.DefaultPathLabel
			}
			edge(from, n.DefaultConnector, label, false)

		case *flow.Loop:
			edge(from, n.NextValueConnector, LoopEachLabel, false)
			edge(from, n.NoMoreValuesConnector, opts.LoopExitLabel, false)

		case *flow.Wait:
			for _, ev := range n.WaitEvents {
				label := ev.Label
				if label == "" {
					label = ev.Name
				}
				edge(from, ev.Connector, label, false)
			}
			label := n.DefaultConnectorLabel
			if label == "" {
				label = opts.DefaultPathLabel
			}
			edge(from, n.DefaultConnector, label, false)
			edge(from, n.FaultConnector, FaultLabel, true)

		case *flow.Step:
			for i := range n.Connectors {
				edge(from, &n.Connectors[i], "", false)
			}

		case *flow.ApexPluginCall:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.ActionCall:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.Assignment:
			edge(from, n.Connector, "", false)
		case *flow.CollectionProcessor:
			edge(from, n.Connector, "", false)
		case *flow.OrchestratedStage:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.RecordCreate:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.RecordDelete:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.RecordLookup:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.RecordRollback:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.RecordUpdate:
			edge(from, n.Connector, "", false)
			edge(from, n.FaultConnector, FaultLabel, true)
		case *flow.Screen:
			edge(from, n.Connector, "", false)
		case *flow.Subflow:
			edge(from, n.Connector, "", false)
		case *flow.Transform:
			edge(from, n.Connector, "", false)
		case *flow.CustomError:
			edge(from, n.Connector, "", false)
		}
	}
	return out
}

// scheduledPathLabel labels a Start scheduled path: the asynchronous-commit
// path gets its own marker, everything else is labeled by the path's own
// label, falling back to its time source.
func scheduledPathLabel(p flow.ScheduledPath) string {
	if p.PathType == flow.AsyncAfterCommitPath {
		return AsyncPathLabel
	}
	if p.Label != "" {
		return p.Label
	}
	if p.TimeSource != "" {
		return p.TimeSource
	}
	return p.Name
}
