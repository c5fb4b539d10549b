// Package compare computes the structural difference between two versions of
// the same Flow. The result is a side-table keyed by node name rather than an
// annotation on the graphs, so parsed flows stay immutable and the comparison
// is independently testable.
package compare

import "github.com/flowlens/flowlens/internal/flow"

// Status marks how a node changed between two versions.
type Status string

const (
	StatusAdded    Status = "ADDED"
	StatusDeleted  Status = "DELETED"
	StatusModified Status = "MODIFIED"
)

// Result maps node name to change status. Names present in both versions with
// identical structure are absent. A MODIFIED entry applies to the node in both
// graphs; ADDED and DELETED entries exist in only one graph by definition.
type Result map[string]Status

// Summary is the per-status count of a Result.
type Summary struct {
	Added    int `json:"added"`
	Deleted  int `json:"deleted"`
	Modified int `json:"modified"`
}

// Compare diffs two parsed flows by node name. Either side may be nil and is
// then treated as an empty node set, so a brand-new or deleted flow diffs
// cleanly. Comparison is total: it cannot fail on valid parsed flows.
func Compare(oldFlow, newFlow *flow.ParsedFlow) Result {
	result := Result{}

	oldIndex := nodeIndex(oldFlow)
	newIndex := nodeIndex(newFlow)

	for name, oldNode := range oldIndex {
		newNode, ok := newIndex[name]
		if !ok {
			result[name] = StatusDeleted
			continue
		}
		if !oldNode.Equal(newNode) {
			result[name] = StatusModified
		}
	}
	for name := range newIndex {
		if _, ok := oldIndex[name]; !ok {
			result[name] = StatusAdded
		}
	}
	return result
}

// Summary counts the entries of the result by status.
func (r Result) Summary() Summary {
	var s Summary
	for _, status := range r {
		switch status {
		case StatusAdded:
			s.Added++
		case StatusDeleted:
			s.Deleted++
		case StatusModified:
			s.Modified++
		}
	}
	return s
}

// Changed reports whether any node differs.
func (r Result) Changed() bool { return len(r) > 0 }

func nodeIndex(pf *flow.ParsedFlow) map[string]flow.Node {
	if pf == nil {
		return nil
	}
	return pf.NameToNode
}
