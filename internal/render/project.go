package render

import (
	"fmt"
	"strings"

	"github.com/flowlens/flowlens/internal/flow"
)

// Project maps every node of the flow, in canonical order, to its
// render-facing DiagramNode. It is total over the data model: any well-formed
// ParsedFlow projects without error.
func Project(pf *flow.ParsedFlow, opts Options) []DiagramNode {
	nodes := pf.Nodes()
	out := make([]DiagramNode, 0, len(nodes))
	for _, n := range nodes {
		meta := kindMetaTable[n.Kind()]
		dn := DiagramNode{
			ID:    n.NodeName(),
			Label: n.NodeLabel(),
			Kind:  n.Kind(),
			Type:  meta.Name,
			Icon:  meta.Icon,
			Color: meta.Color,
		}
		if opts.Diff != nil {
			dn.DiffStatus = opts.Diff[dn.ID]
		}
		if start, ok := n.(*flow.Start); ok {
			dn.InnerNodes = []InnerNode{entryCriteria(&pf.Document, start)}
		} else {
			dn.InnerNodes = innerNodes(n)
		}
		out = append(out, dn)
	}
	return out
}

// entryCriteria synthesizes the Start node's detail block from whichever
// optional descriptive fields are populated.
func entryCriteria(doc *flow.Document, s *flow.Start) InnerNode {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add("Type", doc.ProcessType)
	add("Trigger", s.TriggerType)
	add("Object", s.Object)
	add("Record Trigger", s.RecordTriggerType)
	add("Entry Type", s.EntryType)
	if len(s.Filters) > 0 {
		add("Condition Logic", s.FilterLogic)
		lines = append(lines, numbered(filterLines(s.Filters))...)
	}
	add("Formula", s.FilterFormula)
	if s.DoesRequireRecordChangedToMeetCriteria {
		lines = append(lines, "Only when record changes to meet conditions")
	}
	if s.Schedule != nil {
		lines = append(lines, "Schedule: "+strings.TrimSpace(fmt.Sprintf("%s %s %s",
			s.Schedule.Frequency, s.Schedule.StartDate, s.Schedule.StartTime)))
	}
	for _, c := range s.CapabilityTypes {
		add("Capability", c.CapabilityName)
	}
	add("Form", s.Form)
	add("Segment", s.Segment)
	add("Run As", s.FlowRunAsUser)

	if len(lines) == 0 {
		lines = []string{"No specific entry criteria defined"}
	}
	return InnerNode{ID: flow.StartName + "_entry", Type: "entryCriteria", Label: "Entry Criteria", Content: lines}
}

// innerNodes builds the kind-specific detail blocks of one node.
func innerNodes(n flow.Node) []InnerNode {
	switch node := n.(type) {
	case *flow.Decision:
		var inner []InnerNode
		for _, r := range node.Rules {
			label := r.Label
			if label == "" {
				label = r.Name
			}
			content := numbered(conditionLines(r.Conditions))
			if r.ConditionLogic != "" {
				content = append(content, "Logic: "+r.ConditionLogic)
			}
			inner = append(inner, InnerNode{ID: r.Name, Type: "rule", Label: label, Content: content})
		}
		return inner

	case *flow.RecordLookup:
		var inner []InnerNode
		if node.Object != "" || len(node.Filters) > 0 {
			content := []string{}
			if node.Object != "" {
				content = append(content, "Object: "+node.Object)
			}
			content = append(content, numbered(filterLines(node.Filters))...)
			if node.FilterLogic != "" {
				content = append(content, "Logic: "+node.FilterLogic)
			}
			if node.GetFirstRecordOnly {
				content = append(content, "First record only")
			}
			if node.SortField != "" {
				content = append(content, fmt.Sprintf("Sort: %s %s", node.SortField, node.SortOrder))
			}
			inner = append(inner, InnerNode{ID: node.Name + "_criteria", Type: "criteria", Label: "Criteria", Content: content})
		}
		if len(node.QueriedFields) > 0 {
			inner = append(inner, InnerNode{ID: node.Name + "_fields", Type: "fields", Label: "Queried Fields",
				Content: []string{strings.Join(node.QueriedFields, ", ")}})
		}
		return inner

	case *flow.RecordCreate:
		return assignmentBlock(node.Name, node.Object, node.InputReference, node.InputAssignments)

	case *flow.RecordUpdate:
		var inner []InnerNode
		if len(node.Filters) > 0 {
			inner = append(inner, InnerNode{ID: node.Name + "_criteria", Type: "criteria", Label: "Criteria",
				Content: numbered(filterLines(node.Filters))})
		}
		inner = append(inner, assignmentBlock(node.Name, node.Object, node.InputReference, node.InputAssignments)...)
		return inner

	case *flow.RecordDelete:
		content := []string{}
		if node.Object != "" {
			content = append(content, "Object: "+node.Object)
		}
		if node.InputReference != "" {
			content = append(content, "Records: {"+node.InputReference+"}")
		}
		content = append(content, numbered(filterLines(node.Filters))...)
		if len(content) == 0 {
			return nil
		}
		return []InnerNode{{ID: node.Name + "_criteria", Type: "criteria", Label: "Criteria", Content: content}}

	case *flow.Assignment:
		if len(node.AssignmentItems) == 0 {
			return nil
		}
		lines := make([]string, 0, len(node.AssignmentItems))
		for _, item := range node.AssignmentItems {
			lines = append(lines, fmt.Sprintf("%s %s %s", item.AssignToReference, item.Operator, item.Value))
		}
		return []InnerNode{{ID: node.Name + "_items", Type: "assignments", Label: "Assignments", Content: numbered(lines)}}

	case *flow.Loop:
		content := []string{}
		if node.CollectionReference != "" {
			content = append(content, "Collection: {"+node.CollectionReference+"}")
		}
		if node.IterationOrder != "" {
			content = append(content, "Order: "+node.IterationOrder)
		}
		if len(content) == 0 {
			return nil
		}
		return []InnerNode{{ID: node.Name + "_iter", Type: "iteration", Label: "Iteration", Content: content}}

	case *flow.OrchestratedStage:
		if len(node.StageSteps) == 0 {
			return nil
		}
		lines := make([]string, 0, len(node.StageSteps))
		for _, s := range node.StageSteps {
			line := s.Label
			if line == "" {
				line = s.Name
			}
			if s.ActionName != "" {
				line += " (" + s.ActionName + ")"
			}
			lines = append(lines, line)
		}
		return []InnerNode{{ID: node.Name + "_steps", Type: "steps", Label: "Stage Steps", Content: numbered(lines)}}

	case *flow.Wait:
		var inner []InnerNode
		for _, ev := range node.WaitEvents {
			label := ev.Label
			if label == "" {
				label = ev.Name
			}
			content := []string{}
			if ev.EventType != "" {
				content = append(content, "Event: "+ev.EventType)
			}
			content = append(content, numbered(conditionLines(ev.Conditions))...)
			inner = append(inner, InnerNode{ID: ev.Name, Type: "waitEvent", Label: label, Content: content})
		}
		return inner

	case *flow.CustomError:
		if len(node.CustomErrorMessages) == 0 {
			return nil
		}
		lines := make([]string, 0, len(node.CustomErrorMessages))
		for _, m := range node.CustomErrorMessages {
			line := m.ErrorMessage
			if m.IsFieldError && m.FieldSelection != "" {
				line = m.FieldSelection + ": " + line
			}
			lines = append(lines, line)
		}
		return []InnerNode{{ID: node.Name + "_messages", Type: "messages", Label: "Error Messages", Content: numbered(lines)}}

	case *flow.ActionCall:
		content := []string{}
		if node.ActionName != "" {
			content = append(content, "Action: "+node.ActionName)
		}
		if node.ActionType != "" {
			content = append(content, "Type: "+node.ActionType)
		}
		content = append(content, parameterLines(node.InputParameters)...)
		if len(content) == 0 {
			return nil
		}
		return []InnerNode{{ID: node.Name + "_call", Type: "call", Label: "Call", Content: content}}

	case *flow.ApexPluginCall:
		content := []string{}
		if node.ApexClass != "" {
			content = append(content, "Class: "+node.ApexClass)
		}
		content = append(content, parameterLines(node.InputParameters)...)
		if len(content) == 0 {
			return nil
		}
		return []InnerNode{{ID: node.Name + "_call", Type: "call", Label: "Call", Content: content}}

	case *flow.Subflow:
		content := []string{}
		if node.FlowName != "" {
			content = append(content, "Flow: "+node.FlowName)
		}
		content = append(content, parameterLines(node.InputAssignments)...)
		if len(content) == 0 {
			return nil
		}
		return []InnerNode{{ID: node.Name + "_call", Type: "call", Label: "Call", Content: content}}

	case *flow.Screen:
		if len(node.Fields) == 0 {
			return nil
		}
		lines := make([]string, 0, len(node.Fields))
		for _, f := range node.Fields {
			line := f.Name
			if f.FieldType != "" {
				line += " (" + f.FieldType + ")"
			}
			lines = append(lines, line)
		}
		return []InnerNode{{ID: node.Name + "_fields", Type: "fields", Label: "Fields", Content: lines}}

	case *flow.Transform:
		var lines []string
		for _, tv := range node.TransformValues {
			for _, a := range tv.TransformValueActions {
				switch {
				case a.OutputFieldAPIName != "" && a.InputReference != "":
					lines = append(lines, fmt.Sprintf("%s = {%s}", a.OutputFieldAPIName, a.InputReference))
				case a.OutputFieldAPIName != "":
					lines = append(lines, fmt.Sprintf("%s = %s", a.OutputFieldAPIName, a.Value))
				case a.TransformType != "":
					lines = append(lines, a.TransformType)
				}
			}
		}
		if len(lines) == 0 {
			return nil
		}
		return []InnerNode{{ID: node.Name + "_map", Type: "mappings", Label: "Mappings", Content: numbered(lines)}}

	case *flow.CollectionProcessor:
		content := []string{}
		if node.CollectionProcessorType != "" {
			content = append(content, "Type: "+node.CollectionProcessorType)
		}
		if node.CollectionReference != "" {
			content = append(content, "Collection: {"+node.CollectionReference+"}")
		}
		content = append(content, numbered(conditionLines(node.Conditions))...)
		if len(content) == 0 {
			return nil
		}
		return []InnerNode{{ID: node.Name + "_proc", Type: "processor", Label: "Processor", Content: content}}

	default:
		return nil
	}
}

// assignmentBlock formats the object/target and "field = value" lines of a
// record create or update.
func assignmentBlock(name, object, inputRef string, assignments []flow.FieldAssignment) []InnerNode {
	content := []string{}
	if object != "" {
		content = append(content, "Object: "+object)
	}
	if inputRef != "" {
		content = append(content, "Records: {"+inputRef+"}")
	}
	for _, a := range assignments {
		content = append(content, fmt.Sprintf("%s = %s", a.Field, a.Value))
	}
	if len(content) == 0 {
		return nil
	}
	return []InnerNode{{ID: name + "_assignments", Type: "assignments", Label: "Assignments", Content: content}}
}

func filterLines(filters []flow.Filter) []string {
	lines := make([]string, 0, len(filters))
	for _, f := range filters {
		lines = append(lines, fmt.Sprintf("%s %s %s", f.Field, f.Operator, f.Value))
	}
	return lines
}

func conditionLines(conditions []flow.Condition) []string {
	lines := make([]string, 0, len(conditions))
	for _, c := range conditions {
		lines = append(lines, fmt.Sprintf("%s %s %s", c.LeftValueReference, c.Operator, c.RightValue))
	}
	return lines
}

func parameterLines(params []flow.Parameter) []string {
	lines := make([]string, 0, len(params))
	for _, p := range params {
		lines = append(lines, fmt.Sprintf("%s = %s", p.Name, p.Value))
	}
	return lines
}

// numbered prefixes each line with its 1-based position.
func numbered(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fmt.Sprintf("%d. %s", i+1, line)
	}
	return out
}
