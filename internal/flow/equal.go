package flow

import "slices"

// Structural equality over the concrete field set of each kind. Deliberately
// explicit rather than reflective: the node shapes are a closed set, and the
// compiler keeps these definitions honest when a kind grows a field's type
// changes.

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (v Value) Equal(o Value) bool {
	return eqPtr(v.StringValue, o.StringValue) &&
		eqPtr(v.NumberValue, o.NumberValue) &&
		eqPtr(v.BooleanValue, o.BooleanValue) &&
		eqPtr(v.DateValue, o.DateValue) &&
		eqPtr(v.DateTimeValue, o.DateTimeValue) &&
		eqPtr(v.ElementReference, o.ElementReference)
}

func (c Condition) Equal(o Condition) bool {
	return c.LeftValueReference == o.LeftValueReference &&
		c.Operator == o.Operator &&
		c.RightValue.Equal(o.RightValue)
}

func (f Filter) Equal(o Filter) bool {
	return f.Field == o.Field && f.Operator == o.Operator && f.Value.Equal(o.Value)
}

func (a FieldAssignment) Equal(o FieldAssignment) bool {
	return a.Field == o.Field && a.Value.Equal(o.Value)
}

func (a AssignmentItem) Equal(o AssignmentItem) bool {
	return a.AssignToReference == o.AssignToReference &&
		a.Operator == o.Operator &&
		a.Value.Equal(o.Value)
}

func (p Parameter) Equal(o Parameter) bool {
	return p.Name == o.Name &&
		p.AssignToReference == o.AssignToReference &&
		p.Value.Equal(o.Value)
}

func (r Rule) Equal(o Rule) bool {
	return r.Name == o.Name &&
		r.Label == o.Label &&
		r.ConditionLogic == o.ConditionLogic &&
		slices.EqualFunc(r.Conditions, o.Conditions, Condition.Equal) &&
		eqPtr(r.Connector, o.Connector)
}

func (w WaitEvent) Equal(o WaitEvent) bool {
	return w.Name == o.Name &&
		w.Label == o.Label &&
		w.EventType == o.EventType &&
		w.ConditionLogic == o.ConditionLogic &&
		slices.EqualFunc(w.Conditions, o.Conditions, Condition.Equal) &&
		eqPtr(w.Connector, o.Connector)
}

func (p ScheduledPath) Equal(o ScheduledPath) bool {
	return p.Name == o.Name &&
		p.Label == o.Label &&
		p.PathType == o.PathType &&
		p.TimeSource == o.TimeSource &&
		p.RecordField == o.RecordField &&
		eqPtr(p.OffsetNumber, o.OffsetNumber) &&
		p.OffsetUnit == o.OffsetUnit &&
		eqPtr(p.Connector, o.Connector)
}

func (a TransformValueAction) Equal(o TransformValueAction) bool {
	return a.TransformType == o.TransformType &&
		a.OutputFieldAPIName == o.OutputFieldAPIName &&
		a.InputReference == o.InputReference &&
		a.Value.Equal(o.Value)
}

func (t TransformValue) Equal(o TransformValue) bool {
	return slices.EqualFunc(t.TransformValueActions, o.TransformValueActions, TransformValueAction.Equal)
}

func (s *Start) Equal(other Node) bool {
	o, ok := other.(*Start)
	if !ok {
		return false
	}
	return s.LocationX == o.LocationX &&
		s.LocationY == o.LocationY &&
		s.Description == o.Description &&
		eqPtr(s.Connector, o.Connector) &&
		s.TriggerType == o.TriggerType &&
		s.Object == o.Object &&
		s.RecordTriggerType == o.RecordTriggerType &&
		s.EntryType == o.EntryType &&
		s.FilterLogic == o.FilterLogic &&
		slices.EqualFunc(s.Filters, o.Filters, Filter.Equal) &&
		s.FilterFormula == o.FilterFormula &&
		s.DoesRequireRecordChangedToMeetCriteria == o.DoesRequireRecordChangedToMeetCriteria &&
		eqPtr(s.Schedule, o.Schedule) &&
		slices.EqualFunc(s.ScheduledPaths, o.ScheduledPaths, ScheduledPath.Equal) &&
		slices.Equal(s.CapabilityTypes, o.CapabilityTypes) &&
		s.Form == o.Form &&
		s.Segment == o.Segment &&
		s.FlowRunAsUser == o.FlowRunAsUser
}

func (n *ApexPluginCall) Equal(other Node) bool {
	o, ok := other.(*ApexPluginCall)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.ApexClass == o.ApexClass &&
		slices.EqualFunc(n.InputParameters, o.InputParameters, Parameter.Equal) &&
		slices.EqualFunc(n.OutputParameters, o.OutputParameters, Parameter.Equal) &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *ActionCall) Equal(other Node) bool {
	o, ok := other.(*ActionCall)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.ActionName == o.ActionName &&
		n.ActionType == o.ActionType &&
		slices.EqualFunc(n.InputParameters, o.InputParameters, Parameter.Equal) &&
		slices.EqualFunc(n.OutputParameters, o.OutputParameters, Parameter.Equal) &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *Assignment) Equal(other Node) bool {
	o, ok := other.(*Assignment)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		slices.EqualFunc(n.AssignmentItems, o.AssignmentItems, AssignmentItem.Equal) &&
		eqPtr(n.Connector, o.Connector)
}

func (n *CollectionProcessor) Equal(other Node) bool {
	o, ok := other.(*CollectionProcessor)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.CollectionProcessorType == o.CollectionProcessorType &&
		n.CollectionReference == o.CollectionReference &&
		n.AssignNextValueToReference == o.AssignNextValueToReference &&
		n.ConditionLogic == o.ConditionLogic &&
		slices.EqualFunc(n.Conditions, o.Conditions, Condition.Equal) &&
		eqPtr(n.Connector, o.Connector)
}

func (n *Decision) Equal(other Node) bool {
	o, ok := other.(*Decision)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		slices.EqualFunc(n.Rules, o.Rules, Rule.Equal) &&
		eqPtr(n.DefaultConnector, o.DefaultConnector) &&
		n.DefaultConnectorLabel == o.DefaultConnectorLabel
}

func (n *Loop) Equal(other Node) bool {
	o, ok := other.(*Loop)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.CollectionReference == o.CollectionReference &&
		n.IterationOrder == o.IterationOrder &&
		eqPtr(n.NextValueConnector, o.NextValueConnector) &&
		eqPtr(n.NoMoreValuesConnector, o.NoMoreValuesConnector)
}

func (n *OrchestratedStage) Equal(other Node) bool {
	o, ok := other.(*OrchestratedStage)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		slices.Equal(n.StageSteps, o.StageSteps) &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *RecordCreate) Equal(other Node) bool {
	o, ok := other.(*RecordCreate)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.Object == o.Object &&
		n.InputReference == o.InputReference &&
		slices.EqualFunc(n.InputAssignments, o.InputAssignments, FieldAssignment.Equal) &&
		n.StoreOutputAutomatically == o.StoreOutputAutomatically &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *RecordDelete) Equal(other Node) bool {
	o, ok := other.(*RecordDelete)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.Object == o.Object &&
		n.InputReference == o.InputReference &&
		slices.EqualFunc(n.Filters, o.Filters, Filter.Equal) &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *RecordLookup) Equal(other Node) bool {
	o, ok := other.(*RecordLookup)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.Object == o.Object &&
		n.FilterLogic == o.FilterLogic &&
		slices.EqualFunc(n.Filters, o.Filters, Filter.Equal) &&
		slices.Equal(n.QueriedFields, o.QueriedFields) &&
		n.SortField == o.SortField &&
		n.SortOrder == o.SortOrder &&
		n.GetFirstRecordOnly == o.GetFirstRecordOnly &&
		n.StoreOutputAutomatically == o.StoreOutputAutomatically &&
		n.OutputReference == o.OutputReference &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *RecordRollback) Equal(other Node) bool {
	o, ok := other.(*RecordRollback)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *RecordUpdate) Equal(other Node) bool {
	o, ok := other.(*RecordUpdate)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.Object == o.Object &&
		n.InputReference == o.InputReference &&
		slices.EqualFunc(n.Filters, o.Filters, Filter.Equal) &&
		slices.EqualFunc(n.InputAssignments, o.InputAssignments, FieldAssignment.Equal) &&
		eqPtr(n.Connector, o.Connector) &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *Screen) Equal(other Node) bool {
	o, ok := other.(*Screen)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		slices.Equal(n.Fields, o.Fields) &&
		n.AllowBack == o.AllowBack &&
		n.AllowFinish == o.AllowFinish &&
		n.AllowPause == o.AllowPause &&
		eqPtr(n.Connector, o.Connector)
}

func (n *Step) Equal(other Node) bool {
	o, ok := other.(*Step)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		slices.Equal(n.Connectors, o.Connectors)
}

func (n *Subflow) Equal(other Node) bool {
	o, ok := other.(*Subflow)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.FlowName == o.FlowName &&
		slices.EqualFunc(n.InputAssignments, o.InputAssignments, Parameter.Equal) &&
		slices.EqualFunc(n.OutputAssignments, o.OutputAssignments, Parameter.Equal) &&
		eqPtr(n.Connector, o.Connector)
}

func (n *Transform) Equal(other Node) bool {
	o, ok := other.(*Transform)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		n.DataType == o.DataType &&
		n.ObjectType == o.ObjectType &&
		slices.EqualFunc(n.TransformValues, o.TransformValues, TransformValue.Equal) &&
		eqPtr(n.Connector, o.Connector)
}

func (n *Wait) Equal(other Node) bool {
	o, ok := other.(*Wait)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		slices.EqualFunc(n.WaitEvents, o.WaitEvents, WaitEvent.Equal) &&
		eqPtr(n.DefaultConnector, o.DefaultConnector) &&
		n.DefaultConnectorLabel == o.DefaultConnectorLabel &&
		eqPtr(n.FaultConnector, o.FaultConnector)
}

func (n *CustomError) Equal(other Node) bool {
	o, ok := other.(*CustomError)
	if !ok {
		return false
	}
	return n.Element == o.Element &&
		slices.Equal(n.CustomErrorMessages, o.CustomErrorMessages) &&
		eqPtr(n.Connector, o.Connector)
}
