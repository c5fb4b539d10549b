package flow

import (
	"fmt"
	"strconv"
)

// Connector references a target node by name. IsGoTo marks a "go to" jump as
// opposed to a normal sequential link.
type Connector struct {
	TargetReference string `xml:"targetReference" json:"targetReference"`
	IsGoTo          bool   `xml:"isGoTo" json:"isGoTo,omitempty"`
}

// Value is the polymorphic literal-or-reference used throughout Flow metadata.
// Exactly one of the fields is populated in well-formed input.
type Value struct {
	StringValue      *string  `xml:"stringValue" json:"stringValue,omitempty"`
	NumberValue      *float64 `xml:"numberValue" json:"numberValue,omitempty"`
	BooleanValue     *bool    `xml:"booleanValue" json:"booleanValue,omitempty"`
	DateValue        *string  `xml:"dateValue" json:"dateValue,omitempty"`
	DateTimeValue    *string  `xml:"dateTimeValue" json:"dateTimeValue,omitempty"`
	ElementReference *string  `xml:"elementReference" json:"elementReference,omitempty"`
}

// String renders the populated variant for display. References are wrapped in
// braces to distinguish them from literals.
func (v Value) String() string {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.NumberValue != nil:
		return strconv.FormatFloat(*v.NumberValue, 'f', -1, 64)
	case v.BooleanValue != nil:
		return strconv.FormatBool(*v.BooleanValue)
	case v.DateValue != nil:
		return *v.DateValue
	case v.DateTimeValue != nil:
		return *v.DateTimeValue
	case v.ElementReference != nil:
		return fmt.Sprintf("{%s}", *v.ElementReference)
	default:
		return ""
	}
}

// Condition is one comparison inside a Decision rule, Wait event or
// collection filter.
type Condition struct {
	LeftValueReference string `xml:"leftValueReference" json:"leftValueReference"`
	Operator           string `xml:"operator" json:"operator"`
	RightValue         Value  `xml:"rightValue" json:"rightValue"`
}

// Rule is one outcome of a Decision, in declaration order.
type Rule struct {
	Name           string      `xml:"name" json:"name"`
	Label          string      `xml:"label" json:"label"`
	ConditionLogic string      `xml:"conditionLogic" json:"conditionLogic,omitempty"`
	Conditions     []Condition `xml:"conditions" json:"conditions,omitempty"`
	Connector      *Connector  `xml:"connector" json:"connector,omitempty"`
}

// Filter is one record filter criterion (lookups, updates, deletes, Start
// entry conditions).
type Filter struct {
	Field    string `xml:"field" json:"field"`
	Operator string `xml:"operator" json:"operator"`
	Value    Value  `xml:"value" json:"value"`
}

// FieldAssignment sets one record field to a value (record create/update
// input assignments).
type FieldAssignment struct {
	Field string `xml:"field" json:"field"`
	Value Value  `xml:"value" json:"value"`
}

// AssignmentItem is one variable operation inside an Assignment node.
type AssignmentItem struct {
	AssignToReference string `xml:"assignToReference" json:"assignToReference"`
	Operator          string `xml:"operator" json:"operator"`
	Value             Value  `xml:"value" json:"value"`
}

// Parameter is a named input or output of an action, plugin or subflow call.
// AssignToReference is populated on outputs.
type Parameter struct {
	Name              string `xml:"name" json:"name"`
	Value             Value  `xml:"value" json:"value"`
	AssignToReference string `xml:"assignToReference" json:"assignToReference,omitempty"`
}

// WaitEvent is one resume path of a Wait node.
type WaitEvent struct {
	Name           string      `xml:"name" json:"name"`
	Label          string      `xml:"label" json:"label"`
	EventType      string      `xml:"eventType" json:"eventType,omitempty"`
	ConditionLogic string      `xml:"conditionLogic" json:"conditionLogic,omitempty"`
	Conditions     []Condition `xml:"conditions" json:"conditions,omitempty"`
	Connector      *Connector  `xml:"connector" json:"connector,omitempty"`
}

// ScheduledPath is one time-delayed or asynchronous path off a triggered
// Start. PathType "AsyncAfterCommit" marks the asynchronous path; every other
// path is driven by its TimeSource.
type ScheduledPath struct {
	Name         string     `xml:"name" json:"name"`
	Label        string     `xml:"label" json:"label"`
	PathType     string     `xml:"pathType" json:"pathType,omitempty"`
	TimeSource   string     `xml:"timeSource" json:"timeSource,omitempty"`
	RecordField  string     `xml:"recordField" json:"recordField,omitempty"`
	OffsetNumber *int       `xml:"offsetNumber" json:"offsetNumber,omitempty"`
	OffsetUnit   string     `xml:"offsetUnit" json:"offsetUnit,omitempty"`
	Connector    *Connector `xml:"connector" json:"connector,omitempty"`
}

// AsyncAfterCommitPath is the PathType marking a scheduled path that runs
// asynchronously after the triggering transaction commits.
const AsyncAfterCommitPath = "AsyncAfterCommit"

// Schedule describes a time-triggered Start.
type Schedule struct {
	Frequency string `xml:"frequency" json:"frequency,omitempty"`
	StartDate string `xml:"startDate" json:"startDate,omitempty"`
	StartTime string `xml:"startTime" json:"startTime,omitempty"`
}

// CapabilityType names one capability a capability-triggered Start integrates
// with.
type CapabilityType struct {
	CapabilityName string `xml:"capabilityName" json:"capabilityName"`
}

// StageStep is one step inside an OrchestratedStage, in declaration order.
type StageStep struct {
	Name        string `xml:"name" json:"name"`
	Label       string `xml:"label" json:"label"`
	ActionName  string `xml:"actionName" json:"actionName,omitempty"`
	StepSubtype string `xml:"stepSubtype" json:"stepSubtype,omitempty"`
}

// ScreenField is one component on a Screen node.
type ScreenField struct {
	Name      string `xml:"name" json:"name"`
	FieldText string `xml:"fieldText" json:"fieldText,omitempty"`
	FieldType string `xml:"fieldType" json:"fieldType,omitempty"`
	DataType  string `xml:"dataType" json:"dataType,omitempty"`
}

// CustomErrorMessage is one message raised by a CustomError node.
type CustomErrorMessage struct {
	ErrorMessage   string `xml:"errorMessage" json:"errorMessage"`
	IsFieldError   bool   `xml:"isFieldError" json:"isFieldError,omitempty"`
	FieldSelection string `xml:"fieldSelection" json:"fieldSelection,omitempty"`
}

// TransformValueAction is one mapping action inside a Transform node.
type TransformValueAction struct {
	TransformType      string `xml:"transformType" json:"transformType,omitempty"`
	OutputFieldAPIName string `xml:"outputFieldApiName" json:"outputFieldApiName,omitempty"`
	Value              Value  `xml:"value" json:"value"`
	InputReference     string `xml:"inputReference" json:"inputReference,omitempty"`
}

// TransformValue groups the actions of one Transform target.
type TransformValue struct {
	TransformValueActions []TransformValueAction `xml:"transformValueActions" json:"transformValueActions,omitempty"`
}
