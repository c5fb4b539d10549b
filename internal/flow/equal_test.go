package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValueEqual(t *testing.T) {
	assert.True(t, Value{}.Equal(Value{}))
	assert.True(t, Value{StringValue: strPtr("x")}.Equal(Value{StringValue: strPtr("x")}))
	assert.False(t, Value{StringValue: strPtr("x")}.Equal(Value{StringValue: strPtr("y")}))
	assert.False(t, Value{StringValue: strPtr("x")}.Equal(Value{ElementReference: strPtr("x")}))
}

func TestValueString(t *testing.T) {
	n := 12.5
	b := true
	assert.Equal(t, "hello", Value{StringValue: strPtr("hello")}.String())
	assert.Equal(t, "12.5", Value{NumberValue: &n}.String())
	assert.Equal(t, "true", Value{BooleanValue: &b}.String())
	assert.Equal(t, "{acct.Id}", Value{ElementReference: strPtr("acct.Id")}.String())
	assert.Equal(t, "", Value{}.String())
}

func TestNodeEqualSameKind(t *testing.T) {
	a := &Assignment{
		Element: Element{Name: "Set_Flag", Label: "Set Flag"},
		AssignmentItems: []AssignmentItem{
			{AssignToReference: "flag", Operator: "Assign", Value: Value{StringValue: strPtr("on")}},
		},
		Connector: &Connector{TargetReference: "Next"},
	}
	b := &Assignment{
		Element: Element{Name: "Set_Flag", Label: "Set Flag"},
		AssignmentItems: []AssignmentItem{
			{AssignToReference: "flag", Operator: "Assign", Value: Value{StringValue: strPtr("on")}},
		},
		Connector: &Connector{TargetReference: "Next"},
	}
	assert.True(t, a.Equal(b))

	b.AssignmentItems[0].Value = Value{StringValue: strPtr("off")}
	assert.False(t, a.Equal(b))
}

func TestNodeEqualDifferentKind(t *testing.T) {
	a := &Assignment{Element: Element{Name: "N"}}
	s := &Screen{Element: Element{Name: "N"}}
	assert.False(t, a.Equal(s))
	assert.False(t, s.Equal(a))
}

func TestNodeEqualConnectorRewire(t *testing.T) {
	a := &RecordUpdate{
		Element:   Element{Name: "Upd", Label: "Upd"},
		Object:    "Account",
		Connector: &Connector{TargetReference: "A"},
	}
	b := &RecordUpdate{
		Element:   Element{Name: "Upd", Label: "Upd"},
		Object:    "Account",
		Connector: &Connector{TargetReference: "B"},
	}
	assert.False(t, a.Equal(b))

	b.Connector.TargetReference = "A"
	assert.True(t, a.Equal(b))

	// Nil versus populated connector differs.
	b.Connector = nil
	assert.False(t, a.Equal(b))
}

func TestDecisionEqualRuleOrder(t *testing.T) {
	rule := func(name string) Rule {
		return Rule{Name: name, Label: name, Connector: &Connector{TargetReference: "T"}}
	}
	a := &Decision{Element: Element{Name: "D"}, Rules: []Rule{rule("r1"), rule("r2")}}
	b := &Decision{Element: Element{Name: "D"}, Rules: []Rule{rule("r2"), rule("r1")}}
	assert.False(t, a.Equal(b), "rule order is significant")
}

func TestStartEqual(t *testing.T) {
	one := 1
	a := &Start{
		Object:            "Account",
		TriggerType:       "RecordAfterSave",
		RecordTriggerType: "Update",
		ScheduledPaths: []ScheduledPath{
			{Name: "P", Label: "Later", OffsetNumber: &one, OffsetUnit: "Hours"},
		},
	}
	same := 1
	b := &Start{
		Object:            "Account",
		TriggerType:       "RecordAfterSave",
		RecordTriggerType: "Update",
		ScheduledPaths: []ScheduledPath{
			{Name: "P", Label: "Later", OffsetNumber: &same, OffsetUnit: "Hours"},
		},
	}
	assert.True(t, a.Equal(b))

	b.RecordTriggerType = "Create"
	assert.False(t, a.Equal(b))
}

func TestDocumentNodesOrder(t *testing.T) {
	doc := &Document{
		Start:         &Start{},
		Assignments:   []Assignment{{Element: Element{Name: "A"}}},
		Decisions:     []Decision{{Element: Element{Name: "D"}}},
		RecordLookups: []RecordLookup{{Element: Element{Name: "L"}}},
		ActionCalls:   []ActionCall{{Element: Element{Name: "C"}}},
	}

	var names []string
	for _, n := range doc.Nodes() {
		names = append(names, n.NodeName())
	}
	// Canonical kind order, start first, action calls late.
	assert.Equal(t, []string{StartName, "A", "D", "L", "C"}, names)
}
