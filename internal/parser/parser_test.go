package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlens/flowlens/internal/flow"
)

// flowDoc wraps node elements in a minimal Flow document.
func flowDoc(body string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<Flow xmlns="http://soap.sforce.com/2006/04/metadata">
    <apiVersion>61.0</apiVersion>
    <label>Order Intake</label>
    <processType>AutoLaunchedFlow</processType>
` + body + `
</Flow>`)
}

const startOnly = `
    <start>
        <locationX>50</locationX>
        <locationY>0</locationY>
    </start>`

const lookupUpdatePair = `
    <start>
        <locationX>50</locationX>
        <locationY>0</locationY>
        <connector><targetReference>Get_Acct</targetReference></connector>
    </start>
    <recordLookups>
        <name>Get_Acct</name>
        <label>Get Account</label>
        <locationX>176</locationX>
        <locationY>158</locationY>
        <object>Account</object>
        <filters>
            <field>Id</field>
            <operator>EqualTo</operator>
            <value><elementReference>recordId</elementReference></value>
        </filters>
        <queriedFields>Id</queriedFields>
        <queriedFields>Name</queriedFields>
        <connector><targetReference>Update_Acct</targetReference></connector>
    </recordLookups>
    <recordUpdates>
        <name>Update_Acct</name>
        <label>Update Account</label>
        <locationX>176</locationX>
        <locationY>278</locationY>
        <object>Account</object>
        <inputAssignments>
            <field>Rating</field>
            <value><stringValue>Hot</stringValue></value>
        </inputAssignments>
    </recordUpdates>`

func TestParseTwoNodeFlow(t *testing.T) {
	pf, err := Parse(flowDoc(lookupUpdatePair))
	require.NoError(t, err)

	assert.Equal(t, "Order Intake", pf.Label)
	assert.Equal(t, "AutoLaunchedFlow", pf.ProcessType)

	// Index covers both nodes plus the start sentinel.
	require.Len(t, pf.NameToNode, 3)
	assert.Contains(t, pf.NameToNode, flow.StartName)
	assert.Contains(t, pf.NameToNode, "Get_Acct")
	assert.Contains(t, pf.NameToNode, "Update_Acct")

	require.Equal(t, []flow.Transition{
		{From: flow.StartName, To: "Get_Acct"},
		{From: "Get_Acct", To: "Update_Acct"},
	}, pf.Transitions)
}

func TestParseStartOnly(t *testing.T) {
	pf, err := Parse(flowDoc(startOnly))
	require.NoError(t, err)

	assert.Len(t, pf.NameToNode, 1)
	assert.Empty(t, pf.Transitions)
	require.NotNil(t, pf.Start)
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`<Flow><label>broken`))
	require.Error(t, err)
	assert.Equal(t, flow.ErrCodeMalformedDocument, flow.CodeOf(err))

	_, err = Parse(nil)
	require.Error(t, err)
	assert.Equal(t, flow.ErrCodeMalformedDocument, flow.CodeOf(err))

	// Wrong root element.
	_, err = Parse([]byte(`<ApexClass><label>x</label></ApexClass>`))
	require.Error(t, err)
	assert.Equal(t, flow.ErrCodeMalformedDocument, flow.CodeOf(err))
}

func TestParseMissingStart(t *testing.T) {
	_, err := Parse(flowDoc(`
    <assignments>
        <name>Set_Flag</name>
        <label>Set Flag</label>
    </assignments>`))
	require.Error(t, err)
	assert.Equal(t, flow.ErrCodeMissingStart, flow.CodeOf(err))
}

func TestParseUnresolvedTransition(t *testing.T) {
	_, err := Parse(flowDoc(`
    <start>
        <connector><targetReference>Ghost_Node</targetReference></connector>
    </start>`))
	require.Error(t, err)
	assert.Equal(t, flow.ErrCodeUnresolvedTransition, flow.CodeOf(err))

	var fe *flow.FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Ghost_Node", fe.Node)
}

func TestParseDuplicateName(t *testing.T) {
	_, err := Parse(flowDoc(startOnly + `
    <assignments>
        <name>Handle_Order</name>
        <label>Handle Order</label>
    </assignments>
    <screens>
        <name>Handle_Order</name>
        <label>Handle Order Screen</label>
    </screens>`))
	require.Error(t, err)
	assert.Equal(t, flow.ErrCodeDuplicateName, flow.CodeOf(err))

	var fe *flow.FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Handle_Order", fe.Node)
}

func TestParseSingleOccurrenceNormalizesToSlice(t *testing.T) {
	pf, err := Parse(flowDoc(lookupUpdatePair))
	require.NoError(t, err)

	// One occurrence in the document is a one-element slice, identical in
	// shape to any multi-element case.
	require.Len(t, pf.RecordLookups, 1)
	require.Len(t, pf.RecordUpdates, 1)
	assert.Equal(t, []string{"Id", "Name"}, pf.RecordLookups[0].QueriedFields)
}

func TestParseDecisionEdges(t *testing.T) {
	pf, err := Parse(flowDoc(`
    <start>
        <connector><targetReference>Check_Amount</targetReference></connector>
    </start>
    <decisions>
        <name>Check_Amount</name>
        <label>Check Amount</label>
        <defaultConnector><targetReference>Log_Skip</targetReference></defaultConnector>
        <defaultConnectorLabel>Otherwise</defaultConnectorLabel>
        <rules>
            <name>Is_Large</name>
            <label>Large order</label>
            <conditionLogic>and</conditionLogic>
            <conditions>
                <leftValueReference>order.Amount</leftValueReference>
                <operator>GreaterThan</operator>
                <rightValue><numberValue>1000.0</numberValue></rightValue>
            </conditions>
            <connector><targetReference>Escalate</targetReference></connector>
        </rules>
    </decisions>
    <assignments>
        <name>Escalate</name>
        <label>Escalate</label>
    </assignments>
    <assignments>
        <name>Log_Skip</name>
        <label>Log Skip</label>
    </assignments>`))
	require.NoError(t, err)

	require.Equal(t, []flow.Transition{
		{From: flow.StartName, To: "Check_Amount"},
		{From: "Check_Amount", To: "Escalate", Label: "Large order"},
		{From: "Check_Amount", To: "Log_Skip", Label: "Otherwise"},
	}, pf.Transitions)
}

func TestParseDecisionDefaultLabelFallback(t *testing.T) {
	doc := flowDoc(`
    <start>
        <connector><targetReference>Route</targetReference></connector>
    </start>
    <decisions>
        <name>Route</name>
        <label>Route</label>
        <defaultConnector><targetReference>Done</targetReference></defaultConnector>
    </decisions>
    <assignments>
        <name>Done</name>
        <label>Done</label>
    </assignments>`)

	pf, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "Default", pf.Transitions[1].Label)

	pf, err = ParseWithOptions(doc, Options{DefaultPathLabel: "No match"})
	require.NoError(t, err)
	assert.Equal(t, "No match", pf.Transitions[1].Label)
}

func TestParseLoopEdges(t *testing.T) {
	doc := flowDoc(`
    <start>
        <connector><targetReference>Each_Line</targetReference></connector>
    </start>
    <loops>
        <name>Each_Line</name>
        <label>Each Line</label>
        <collectionReference>orderLines</collectionReference>
        <iterationOrder>Asc</iterationOrder>
        <nextValueConnector><targetReference>Tally</targetReference></nextValueConnector>
        <noMoreValuesConnector><targetReference>Save_Total</targetReference></noMoreValuesConnector>
    </loops>
    <assignments>
        <name>Tally</name>
        <label>Tally</label>
        <connector>
            <targetReference>Each_Line</targetReference>
            <isGoTo>true</isGoTo>
        </connector>
    </assignments>
    <recordUpdates>
        <name>Save_Total</name>
        <label>Save Total</label>
    </recordUpdates>`)

	pf, err := Parse(doc)
	require.NoError(t, err)
	require.Equal(t, []flow.Transition{
		{From: flow.StartName, To: "Each_Line"},
		{From: "Tally", To: "Each_Line"},
		{From: "Each_Line", To: "Tally", Label: LoopEachLabel},
		{From: "Each_Line", To: "Save_Total", Label: "After Last"},
	}, pf.Transitions)

	// Loop exit label is configurable.
	pf, err = ParseWithOptions(doc, Options{LoopExitLabel: "End of loop"})
	require.NoError(t, err)
	assert.Equal(t, "End of loop", pf.Transitions[3].Label)

	// The back edge carries the go-to flag on its connector.
	tally := pf.NameToNode["Tally"].(*flow.Assignment)
	assert.True(t, tally.Connector.IsGoTo)
}

func TestParseFaultEdge(t *testing.T) {
	pf, err := Parse(flowDoc(`
    <start>
        <connector><targetReference>Create_Order</targetReference></connector>
    </start>
    <recordCreates>
        <name>Create_Order</name>
        <label>Create Order</label>
        <object>Order__c</object>
        <connector><targetReference>Notify</targetReference></connector>
        <faultConnector><targetReference>Log_Error</targetReference></faultConnector>
    </recordCreates>
    <actionCalls>
        <name>Notify</name>
        <label>Notify</label>
        <actionName>emailSimple</actionName>
    </actionCalls>
    <customErrors>
        <name>Log_Error</name>
        <label>Log Error</label>
        <customErrorMessages>
            <errorMessage>Order creation failed</errorMessage>
        </customErrorMessages>
    </customErrors>`))
	require.NoError(t, err)

	require.Len(t, pf.Transitions, 3)
	assert.Equal(t, flow.Transition{From: "Create_Order", To: "Log_Error", Fault: true, Label: FaultLabel}, pf.Transitions[2])
}

func TestParseStartScheduledPaths(t *testing.T) {
	pf, err := Parse(flowDoc(`
    <start>
        <object>Account</object>
        <recordTriggerType>Update</recordTriggerType>
        <triggerType>RecordAfterSave</triggerType>
        <connector><targetReference>Main</targetReference></connector>
        <scheduledPaths>
            <name>Follow_Up</name>
            <label>One hour later</label>
            <timeSource>RecordTriggerEvent</timeSource>
            <offsetNumber>1</offsetNumber>
            <offsetUnit>Hours</offsetUnit>
            <connector><targetReference>Remind</targetReference></connector>
        </scheduledPaths>
        <scheduledPaths>
            <name>Async_Path</name>
            <pathType>AsyncAfterCommit</pathType>
            <connector><targetReference>Sync_External</targetReference></connector>
        </scheduledPaths>
    </start>
    <assignments>
        <name>Main</name>
        <label>Main</label>
    </assignments>
    <actionCalls>
        <name>Remind</name>
        <label>Remind</label>
    </actionCalls>
    <actionCalls>
        <name>Sync_External</name>
        <label>Sync External</label>
    </actionCalls>`))
	require.NoError(t, err)

	require.Equal(t, []flow.Transition{
		{From: flow.StartName, To: "Main"},
		{From: flow.StartName, To: "Remind", Label: "One hour later"},
		{From: flow.StartName, To: "Sync_External", Label: AsyncPathLabel},
	}, pf.Transitions)
}

func TestParseWaitEdges(t *testing.T) {
	pf, err := Parse(flowDoc(`
    <start>
        <connector><targetReference>Hold</targetReference></connector>
    </start>
    <waits>
        <name>Hold</name>
        <label>Hold</label>
        <waitEvents>
            <name>Approved</name>
            <label>Manager approved</label>
            <eventType>FlowExecutionErrorEvent</eventType>
            <connector><targetReference>Proceed</targetReference></connector>
        </waitEvents>
        <defaultConnector><targetReference>Timeout_Path</targetReference></defaultConnector>
        <defaultConnectorLabel>Timed out</defaultConnectorLabel>
        <faultConnector><targetReference>Fault_Path</targetReference></faultConnector>
    </waits>
    <assignments>
        <name>Proceed</name>
        <label>Proceed</label>
    </assignments>
    <assignments>
        <name>Timeout_Path</name>
        <label>Timeout Path</label>
    </assignments>
    <assignments>
        <name>Fault_Path</name>
        <label>Fault Path</label>
    </assignments>`))
	require.NoError(t, err)

	require.Equal(t, []flow.Transition{
		{From: flow.StartName, To: "Hold"},
		{From: "Hold", To: "Proceed", Label: "Manager approved"},
		{From: "Hold", To: "Timeout_Path", Label: "Timed out"},
		{From: "Hold", To: "Fault_Path", Fault: true, Label: FaultLabel},
	}, pf.Transitions)
}

func TestParseStepConnectorList(t *testing.T) {
	pf, err := Parse(flowDoc(`
    <start>
        <connector><targetReference>Pick</targetReference></connector>
    </start>
    <steps>
        <name>Pick</name>
        <label>Pick</label>
        <connectors><targetReference>A</targetReference></connectors>
        <connectors><targetReference>B</targetReference></connectors>
    </steps>
    <assignments>
        <name>A</name>
        <label>A</label>
    </assignments>
    <assignments>
        <name>B</name>
        <label>B</label>
    </assignments>`))
	require.NoError(t, err)

	require.Equal(t, []flow.Transition{
		{From: flow.StartName, To: "Pick"},
		{From: "Pick", To: "A"},
		{From: "Pick", To: "B"},
	}, pf.Transitions)
}
