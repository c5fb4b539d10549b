package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlens/flowlens/internal/flow"
	"github.com/flowlens/flowlens/internal/parser"
)

func parse(t *testing.T, body string) *flow.ParsedFlow {
	t.Helper()
	pf, err := parser.Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Flow xmlns="http://soap.sforce.com/2006/04/metadata">
    <apiVersion>61.0</apiVersion>
    <label>Order Intake</label>
` + body + `
</Flow>`))
	require.NoError(t, err)
	return pf
}

const baseFlow = `
    <start>
        <connector><targetReference>Get_Acct</targetReference></connector>
    </start>
    <recordLookups>
        <name>Get_Acct</name>
        <label>Get Account</label>
        <object>Account</object>
        <connector><targetReference>Update_Acct</targetReference></connector>
    </recordLookups>
    <recordUpdates>
        <name>Update_Acct</name>
        <label>Update Account</label>
        <object>Account</object>
    </recordUpdates>`

func TestCompareIdenticalFlows(t *testing.T) {
	a := parse(t, baseFlow)
	b := parse(t, baseFlow)

	result := Compare(a, b)
	assert.Empty(t, result)
	assert.False(t, result.Changed())
	assert.Equal(t, Summary{}, result.Summary())
}

func TestCompareAddedDeletedModified(t *testing.T) {
	old := parse(t, baseFlow)
	updated := parse(t, `
    <start>
        <connector><targetReference>Get_Acct</targetReference></connector>
    </start>
    <recordLookups>
        <name>Get_Acct</name>
        <label>Get Account and Contacts</label>
        <object>Account</object>
        <connector><targetReference>Notify</targetReference></connector>
    </recordLookups>
    <actionCalls>
        <name>Notify</name>
        <label>Notify</label>
        <actionName>emailSimple</actionName>
    </actionCalls>`)

	result := Compare(old, updated)
	assert.Equal(t, Result{
		"Get_Acct":    StatusModified,
		"Update_Acct": StatusDeleted,
		"Notify":      StatusAdded,
	}, result)
	assert.True(t, result.Changed())
	assert.Equal(t, Summary{Added: 1, Deleted: 1, Modified: 1}, result.Summary())
}

func TestCompareKindChangeIsModified(t *testing.T) {
	old := parse(t, `
    <start>
        <connector><targetReference>Handle</targetReference></connector>
    </start>
    <assignments>
        <name>Handle</name>
        <label>Handle</label>
    </assignments>`)
	updated := parse(t, `
    <start>
        <connector><targetReference>Handle</targetReference></connector>
    </start>
    <screens>
        <name>Handle</name>
        <label>Handle</label>
    </screens>`)

	result := Compare(old, updated)
	assert.Equal(t, Result{"Handle": StatusModified}, result)
}

func TestCompareNilSides(t *testing.T) {
	pf := parse(t, baseFlow)

	added := Compare(nil, pf)
	require.Len(t, added, 3)
	for name, status := range added {
		assert.Equal(t, StatusAdded, status, name)
	}

	deleted := Compare(pf, nil)
	require.Len(t, deleted, 3)
	for name, status := range deleted {
		assert.Equal(t, StatusDeleted, status, name)
	}

	assert.Empty(t, Compare(nil, nil))
}

func TestCompareStartModification(t *testing.T) {
	old := parse(t, baseFlow)
	updated := parse(t, `
    <start>
        <object>Account</object>
        <triggerType>RecordAfterSave</triggerType>
        <connector><targetReference>Get_Acct</targetReference></connector>
    </start>
    <recordLookups>
        <name>Get_Acct</name>
        <label>Get Account</label>
        <object>Account</object>
        <connector><targetReference>Update_Acct</targetReference></connector>
    </recordLookups>
    <recordUpdates>
        <name>Update_Acct</name>
        <label>Update Account</label>
        <object>Account</object>
    </recordUpdates>`)

	result := Compare(old, updated)
	assert.Equal(t, Result{flow.StartName: StatusModified}, result)
}

func TestCompareIsSymmetricUnderSwap(t *testing.T) {
	old := parse(t, baseFlow)
	updated := parse(t, `
    <start>
        <connector><targetReference>Get_Acct</targetReference></connector>
    </start>
    <recordLookups>
        <name>Get_Acct</name>
        <label>Get Account</label>
        <object>Account</object>
    </recordLookups>`)

	forward := Compare(old, updated)
	backward := Compare(updated, old)

	// Swapping the inputs swaps ADDED and DELETED and preserves MODIFIED.
	assert.Equal(t, forward.Summary().Added, backward.Summary().Deleted)
	assert.Equal(t, forward.Summary().Deleted, backward.Summary().Added)
	assert.Equal(t, forward.Summary().Modified, backward.Summary().Modified)
}
