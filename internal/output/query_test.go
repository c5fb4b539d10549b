package output

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlens/flowlens/internal/pipeline"
)

func TestQueryEngineApply(t *testing.T) {
	engine := NewQueryEngine()
	report := &pipeline.Report{
		Syntax: "mermaid",
		Flows: []pipeline.FlowResult{
			{File: "flows/A.xml", Label: "A"},
			{File: "flows/B.xml", Label: "B", Error: "boom"},
		},
	}

	result, err := engine.Apply(context.Background(), ".flows[0].file", report)
	require.NoError(t, err)
	assert.Equal(t, "flows/A.xml", result)
}

func TestQueryEngineMultipleOutputs(t *testing.T) {
	engine := NewQueryEngine()
	report := &pipeline.Report{
		Flows: []pipeline.FlowResult{
			{File: "flows/A.xml"},
			{File: "flows/B.xml"},
		},
	}

	result, err := engine.Apply(context.Background(), ".flows[].file", report)
	require.NoError(t, err)
	assert.Equal(t, []any{"flows/A.xml", "flows/B.xml"}, result)
}

func TestQueryEngineFiltersFailures(t *testing.T) {
	engine := NewQueryEngine()
	report := &pipeline.Report{
		Flows: []pipeline.FlowResult{
			{File: "flows/A.xml"},
			{File: "flows/B.xml", Error: "boom"},
		},
	}

	result, err := engine.Apply(context.Background(), `[.flows[] | select(.error != null) | .file]`, report)
	require.NoError(t, err)
	assert.Equal(t, []any{"flows/B.xml"}, result)
}

func TestQueryEngineNoOutput(t *testing.T) {
	engine := NewQueryEngine()

	result, err := engine.Apply(context.Background(), "empty", map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestQueryEngineInvalidExpression(t *testing.T) {
	engine := NewQueryEngine()

	_, err := engine.Apply(context.Background(), ".flows[", nil)
	assert.Error(t, err)

	_, err = engine.Apply(context.Background(), "", nil)
	assert.Error(t, err)
}

func TestQueryEngineCachesCompiledCode(t *testing.T) {
	engine := NewQueryEngine()

	_, err := engine.Apply(context.Background(), ".a", map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Len(t, engine.cache, 1)

	_, err = engine.Apply(context.Background(), ".a", map[string]any{"a": 2})
	require.NoError(t, err)
	assert.Len(t, engine.cache, 1)
}
