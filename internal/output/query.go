package output

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/itchyny/gojq"
)

// QueryEngine evaluates jq expressions against report documents, for callers
// that want a slice of the batch result instead of the whole document.
// Compiled *Code objects are cached and reused across goroutines.
type QueryEngine struct {
	mu    sync.RWMutex
	cache map[string]*gojq.Code
}

// NewQueryEngine creates a new query engine.
func NewQueryEngine() *QueryEngine {
	return &QueryEngine{cache: make(map[string]*gojq.Code)}
}

// Apply compiles (or retrieves from cache) the jq expression and evaluates it
// against v, which is round-tripped through JSON so struct fields appear
// under their JSON names. One output is returned directly; multiple outputs
// are collected into a slice.
func (e *QueryEngine) Apply(ctx context.Context, expression string, v any) (any, error) {
	if expression == "" {
		return nil, fmt.Errorf("output: empty jq expression")
	}
	code, err := e.getOrCompile(expression)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("output: marshal query input: %w", err)
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("output: unmarshal query input: %w", err)
	}

	iter := code.RunWithContext(ctx, input)
	var results []any
	for {
		val, ok := iter.Next()
		if !ok {
			break
		}
		if qErr, isErr := val.(error); isErr {
			return nil, fmt.Errorf("output: jq evaluation failed for %q: %w", expression, qErr)
		}
		results = append(results, val)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

func (e *QueryEngine) getOrCompile(expression string) (*gojq.Code, error) {
	e.mu.RLock()
	code, ok := e.cache[expression]
	e.mu.RUnlock()
	if ok {
		return code, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("output: parse jq expression %q: %w", expression, err)
	}
	compiled, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("output: compile jq expression %q: %w", expression, err)
	}

	e.mu.Lock()
	e.cache[expression] = compiled
	e.mu.Unlock()
	return compiled, nil
}
