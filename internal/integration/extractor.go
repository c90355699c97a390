// Package integration talks to external HR systems. Their list endpoints
// disagree about response shape: some return a bare array, others wrap the
// collection under a payload key. The extractor normalizes both to one list.
package integration

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// Evaluator abstracts JMESPath operations for testability.
type Evaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements Evaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// ListExtractor pulls the collection out of a list response. Expr selects the
// collection inside keyed responses ("benefits", "data.items", ...); bare
// array responses bypass it entirely.
type ListExtractor struct {
	expr string
	jems Evaluator
}

// ListExtractorOptions groups construction parameters for ListExtractor.
type ListExtractorOptions struct {
	// Expr is the JMESPath expression for keyed responses. Empty means only
	// bare arrays are accepted.
	Expr string
	// Evaluator overrides the JMESPath engine, mainly for tests.
	Evaluator Evaluator
}

// NewListExtractor validates the expression and returns the extractor.
func NewListExtractor(opts ListExtractorOptions) (*ListExtractor, error) {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	if err := jems.Validate(opts.Expr); err != nil {
		return nil, fmt.Errorf("invalid list expression %q: %w", opts.Expr, err)
	}
	return &ListExtractor{expr: opts.Expr, jems: jems}, nil
}

// Extract returns the collection items from a raw list response body.
func (e *ListExtractor) Extract(payload []byte) ([]json.RawMessage, error) {
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	switch v := decoded.(type) {
	case []any:
		return rawItems(v)
	case map[string]any:
		if e.expr == "" {
			return nil, errors.New("keyed list response but no list expression configured")
		}
		selected, err := e.jems.Evaluate(e.expr, v)
		if err != nil {
			return nil, fmt.Errorf("evaluate list expression: %w", err)
		}
		items, ok := selected.([]any)
		if !ok {
			return nil, fmt.Errorf("list expression %q did not select an array", e.expr)
		}
		return rawItems(items)
	default:
		return nil, errors.New("list response is neither an array nor an object")
	}
}

// rawItems re-encodes decoded items so callers can unmarshal into their own types.
func rawItems(items []any) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("re-encode list item: %w", err)
		}
		out = append(out, raw)
	}
	return out, nil
}

// DecodeItems unmarshals extracted raw items into a typed slice.
func DecodeItems[T any](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode list item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
