// Package filter evaluates expr-lang expressions against the docs returned by
// The One API. It runs locally, after the response is decoded, and never
// changes what is sent to the server.
package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprFilter represents a compiled expr filter
type ExprFilter struct {
	program *vm.Program
	expr    string
}

// helpers are available to every expression. Doc fields are added per call.
func helpers(doc map[string]any) map[string]any {
	return map[string]any{
		"Doc": doc,
		"hasField": func(field string) bool {
			_, ok := doc[field]
			return ok
		},
		"fold": func(a, b string) bool {
			return strings.EqualFold(a, b)
		},
	}
}

// CompileExprFilter compiles an expr filter expression
func CompileExprFilter(expression string) (*ExprFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers(map[string]any{})),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &ExprFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against one decoded doc.
// Doc fields are top-level variables, e.g. `runtimeInMinutes > 180`.
func (f *ExprFilter) Evaluate(doc map[string]any) (bool, error) {
	env := make(map[string]any, len(doc)+3)
	maps.Copy(env, doc)
	maps.Copy(env, helpers(doc))

	out, err := expr.Run(f.program, env)
	if err != nil {
		id, _ := doc["_id"].(string)
		return false, &EvaluationError{Expression: f.expr, DocID: id, Reason: err.Error(), Err: err}
	}

	matched, _ := out.(bool)
	return matched, nil
}

// String returns the original expression
func (f *ExprFilter) String() string {
	return f.expr
}

// Apply keeps the docs of a page payload that satisfy f. Docs that fail to
// evaluate are dropped. Payloads without a docs array are returned unchanged;
// pagination counters are left as the server sent them.
func Apply(payload any, f *ExprFilter) any {
	page, ok := payload.(map[string]any)
	if !ok {
		return payload
	}
	docs, ok := page["docs"].([]any)
	if !ok {
		return payload
	}

	kept := make([]any, 0, len(docs))
	for _, d := range docs {
		doc, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if matched, err := f.Evaluate(doc); err == nil && matched {
			kept = append(kept, doc)
		}
	}

	out := maps.Clone(page)
	out["docs"] = kept
	return out
}
