package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movieDoc(id, name string, runtime, budget float64) map[string]any {
	return map[string]any{
		"_id":              id,
		"name":             name,
		"runtimeInMinutes": runtime,
		"budgetInMillions": budget,
	}
}

func TestCompileExprFilter(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "comparison", expression: `runtimeInMinutes > 180`},
		{name: "string match", expression: `name matches "(?i)ring"`},
		{name: "helper", expression: `hasField("dialog") and fold(character, "X")`},
		{name: "empty expression", expression: "  ", wantErr: true},
		{name: "invalid syntax", expression: `name == "unclosed`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CompileExprFilter(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestEvaluate(t *testing.T) {
	rotk := movieDoc("m3", "The Return of the King", 201, 94)

	tests := []struct {
		expression string
		expected   bool
	}{
		{`runtimeInMinutes > 200`, true},
		{`runtimeInMinutes > 201`, false},
		{`budgetInMillions < 100 and name contains "King"`, true},
		{`lower(name) startsWith "the return"`, true},
		{`hasField("dialog")`, false},
		{`Doc["_id"] == "m3"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := CompileExprFilter(tt.expression)
			require.NoError(t, err)

			got, err := f.Evaluate(rotk)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_Error(t *testing.T) {
	f, err := CompileExprFilter(`dialog + 1 > 2`)
	require.NoError(t, err)

	_, err = f.Evaluate(map[string]any{"_id": "q1", "dialog": "Deagol!!"})
	require.Error(t, err)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "q1", evalErr.DocID)
}

func TestApply(t *testing.T) {
	payload := map[string]any{
		"docs": []any{
			movieDoc("m1", "The Two Towers", 179, 94),
			movieDoc("m2", "The Fellowship of the Ring", 178, 93),
			movieDoc("m3", "The Return of the King", 201, 94),
		},
		"total": 3.0,
	}

	f, err := Compile(`runtimeInMinutes >= 179`)
	require.NoError(t, err)

	out, ok := Apply(payload, f).(map[string]any)
	require.True(t, ok)

	docs := out["docs"].([]any)
	require.Len(t, docs, 2)
	assert.Equal(t, "m1", docs[0].(map[string]any)["_id"])
	assert.Equal(t, "m3", docs[1].(map[string]any)["_id"])
	assert.Equal(t, 3.0, out["total"])

	// input is not modified
	assert.Len(t, payload["docs"], 3)
}

func TestApply_NonPagePayload(t *testing.T) {
	f, err := Compile(`true`)
	require.NoError(t, err)

	assert.Equal(t, "plain", Apply("plain", f))
	noDocs := map[string]any{"success": false}
	assert.Equal(t, noDocs, Apply(noDocs, f))
}

func TestCompiler_Cache(t *testing.T) {
	c := NewCompiler(2)

	a1, err := c.Compile(`name == "a"`)
	require.NoError(t, err)
	a2, err := c.Compile(`name == "a"`)
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	_, err = c.Compile(`name == "b"`)
	require.NoError(t, err)
	_, err = c.Compile(`name == "c"`)
	require.NoError(t, err)
	assert.Equal(t, 2, c.cache.Size())

	a3, err := c.Compile(`name == "a"`)
	require.NoError(t, err)
	assert.NotSame(t, a1, a3, "evicted expression is recompiled")

	_, err = c.Compile("")
	require.Error(t, err)
	assert.Equal(t, 2, c.cache.Size())

	c.cache.Clear()
	assert.Zero(t, c.cache.Size())
}
