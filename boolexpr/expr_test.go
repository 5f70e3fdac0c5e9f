package boolexpr_test

import (
	"testing"

	"github.com/db47h/dilo/boolexpr"
	"github.com/db47h/dilo/truth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(t *testing.T, expr string, names ...string) []bool {
	t.Helper()
	e, err := boolexpr.Parse(expr)
	require.NoError(t, err)
	r, err := truth.Table(names, func(r truth.Row) (bool, error) {
		return e.Eval(r.Map())
	})
	require.NoError(t, err)
	return r
}

func TestEval(t *testing.T) {
	assert.Equal(t,
		[]bool{true, false, false, false, true, false, false, false, true, false, true, true, true, false, false, false},
		table(t, "((A' + B) * C + C' * D)'", "A", "B", "C", "D"))

	td := []struct {
		expr   string
		result []bool
	}{
		{"a * b", []bool{false, false, false, true}},
		{"a + b", []bool{false, true, true, true}},
		{"a' * b", []bool{false, true, false, false}},
		{"(a * b)'", []bool{true, true, true, false}},
		{"a''", []bool{false, false, true, true}},
		{"a + b * 0", []bool{false, false, true, true}},
		{"(a + b) * 1", []bool{false, true, true, true}},
		{"a*b'+a'*b", []bool{false, true, true, false}},
	}
	for _, d := range td {
		assert.Equal(t, d.result, table(t, d.expr, "a", "b"), d.expr)
	}
}

func TestEval_missing_variable(t *testing.T) {
	e := boolexpr.MustParse("a * b + c")
	_, err := e.Eval(map[string]bool{"a": false, "c": true})
	assert.True(t, errors.Is(err, boolexpr.ErrMissingVariable))
	assert.Contains(t, err.Error(), `"b"`)

	v, err := e.Eval(map[string]bool{"a": true, "b": true, "c": false})
	require.NoError(t, err)
	assert.True(t, v)
}

func TestParse_errors(t *testing.T) {
	for _, s := range []string{
		"",
		"a *",
		"+ a",
		"(a + b",
		"a + b)",
		"ab",
		"a & b",
		"'a",
		"2",
		"()",
	} {
		_, err := boolexpr.Parse(s)
		assert.Error(t, err, "%q", s)
	}
	assert.Panics(t, func() { boolexpr.MustParse("a +") })
}

func TestExpr_String(t *testing.T) {
	e := boolexpr.MustParse("y' * z + w * x * y + w' * x' * y")
	assert.Equal(t, "((y' * z) + (w * x * y) + (w' * x' * y))", e.String())
	assert.Equal(t, "y' * z + w * x * y + w' * x' * y", e.Source())
	assert.Equal(t, []string{"w", "x", "y", "z"}, e.Vars())
	assert.Equal(t, "(a * 1)'", boolexpr.MustParse("(a*1)'").String())
}
