package truth_test

import (
	"testing"

	"github.com/db47h/dilo"
	"github.com/db47h/dilo/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations(t *testing.T) {
	rows, err := truth.Combinations([]string{"x", "y"})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	i := 0
	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			assert.Equal(t, map[string]bool{"x": x, "y": y}, rows[i].Map())
			i++
		}
	}
	assert.Equal(t, []dilo.Signal{{Port: "x", Value: true}, {Port: "y", Value: false}}, rows[2].Signals())
}

func TestCombinations_edge_cases(t *testing.T) {
	rows, err := truth.Combinations(nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Map())

	_, err = truth.Combinations([]string{"a", "b", "a"})
	assert.Error(t, err)

	names := make([]string, truth.MaxVars+1)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	_, err = truth.Combinations(names)
	assert.Error(t, err)
}

func TestCombinations_does_not_alias_names(t *testing.T) {
	names := []string{"a", "b"}
	rows, err := truth.Combinations(names)
	require.NoError(t, err)
	names[0] = "z"
	assert.Equal(t, "a", rows[0].Names[0])
}

func TestTable(t *testing.T) {
	r, err := truth.Table([]string{"a", "b", "c"}, func(r truth.Row) (bool, error) {
		m := r.Map()
		return m["a"] != m["b"] != m["c"], nil
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false, true, false, false, true}, r)
}

func TestDeviceTable(t *testing.T) {
	r, err := truth.DeviceTable(dilo.Nand(), "q")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, r)

	_, err = truth.DeviceTable(dilo.Nand(), "x")
	assert.ErrorIs(t, err, dilo.ErrNoSuchPort)
}
