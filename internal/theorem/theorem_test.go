package theorem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range All() {
		t.Run(th.Name, func(t *testing.T) {
			require.False(t, seen[th.Name], "duplicate name")
			seen[th.Name] = true

			res, err := th.Check()
			require.NoError(t, err)
			require.NotEmpty(t, res.Residuals)
			assert.True(t, res.OK(), "residuals %v", res.Residuals)
			assert.LessOrEqual(t, res.Mean(), res.Max())
		})
	}
}

func TestResult(t *testing.T) {
	r := residuals(-3e-10, 1e-10, 2e-10)
	assert.True(t, r.OK())
	assert.InDelta(t, 3e-10, r.Max(), 1e-20)
	assert.InDelta(t, 2e-10, r.Mean(), 1e-20)

	assert.False(t, residuals(1e-3).OK())
	assert.False(t, residuals(math.NaN()).OK())

	var empty Result
	assert.True(t, empty.OK())
	assert.Zero(t, empty.Max())
	assert.Zero(t, empty.Mean())
}
