package mix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignEmpiricalKnownValues(t *testing.T) {
	result, err := DesignEmpirical(EmpiricalInputs{StrengthMPa: 30, SlumpMm: 75})
	require.NoError(t, err)

	assert.Equal(t, 400.0, result.Cement)
	assert.Equal(t, 190.0, result.Water)
	assert.Equal(t, 675.0, result.Fine)
	assert.Equal(t, 1000.0, result.Coarse)
	assert.InDelta(t, 0.475, result.WCRatio, 1e-12)
}

func TestDesignEmpiricalBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		strength float64
		slump    float64
	}{
		{"low end", 20, 25},
		{"high end", 60, 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DesignEmpirical(EmpiricalInputs{StrengthMPa: tc.strength, SlumpMm: tc.slump})
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.Cement, 0.0)
			assert.GreaterOrEqual(t, result.Water, 0.0)
			assert.GreaterOrEqual(t, result.Fine, 0.0)
			assert.GreaterOrEqual(t, result.Coarse, 0.0)
			assert.Greater(t, result.WCRatio, 0.0)
		})
	}
}

func TestDesignEmpiricalFormulas(t *testing.T) {
	// Spot-check the linear rules away from the fixture point
	result, err := DesignEmpirical(EmpiricalInputs{StrengthMPa: 50, SlumpMm: 150})
	require.NoError(t, err)

	assert.Equal(t, 500.0, result.Cement)      // 350 + 30*5
	assert.Equal(t, 200.0, result.Water)       // 180 + 1*20
	assert.Equal(t, 650.0, result.Fine)        // 700 - 1*50
	assert.Equal(t, 800.0, result.Coarse)      // 1100 - 30*10
	assert.InDelta(t, 0.4, result.WCRatio, 1e-12)
}

func TestDesignEmpiricalDeterministic(t *testing.T) {
	in := EmpiricalInputs{StrengthMPa: 35, SlumpMm: 100}

	first, err := DesignEmpirical(in)
	require.NoError(t, err)
	second, err := DesignEmpirical(in)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestDesignEmpiricalNoVolumes(t *testing.T) {
	// The empirical path carries no volume balance
	result, err := DesignEmpirical(EmpiricalInputs{StrengthMPa: 30, SlumpMm: 75})
	require.NoError(t, err)
	assert.Zero(t, result.TotalVolume())
}

func TestDesignEmpiricalNonFinite(t *testing.T) {
	_, err := DesignEmpirical(EmpiricalInputs{StrengthMPa: math.NaN(), SlumpMm: 75})
	assert.Error(t, err)

	_, err = DesignEmpirical(EmpiricalInputs{StrengthMPa: 30, SlumpMm: math.Inf(1)})
	assert.Error(t, err)
}
