package mix

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gomix/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignVolumetricWaterContent(t *testing.T) {
	result, err := DesignVolumetric(VolumetricInputs{
		StrengthMPa:           30,
		WaterCementRatio:      0.5,
		FineAggregateFraction: 0.4,
	}, material.Default())
	require.NoError(t, err)

	assert.Equal(t, 400.0, result.Cement)
	assert.Equal(t, 200.0, result.Water)
	assert.Equal(t, 0.5, result.WCRatio)
}

func TestDesignVolumetricVolumeClosure(t *testing.T) {
	props := material.Default()

	for wc := material.WCRatioMin; wc <= material.WCRatioMax+1e-9; wc += 0.05 {
		for ff := material.FineFracMin; ff <= material.FineFracMax+1e-9; ff += 0.05 {
			result, err := DesignVolumetric(VolumetricInputs{
				StrengthMPa:           30,
				WaterCementRatio:      wc,
				FineAggregateFraction: ff,
			}, props)
			require.NoError(t, err)

			if result.Cement < 0 || result.Water < 0 || result.Fine < 0 || result.Coarse < 0 {
				t.Fatalf("negative mass at wc=%.2f ff=%.2f: %+v", wc, ff, result)
			}

			if diff := math.Abs(result.TotalVolume() - 1.0); diff > 1e-9 {
				t.Errorf("volume closure violated at wc=%.2f ff=%.2f: total=%.12f", wc, ff, result.TotalVolume())
			}
		}
	}
}

func TestDesignVolumetricAggregateSplit(t *testing.T) {
	props := material.Default()
	result, err := DesignVolumetric(VolumetricInputs{
		StrengthMPa:           30,
		WaterCementRatio:      0.5,
		FineAggregateFraction: 0.4,
	}, props)
	require.NoError(t, err)

	// Aggregate volume left after cement and water
	aggVol := 1 - (400/(props.SGCement*1000) + 200/(props.SGWater*1000))
	assert.InDelta(t, aggVol*0.4, result.FineVolume, 1e-12)
	assert.InDelta(t, aggVol*0.6, result.CoarseVolume, 1e-12)
	assert.InDelta(t, result.FineVolume*props.SGFine*1000, result.Fine, 1e-9)
	assert.InDelta(t, result.CoarseVolume*props.SGCoarse*1000, result.Coarse, 1e-9)
}

func TestDesignVolumetricDeterministic(t *testing.T) {
	in := VolumetricInputs{StrengthMPa: 45, WaterCementRatio: 0.42, FineAggregateFraction: 0.35}
	props := material.Default()

	first, err := DesignVolumetric(in, props)
	require.NoError(t, err)
	second, err := DesignVolumetric(in, props)
	require.NoError(t, err)

	// Bit-identical, not just approximately equal
	assert.Equal(t, *first, *second)
}

func TestDesignVolumetricCustomProperties(t *testing.T) {
	props := material.Default()
	props.CementContent = 350

	result, err := DesignVolumetric(VolumetricInputs{
		StrengthMPa:           30,
		WaterCementRatio:      0.5,
		FineAggregateFraction: 0.4,
	}, props)
	require.NoError(t, err)

	assert.Equal(t, 350.0, result.Cement)
	assert.Equal(t, 175.0, result.Water)
	assert.InDelta(t, 1.0, result.TotalVolume(), 1e-9)
}

func TestDesignVolumetricNonFinite(t *testing.T) {
	props := material.Default()

	cases := []VolumetricInputs{
		{StrengthMPa: math.NaN(), WaterCementRatio: 0.5, FineAggregateFraction: 0.4},
		{StrengthMPa: 30, WaterCementRatio: math.Inf(1), FineAggregateFraction: 0.4},
		{StrengthMPa: 30, WaterCementRatio: 0.5, FineAggregateFraction: math.Inf(-1)},
	}
	for _, in := range cases {
		_, err := DesignVolumetric(in, props)
		assert.Error(t, err)
	}
}
