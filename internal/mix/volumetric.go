package mix

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomix/internal/material"
)

// VolumetricInputs are the design inputs for the absolute-volume method.
type VolumetricInputs struct {
	StrengthMPa           float64 // Target compressive strength (MPa)
	WaterCementRatio      float64 // w/c by mass, 0.3–0.7
	FineAggregateFraction float64 // Fine aggregate share of aggregate volume, 0.3–0.6
}

// Result holds the proportioned quantities for 1 m³ of concrete.
type Result struct {
	// Masses (kg/m³)
	Cement float64
	Water  float64
	Fine   float64
	Coarse float64

	// Water-cement ratio by mass
	WCRatio float64

	// Component absolute volumes (m³), filled by the volumetric method
	CementVolume float64
	WaterVolume  float64
	FineVolume   float64
	CoarseVolume float64
}

// TotalVolume returns the sum of component absolute volumes. For the
// volumetric method this should equal 1 m³ within floating-point tolerance.
func (r *Result) TotalVolume() float64 {
	return r.CementVolume + r.WaterVolume + r.FineVolume + r.CoarseVolume
}

// DesignVolumetric proportions a mix by the absolute-volume method: cement
// is fixed at the trial content, water follows from the w/c ratio, and the
// aggregate masses fill the remaining unit volume split by the fine fraction.
//
// The fixed cement content is a deliberate simplification carried from the
// source method; strength is recorded by the caller but does not enter the
// proportioning. Inputs are assumed pre-validated at the presentation
// boundary; only non-finite values are rejected here.
func DesignVolumetric(in VolumetricInputs, props material.Properties) (*Result, error) {
	if !isFinite(in.StrengthMPa) || !isFinite(in.WaterCementRatio) || !isFinite(in.FineAggregateFraction) {
		return nil, fmt.Errorf("non-finite input: strength=%v, w/c=%v, fine fraction=%v",
			in.StrengthMPa, in.WaterCementRatio, in.FineAggregateFraction)
	}

	cement := props.CementContent
	water := cement * in.WaterCementRatio

	// Specific gravity × 1000 = density in kg/m³
	cementVol := cement / (props.SGCement * 1000)
	waterVol := water / (props.SGWater * 1000)

	aggregateVol := 1 - (cementVol + waterVol)

	fineVol := aggregateVol * in.FineAggregateFraction
	coarseVol := aggregateVol * (1 - in.FineAggregateFraction)

	return &Result{
		Cement:       cement,
		Water:        water,
		Fine:         fineVol * props.SGFine * 1000,
		Coarse:       coarseVol * props.SGCoarse * 1000,
		WCRatio:      in.WaterCementRatio,
		CementVolume: cementVol,
		WaterVolume:  waterVol,
		FineVolume:   fineVol,
		CoarseVolume: coarseVol,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
