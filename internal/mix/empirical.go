package mix

import "fmt"

// EmpiricalInputs are the design inputs for the rule-of-thumb method.
type EmpiricalInputs struct {
	StrengthMPa float64 // Target compressive strength (MPa), 20–60
	SlumpMm     float64 // Target slump (mm), 25–150
}

// DesignEmpirical proportions a mix from strength and slump using fixed
// linear rules of thumb (kg per m³):
//
//	cement = 350 + (f'c - 20)·5
//	water  = 180 + (slump/150)·20
//	fine   = 700 - (slump/150)·50
//	coarse = 1100 - (f'c - 20)·10
//
// These rules are empirical and are not reconciled with the absolute-volume
// method; the two calculators stand alone. Material gravities do not enter
// the formulas, so component volumes are not computed on this path.
func DesignEmpirical(in EmpiricalInputs) (*Result, error) {
	if !isFinite(in.StrengthMPa) || !isFinite(in.SlumpMm) {
		return nil, fmt.Errorf("non-finite input: strength=%v, slump=%v", in.StrengthMPa, in.SlumpMm)
	}

	cement := 350 + (in.StrengthMPa-20)*5
	water := 180 + (in.SlumpMm/150)*20
	fine := 700 - (in.SlumpMm/150)*50
	coarse := 1100 - (in.StrengthMPa-20)*10

	return &Result{
		Cement:  cement,
		Water:   water,
		Fine:    fine,
		Coarse:  coarse,
		WCRatio: water / cement,
	}, nil
}
