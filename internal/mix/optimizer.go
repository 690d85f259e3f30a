package mix

import (
	"math/rand"

	"github.com/alexiusacademia/gomix/internal/material"
)

// OptimizedResult holds a sustainable reallocation of a base mix: part of
// the cement is replaced with supplementary cementitious material and part
// of each aggregate with recycled aggregate.
type OptimizedResult struct {
	// Masses (kg/m³)
	Cement         float64 // Retained portland cement
	SCM            float64 // Supplementary cementitious material
	Water          float64 // Adjusted for workability
	FineNatural    float64
	FineRecycled   float64
	CoarseNatural  float64
	CoarseRecycled float64

	// w/c over the combined binder (cement + SCM)
	WCRatio float64

	// Estimated fresh/hardened properties after substitution. These carry
	// a random perturbation; see Optimizer.
	EstimatedStrengthMPa float64
	EstimatedSlumpMm     float64

	// Fixed reduction estimates (%)
	EmissionsReductionPct float64
	CostReductionPct      float64
}

// Optimizer derives a sustainable mix from a base mix using fixed
// substitution ratios. The property estimates are perturbed through the
// injected random source, so callers that need reproducible output seed it
// themselves.
type Optimizer struct {
	sub material.Substitution
	rng *rand.Rand
}

// NewOptimizer creates an optimizer with the given substitution ratios and
// random seed.
func NewOptimizer(sub material.Substitution, seed int64) *Optimizer {
	return &Optimizer{
		sub: sub,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Optimize reallocates the base mix per the substitution ratios. The mass
// splits and the water adjustment are deterministic; only the estimated
// strength and slump vary between calls:
//
//	estimated strength = f'c - U(0, 2)        (slight loss from substitution)
//	estimated slump    = slump + U(-10, 10)   (workability variability)
func (o *Optimizer) Optimize(base *Result, in EmpiricalInputs) *OptimizedResult {
	cement := base.Cement * (1 - o.sub.SCMFraction)
	scm := base.Cement * o.sub.SCMFraction

	coarseNat := base.Coarse * (1 - o.sub.RecycledCoarseFraction)
	coarseRec := base.Coarse * o.sub.RecycledCoarseFraction

	fineNat := base.Fine * (1 - o.sub.RecycledFineFraction)
	fineRec := base.Fine * o.sub.RecycledFineFraction

	water := base.Water * o.sub.WaterAdjustment

	return &OptimizedResult{
		Cement:                cement,
		SCM:                   scm,
		Water:                 water,
		FineNatural:           fineNat,
		FineRecycled:          fineRec,
		CoarseNatural:         coarseNat,
		CoarseRecycled:        coarseRec,
		WCRatio:               water / (cement + scm),
		EstimatedStrengthMPa:  in.StrengthMPa - o.rng.Float64()*2,
		EstimatedSlumpMm:      in.SlumpMm + (o.rng.Float64()*20 - 10),
		EmissionsReductionPct: o.sub.EmissionsReductionPct,
		CostReductionPct:      o.sub.CostReductionPct,
	}
}
