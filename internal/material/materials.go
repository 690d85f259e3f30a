package material

// Standard material data for normal-weight concrete mix proportioning

const (
	// Specific gravities (relative to water)
	SGCement = 3.15
	SGFine   = 2.65
	SGCoarse = 2.70
	SGWater  = 1.00

	// Trial cement content for the absolute-volume method
	DefaultCementContent = 400.0 // kg/m³

	// Selectable input ranges
	WCRatioMin  = 0.3
	WCRatioMax  = 0.7
	FineFracMin = 0.3
	FineFracMax = 0.6
	StrengthMin = 20.0  // MPa
	StrengthMax = 60.0  // MPa
	SlumpMin    = 25.0  // mm
	SlumpMax    = 150.0 // mm
)

// Properties holds the material data used by the mix calculators.
// Values are injected into the calculators so they stay pure; use
// Default() unless a project overrides them via a config file.
type Properties struct {
	SGCement float64 `yaml:"sg_cement"`
	SGFine   float64 `yaml:"sg_fine"`
	SGCoarse float64 `yaml:"sg_coarse"`
	SGWater  float64 `yaml:"sg_water"`

	// Cement content assumed by the volumetric calculator (kg/m³)
	CementContent float64 `yaml:"cement_content"`
}

// Default returns the standard material properties.
func Default() Properties {
	return Properties{
		SGCement:      SGCement,
		SGFine:        SGFine,
		SGCoarse:      SGCoarse,
		SGWater:       SGWater,
		CementContent: DefaultCementContent,
	}
}

// Substitution holds the fixed replacement ratios and adjustment factors
// applied by the sustainability optimizer.
type Substitution struct {
	// Fraction of cement replaced by supplementary cementitious material
	SCMFraction float64 `yaml:"scm_fraction"`

	// Fractions of aggregate replaced by recycled aggregate
	RecycledCoarseFraction float64 `yaml:"recycled_coarse_fraction"`
	RecycledFineFraction   float64 `yaml:"recycled_fine_fraction"`

	// Multiplier on water content to compensate workability loss
	WaterAdjustment float64 `yaml:"water_adjustment"`

	// Fixed reduction estimates (%)
	EmissionsReductionPct float64 `yaml:"emissions_reduction_pct"`
	CostReductionPct      float64 `yaml:"cost_reduction_pct"`
}

// DefaultSubstitution returns the standard substitution ratios
// (30% SCM, 20% recycled coarse, 15% recycled fine).
func DefaultSubstitution() Substitution {
	return Substitution{
		SCMFraction:            0.30,
		RecycledCoarseFraction: 0.20,
		RecycledFineFraction:   0.15,
		WaterAdjustment:        1.02,
		EmissionsReductionPct:  25.0,
		CostReductionPct:       15.0,
	}
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
