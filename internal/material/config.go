package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional materials override file. Any field left at zero
// keeps its default value, so a file may override a single gravity without
// restating the rest.
type Config struct {
	Materials    Properties   `yaml:"materials"`
	Substitution Substitution `yaml:"substitution"`
}

// LoadConfig reads a YAML materials file and merges it over the defaults.
func LoadConfig(path string) (Properties, Substitution, error) {
	props := Default()
	sub := DefaultSubstitution()

	data, err := os.ReadFile(path)
	if err != nil {
		return props, sub, fmt.Errorf("reading materials config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return props, sub, fmt.Errorf("parsing materials config %s: %w", path, err)
	}

	mergeProperties(&props, cfg.Materials)
	mergeSubstitution(&sub, cfg.Substitution)

	if err := validate(props, sub); err != nil {
		return Default(), DefaultSubstitution(), fmt.Errorf("materials config %s: %w", path, err)
	}
	return props, sub, nil
}

func mergeProperties(dst *Properties, src Properties) {
	if src.SGCement > 0 {
		dst.SGCement = src.SGCement
	}
	if src.SGFine > 0 {
		dst.SGFine = src.SGFine
	}
	if src.SGCoarse > 0 {
		dst.SGCoarse = src.SGCoarse
	}
	if src.SGWater > 0 {
		dst.SGWater = src.SGWater
	}
	if src.CementContent > 0 {
		dst.CementContent = src.CementContent
	}
}

func mergeSubstitution(dst *Substitution, src Substitution) {
	if src.SCMFraction > 0 {
		dst.SCMFraction = src.SCMFraction
	}
	if src.RecycledCoarseFraction > 0 {
		dst.RecycledCoarseFraction = src.RecycledCoarseFraction
	}
	if src.RecycledFineFraction > 0 {
		dst.RecycledFineFraction = src.RecycledFineFraction
	}
	if src.WaterAdjustment > 0 {
		dst.WaterAdjustment = src.WaterAdjustment
	}
	if src.EmissionsReductionPct > 0 {
		dst.EmissionsReductionPct = src.EmissionsReductionPct
	}
	if src.CostReductionPct > 0 {
		dst.CostReductionPct = src.CostReductionPct
	}
}

func validate(props Properties, sub Substitution) error {
	if props.SGCement <= 0 || props.SGFine <= 0 || props.SGCoarse <= 0 || props.SGWater <= 0 {
		return fmt.Errorf("specific gravities must be positive")
	}
	if props.CementContent <= 0 {
		return fmt.Errorf("cement content must be positive: %.1f", props.CementContent)
	}
	if sub.SCMFraction >= 1 || sub.RecycledCoarseFraction >= 1 || sub.RecycledFineFraction >= 1 {
		return fmt.Errorf("substitution fractions must be below 1.0")
	}
	return nil
}
