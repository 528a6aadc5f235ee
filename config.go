package so3grid

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SymmetryConfig names the point-group symmetry restricting the search.
type SymmetryConfig struct {
	Group string `yaml:"group"` // C, D, T, O or I; empty means no restriction
	Order int    `yaml:"order"` // cyclic/dihedral order
}

// GlobalConfig configures the global SO(3) search grid.
type GlobalConfig struct {
	PsiStep   float64 `yaml:"psi_step"`
	ThetaStep float64 `yaml:"theta_step"`
	PhiStep   float64 `yaml:"phi_step"` // cartesian strategy only
	Strategy  string  `yaml:"strategy"`
}

// LocalConfig configures the pole-centered refinement grid.
type LocalConfig struct {
	CoarsePhiStep   float64 `yaml:"coarse_phi_step"`
	CoarseThetaStep float64 `yaml:"coarse_theta_step"`
	CoarsePsiStep   float64 `yaml:"coarse_psi_step"`
	FinePhiStep     float64 `yaml:"fine_phi_step"`
	FineThetaStep   float64 `yaml:"fine_theta_step"`
	FinePsiStep     float64 `yaml:"fine_psi_step"`
	Strategy        string  `yaml:"strategy"`
}

// RollConfig configures the roll-axis grid. Axis, when present, must hold
// the two components of the roll axis vector.
type RollConfig struct {
	PsiStep   float64   `yaml:"psi_step"`
	PsiMin    float64   `yaml:"psi_min"`
	PsiMax    float64   `yaml:"psi_max"`
	ThetaStep float64   `yaml:"theta_step"`
	ThetaMin  float64   `yaml:"theta_min"`
	ThetaMax  float64   `yaml:"theta_max"`
	Axis      []float64 `yaml:"axis,omitempty"`
	AxisStep  float64   `yaml:"axis_step"`
}

// SearchConfig aggregates a declarative orientation-search plan.
type SearchConfig struct {
	Symmetry SymmetryConfig `yaml:"symmetry"`
	Global   GlobalConfig   `yaml:"global"`
	Local    LocalConfig    `yaml:"local"`
	Roll     RollConfig     `yaml:"roll"`
}

// LoadConfig reads a YAML search plan and fills in defaults for omitted
// step sizes and ranges.
func LoadConfig(path string) (*SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read search plan: %w", err)
	}

	var cfg SearchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if cfg.Global.PsiStep <= 0 {
		cfg.Global.PsiStep = 1.5
	}
	if cfg.Global.ThetaStep <= 0 {
		cfg.Global.ThetaStep = 2.5
	}
	if cfg.Global.Strategy == "" {
		cfg.Global.Strategy = "uniform"
	}
	if _, err := ParseStrategy(cfg.Global.Strategy); err != nil {
		return nil, err
	}

	if cfg.Local.CoarsePhiStep <= 0 {
		cfg.Local.CoarsePhiStep = 1.5
	}
	if cfg.Local.CoarseThetaStep <= 0 {
		cfg.Local.CoarseThetaStep = 2.5
	}
	if cfg.Local.CoarsePsiStep <= 0 {
		cfg.Local.CoarsePsiStep = 1.5
	}
	if cfg.Local.FinePhiStep <= 0 {
		cfg.Local.FinePhiStep = 0.1
	}
	if cfg.Local.FineThetaStep <= 0 {
		cfg.Local.FineThetaStep = 0.1
	}
	if cfg.Local.FinePsiStep <= 0 {
		cfg.Local.FinePsiStep = 0.1
	}
	if cfg.Local.Strategy == "" {
		cfg.Local.Strategy = "uniform"
	}
	if _, err := ParseStrategy(cfg.Local.Strategy); err != nil {
		return nil, err
	}

	if cfg.Roll.PsiStep <= 0 {
		cfg.Roll.PsiStep = 1.5
	}
	if cfg.Roll.PsiMin == 0 && cfg.Roll.PsiMax == 0 {
		cfg.Roll.PsiMin, cfg.Roll.PsiMax = -30, 30
	}
	if cfg.Roll.ThetaStep <= 0 {
		cfg.Roll.ThetaStep = 0.5
	}
	if cfg.Roll.ThetaMin == 0 && cfg.Roll.ThetaMax == 0 {
		cfg.Roll.ThetaMin, cfg.Roll.ThetaMax = -10, 10
	}
	if cfg.Roll.AxisStep <= 0 {
		cfg.Roll.AxisStep = 2
	}
	if cfg.Roll.Axis != nil && len(cfg.Roll.Axis) != 2 {
		return nil, fmt.Errorf("roll.axis must have exactly 2 components, got %d", len(cfg.Roll.Axis))
	}

	if cfg.Symmetry.Group != "" {
		if cfg.Symmetry.Order <= 0 {
			cfg.Symmetry.Order = 1
		}
		if _, err := GetSymmetryRanges(cfg.Symmetry.Group, cfg.Symmetry.Order); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// UniformGridOptions resolves the plan's global section, applying the
// symmetry restriction when one is named.
func (c *SearchConfig) UniformGridOptions() (UniformGridOptions, error) {
	strategy, err := ParseStrategy(c.Global.Strategy)
	if err != nil {
		return UniformGridOptions{}, err
	}
	opts := DefaultUniformGridOptions()
	opts.PsiStep = c.Global.PsiStep
	opts.ThetaStep = c.Global.ThetaStep
	opts.PhiStep = c.Global.PhiStep
	opts.Strategy = strategy

	if c.Symmetry.Group != "" {
		ranges, err := GetSymmetryRanges(c.Symmetry.Group, c.Symmetry.Order)
		if err != nil {
			return UniformGridOptions{}, err
		}
		opts.PhiMin, opts.PhiMax = ranges.PhiMin, ranges.PhiMax
		opts.ThetaMin, opts.ThetaMax = ranges.ThetaMin, ranges.ThetaMax
		opts.PsiMin, opts.PsiMax = ranges.PsiMin, ranges.PsiMax
	}
	return opts, nil
}

// LocalGridOptions resolves the plan's local refinement section.
func (c *SearchConfig) LocalGridOptions() (LocalGridOptions, error) {
	strategy, err := ParseStrategy(c.Local.Strategy)
	if err != nil {
		return LocalGridOptions{}, err
	}
	return LocalGridOptions{
		CoarsePhiStep:   c.Local.CoarsePhiStep,
		CoarseThetaStep: c.Local.CoarseThetaStep,
		CoarsePsiStep:   c.Local.CoarsePsiStep,
		FinePhiStep:     c.Local.FinePhiStep,
		FineThetaStep:   c.Local.FineThetaStep,
		FinePsiStep:     c.Local.FinePsiStep,
		Strategy:        strategy,
	}, nil
}

// RollGridOptions resolves the plan's roll section.
func (c *SearchConfig) RollGridOptions() RollGridOptions {
	opts := RollGridOptions{
		PsiStep:   c.Roll.PsiStep,
		PsiMin:    c.Roll.PsiMin,
		PsiMax:    c.Roll.PsiMax,
		ThetaStep: c.Roll.ThetaStep,
		ThetaMin:  c.Roll.ThetaMin,
		ThetaMax:  c.Roll.ThetaMax,
		AxisStep:  c.Roll.AxisStep,
	}
	if len(c.Roll.Axis) == 2 {
		opts.Axis = &[2]float64{c.Roll.Axis[0], c.Roll.Axis[1]}
	}
	return opts
}
