package so3grid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "search.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "global:\n  psi_step: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Global.PsiStep != 3 {
		t.Errorf("expected psi_step 3 from file, got %v", cfg.Global.PsiStep)
	}
	if cfg.Global.ThetaStep != 2.5 || cfg.Global.Strategy != "uniform" {
		t.Errorf("expected default theta_step and strategy, got %+v", cfg.Global)
	}
	if cfg.Local.FinePsiStep != 0.1 || cfg.Local.CoarseThetaStep != 2.5 {
		t.Errorf("expected default local steps, got %+v", cfg.Local)
	}
	if cfg.Roll.PsiMin != -30 || cfg.Roll.PsiMax != 30 || cfg.Roll.AxisStep != 2 {
		t.Errorf("expected default roll ranges, got %+v", cfg.Roll)
	}
}

func TestLoadConfigSymmetry(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "symmetry:\n  group: C\n  order: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.UniformGridOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.PhiMin != -90 || opts.PhiMax != 90 {
		t.Errorf("expected C2 azimuth range [-90, 90], got [%v, %v]", opts.PhiMin, opts.PhiMax)
	}
	if opts.ThetaMin != -180 || opts.ThetaMax != 180 {
		t.Errorf("expected C2 polar range [-180, 180], got [%v, %v]", opts.ThetaMin, opts.ThetaMax)
	}
	if opts.PsiMin != -180 || opts.PsiMax != 180 {
		t.Errorf("expected C2 in-plane range [-180, 180], got [%v, %v]", opts.PsiMin, opts.PsiMax)
	}
}

func TestLoadConfigUnknownSymmetryGroup(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "symmetry:\n  group: X\n"))
	var groupErr SymmetryGroupError
	if !errors.As(err, &groupErr) {
		t.Fatalf("expected SymmetryGroupError, got %v", err)
	}
}

func TestLoadConfigInvalidStrategy(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "global:\n  strategy: spiral\n"))
	var nameErr StrategyNameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected StrategyNameError, got %v", err)
	}
}

func TestLoadConfigBadRollAxis(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "roll:\n  axis: [1, 0, 0]\n"))
	if err == nil {
		t.Fatal("expected error for a 3-component roll axis")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestSearchConfigRollOptions(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "roll:\n  axis: [0, 1]\n  theta_step: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts := cfg.RollGridOptions()
	if opts.Axis == nil || *opts.Axis != [2]float64{0, 1} {
		t.Fatalf("expected fixed axis (0, 1), got %v", opts.Axis)
	}
	if opts.ThetaStep != 1 || opts.ThetaMin != -10 || opts.ThetaMax != 10 {
		t.Errorf("expected theta step 1 over default range, got %+v", opts)
	}
}

func TestSearchConfigLocalOptions(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "local:\n  coarse_psi_step: 2\n  strategy: cartesian\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.LocalGridOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.CoarsePsiStep != 2 || opts.Strategy != StrategyCartesian {
		t.Errorf("expected coarse psi step 2 with cartesian strategy, got %+v", opts)
	}
	if opts.FineThetaStep != 0.1 {
		t.Errorf("expected default fine theta step, got %v", opts.FineThetaStep)
	}
}
