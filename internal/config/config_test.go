package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/quantum-jumper/internal/levels"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg := DefaultQuantumConfig()
	if err := yaml.Unmarshal(defaultQuantumYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultQuantumConfig() {
		t.Errorf("embedded defaults drifted from DefaultQuantumConfig:\n%+v", cfg)
	}
}

func TestDefaultTuningRoundTrip(t *testing.T) {
	if got := DefaultQuantumConfig().ToTuning(); got != sim.DefaultTuning() {
		t.Errorf("ToTuning() = %+v\nwant %+v", got, sim.DefaultTuning())
	}
}

func TestDefaultGenParams(t *testing.T) {
	if got := DefaultQuantumConfig().ToGenParams(); got != levels.DefaultGenParams() {
		t.Errorf("ToGenParams() = %+v\nwant %+v", got, levels.DefaultGenParams())
	}
}

func TestLoadQuantumFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadQuantum("")
	if err != nil {
		t.Fatalf("LoadQuantum: %v", err)
	}
	if cfg != DefaultQuantumConfig() {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadQuantumUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".quantum", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "quantum.yaml"), []byte("energy:\n  max: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuantum("")
	if err != nil {
		t.Fatalf("LoadQuantum: %v", err)
	}
	if cfg.Energy.Max != 40 {
		t.Errorf("energy max = %d, want 40", cfg.Energy.Max)
	}
}

func TestLoadQuantumCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  jump_impulse: 15\nboundary:\n  limit_ms: 3000\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuantum(path)
	if err != nil {
		t.Fatalf("LoadQuantum: %v", err)
	}
	if cfg.Physics.JumpImpulse != 15 || cfg.Boundary.LimitMS != 3000 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Physics.MoveSpeed != 5 || cfg.Modes.Casual.First != 11 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadQuantumCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("energy: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"malformed", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadQuantum(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyQuantumPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		energy  int
		limitMS float64
	}{
		{DifficultyEasy, 150, 7500},
		{DifficultyNormal, 100, 5000},
		{DifficultyHard, 70, 3000},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultQuantumConfig()
			ApplyQuantumPreset(&cfg, tt.preset)
			if cfg.Energy.Max != tt.energy || cfg.Boundary.LimitMS != tt.limitMS {
				t.Errorf("energy=%d limit=%v, want %d %v", cfg.Energy.Max, cfg.Boundary.LimitMS, tt.energy, tt.limitMS)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tt.in, got, ok)
		}
	}
}
