package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/nybbler/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Store != "json" {
		t.Errorf("expected store json, got %s", cfg.Store)
	}
	if cfg.Rules != models.DefaultRules() {
		t.Error("default config should carry the default rules")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg.Rules != models.DefaultRules() {
		t.Error("missing config should yield defaults")
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
store: sqlite
rules:
  hunger_decay_per_hour: 4
  happy_above: 60
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store != "sqlite" {
		t.Errorf("store = %s, want sqlite", cfg.Store)
	}
	if cfg.Rules.HungerDecayPerHour != 4 || cfg.Rules.HappyAbove != 60 {
		t.Errorf("overrides not applied: %+v", cfg.Rules)
	}

	defaults := models.DefaultRules()
	if cfg.Rules.EnergyDecayPerHour != defaults.EnergyDecayPerHour || cfg.Rules.Baseline != defaults.Baseline {
		t.Errorf("unspecified rules lost their defaults: %+v", cfg.Rules)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed yaml": "rules: [not, a, map",
		"unknown store":  "store: postgres",
		"bad rule":       "rules:\n  sick_below: 150\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Error("Load() = nil error, want error")
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Rules.HealHealthIncrease = 25
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "heal_health_increase: 25") {
		t.Errorf("saved yaml missing override:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Rules.HealHealthIncrease != 25 {
		t.Errorf("HealHealthIncrease = %v, want 25", loaded.Rules.HealHealthIncrease)
	}
}
