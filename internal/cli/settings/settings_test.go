package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/config"
	"github.com/julianstephens/nybbler/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	dir := t.TempDir()
	return &cli.Context{
		Store:      storage.NewJSONStore(filepath.Join(dir, "pet.json")),
		Config:     config.DefaultConfig(),
		ConfigPath: filepath.Join(dir, "config", "config.yaml"),
		DataDir:    dir,
	}
}

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatalf("settings --list failed: %v", err)
	}
	if _, err := os.Stat(ctx.ConfigPath); !os.IsNotExist(err) {
		t.Error("--list should not write the config file")
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx := setupTestContext(t)

	decay := 4.0
	store := "sqlite"
	cmd := &SettingsCmd{HungerDecay: &decay, Storage: &store}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	cfg, err := config.Load(ctx.ConfigPath)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if cfg.Rules.HungerDecayPerHour != 4 {
		t.Errorf("hunger decay = %v, want 4", cfg.Rules.HungerDecayPerHour)
	}
	if cfg.Store != "sqlite" {
		t.Errorf("store = %q, want sqlite", cfg.Store)
	}
	if cfg.Rules.HappinessDecayPerHour != config.DefaultConfig().Rules.HappinessDecayPerHour {
		t.Error("untouched settings changed")
	}
}

func TestSettingsCmd_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  *SettingsCmd
	}{
		{"negative decay", &SettingsCmd{EnergyDecay: ptr(-1.0)}},
		{"threshold out of range", &SettingsCmd{LowThreshold: ptr(150.0)}},
		{"unknown store", &SettingsCmd{Storage: ptr("postgres")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestContext(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected validation error")
			}
			if _, err := os.Stat(ctx.ConfigPath); !os.IsNotExist(err) {
				t.Error("invalid settings were written")
			}
		})
	}
}

func TestSettingsCmd_Init(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&SettingsCmd{Init: true}).Run(ctx); err != nil {
		t.Fatalf("settings --init failed: %v", err)
	}
	if _, err := config.Load(ctx.ConfigPath); err != nil {
		t.Fatalf("written config does not load: %v", err)
	}

	if err := (&SettingsCmd{Init: true}).Run(ctx); err == nil {
		t.Error("expected --init to refuse overwriting without --force")
	}
	if err := (&SettingsCmd{Init: true, Force: true}).Run(ctx); err != nil {
		t.Errorf("settings --init --force failed: %v", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
