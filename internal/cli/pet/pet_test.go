package pet

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/config"
	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/storage"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func setupTestContext(t *testing.T, lastUpdated time.Time) *cli.Context {
	t.Helper()
	dataDir := t.TempDir()

	ctx := &cli.Context{
		Store:      storage.NewJSONStore(filepath.Join(dataDir, "pet.json")),
		Config:     config.DefaultConfig(),
		ConfigPath: filepath.Join(dataDir, "config.yaml"),
		DataDir:    dataDir,
		Clock:      func() time.Time { return testNow },
	}
	if !lastUpdated.IsZero() {
		p := ctx.Rules().NewPet("Rex", models.CharacterCat, lastUpdated)
		if err := ctx.Store.Save(p); err != nil {
			t.Fatalf("failed to save test pet: %v", err)
		}
	}
	return ctx
}

func TestStatusCmd_AppliesDecayAndSaves(t *testing.T) {
	ctx := setupTestContext(t, testNow.Add(-5*time.Hour))

	if err := (&StatusCmd{}).Run(ctx); err != nil {
		t.Fatalf("status command failed: %v", err)
	}

	saved, err := ctx.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.Hunger != 70 || saved.Health != 80 {
		t.Errorf("expected decayed stats 70/80, got hunger %v health %v", saved.Hunger, saved.Health)
	}
	if !saved.LastUpdated.Equal(testNow) {
		t.Errorf("last_updated = %v, want %v", saved.LastUpdated, testNow)
	}
}

func TestStatusCmd_NoPet(t *testing.T) {
	ctx := setupTestContext(t, time.Time{})

	if err := (&StatusCmd{}).Run(ctx); !stderrors.Is(err, cli.ErrNoPet) {
		t.Errorf("expected ErrNoPet, got %v", err)
	}
}

func TestStatusCmd_DamagedSave(t *testing.T) {
	ctx := setupTestContext(t, time.Time{})
	if err := os.WriteFile(ctx.Store.GetConfigPath(), []byte("]["), 0600); err != nil {
		t.Fatal(err)
	}

	if err := (&StatusCmd{}).Run(ctx); !errors.IsPersistence(err) {
		t.Errorf("expected PersistenceError, got %v", err)
	}
}

func TestActCmd(t *testing.T) {
	tests := []struct {
		action string
		check  func(models.Pet) bool
	}{
		{"feed", func(p models.Pet) bool { return p.Hunger == 100 }},
		{"EAT", func(p models.Pet) bool { return p.Hunger == 100 }},
		{"play", func(p models.Pet) bool { return p.Happiness == 100 && p.Energy == 65 }},
		{"sleep", func(p models.Pet) bool { return p.Energy == 100 }},
		{"heal", func(p models.Pet) bool { return p.Health == 100 }},
		{"status", func(p models.Pet) bool { return p.Hunger == 80 }},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			ctx := setupTestContext(t, testNow)
			if err := (&ActCmd{Action: tt.action}).Run(ctx); err != nil {
				t.Fatalf("act %s failed: %v", tt.action, err)
			}
			saved, err := ctx.Store.Load()
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(saved) {
				t.Errorf("unexpected pet after %s: %+v", tt.action, saved)
			}
		})
	}
}

func TestActCmd_InvalidAction(t *testing.T) {
	for _, action := range []string{"dance", "", "quit"} {
		ctx := setupTestContext(t, testNow)
		err := (&ActCmd{Action: action}).Run(ctx)
		if !errors.IsInput(err) {
			t.Errorf("act %q: expected InputError, got %v", action, err)
		}
	}
}

func TestActCmd_DeceasedPet(t *testing.T) {
	ctx := setupTestContext(t, testNow.Add(-1000*time.Hour))

	if err := (&ActCmd{Action: "heal"}).Run(ctx); err == nil {
		t.Error("expected an error acting on a deceased pet")
	}
}

func TestForecastCmd(t *testing.T) {
	ctx := setupTestContext(t, testNow)

	if err := (&ForecastCmd{Hours: 48, Height: 8}).Run(ctx); err != nil {
		t.Fatalf("forecast command failed: %v", err)
	}

	saved, err := ctx.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.Hunger != 80 {
		t.Error("forecast changed the saved pet")
	}

	for _, hours := range []int{0, -1, maxForecastHours + 1} {
		if err := (&ForecastCmd{Hours: hours, Height: 8}).Run(ctx); !errors.IsInput(err) {
			t.Errorf("forecast --hours %d: expected InputError, got %v", hours, err)
		}
	}
}

func TestPlotForecast(t *testing.T) {
	rules := models.DefaultRules()
	p := rules.NewPet("Rex", models.CharacterCat, testNow)
	points := []models.Pet{p}
	for i := 0; i < 60; i++ {
		rules.ApplyDecay(&p, time.Hour)
		points = append(points, p)
	}

	plot := plotForecast(points, 10)
	for _, want := range []string{"hunger", "health", "next 60 hours"} {
		if !strings.Contains(plot, want) {
			t.Errorf("plot missing %q", want)
		}
	}

	// 30h to reach the low threshold, then 80 health at 5/h lasts 16h
	hour, ok := deathHour(points)
	if !ok || hour != 46 {
		t.Errorf("deathHour = %d, %v; want 46, true", hour, ok)
	}
	if _, ok := deathHour(points[:10]); ok {
		t.Error("pet should survive the first 10 hours")
	}
}
