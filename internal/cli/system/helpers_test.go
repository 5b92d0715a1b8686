package system

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/config"
	"github.com/julianstephens/nybbler/internal/game"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/storage"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	dataDir := t.TempDir()

	return &cli.Context{
		Store:      storage.NewJSONStore(filepath.Join(dataDir, "pet.json")),
		Config:     config.DefaultConfig(),
		ConfigPath: filepath.Join(dataDir, "config.yaml"),
		DataDir:    dataDir,
		Clock:      func() time.Time { return testNow },
	}
}

func savePet(t *testing.T, ctx *cli.Context, mutate func(*models.Pet)) {
	t.Helper()
	p := ctx.Rules().NewPet("Rex", models.CharacterCat, testNow)
	if mutate != nil {
		mutate(&p)
	}
	if err := ctx.Store.Save(p); err != nil {
		t.Fatalf("failed to save test pet: %v", err)
	}
}

// stubPrompts replaces the interactive hooks for the duration of a test.
func stubPrompts(t *testing.T, adopt game.AdoptFunc, answer bool, program func(tea.Model) error) {
	t.Helper()
	oldAdopt, oldConfirm, oldProgram := adoptPrompt, confirmPrompt, runProgram
	t.Cleanup(func() {
		adoptPrompt, confirmPrompt, runProgram = oldAdopt, oldConfirm, oldProgram
	})

	adoptPrompt = adopt
	confirmPrompt = func(title, description string) (bool, error) {
		return answer, nil
	}
	if program == nil {
		program = func(tea.Model) error { return nil }
	}
	runProgram = program
}
