package system

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/game"
	"github.com/julianstephens/nybbler/internal/logger"
	"github.com/julianstephens/nybbler/internal/tui"
)

// Hooks for tests.
var (
	adoptPrompt   = promptAdoption
	confirmPrompt = promptConfirm
	runProgram    = func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	g := ctx.NewGame()

	created, err := g.Load(adoptPrompt)
	if err != nil {
		if !errors.IsPersistence(err) {
			return err
		}
		if err := recoverDamagedSave(ctx, g, err); err != nil {
			return err
		}
		created = true
	}

	if !created {
		// Perform automatic backup on TUI startup (after successful load)
		ctx.PerformAutomaticBackup()

		if !g.Pet().Alive() {
			if err := offerNewPet(ctx, g); err != nil {
				return err
			}
		}
	}

	runErr := runProgram(tui.NewModel(g))

	// Save even if the program failed so the session's actions are kept
	if err := ctx.SaveGame(g); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("alas, there's been an error: %w", runErr)
	}

	fmt.Printf("Saved %s. See you soon!\n", g.Pet().Name)
	return nil
}

// promptAdoption asks for a name and character with a form.
func promptAdoption() (game.Adoption, error) {
	fm := &tui.AdoptFormModel{}
	if err := tui.NewAdoptForm(fm).Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return game.Adoption{}, fmt.Errorf("adoption cancelled")
		}
		return game.Adoption{}, err
	}
	return game.Adoption{Name: strings.TrimSpace(fm.Name), Character: fm.Character}, nil
}

// promptConfirm asks a yes/no question. Aborting the form counts as no.
func promptConfirm(title, description string) (bool, error) {
	confirmed := false
	if err := tui.NewConfirmForm(title, description, &confirmed).Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// recoverDamagedSave asks whether to quarantine an unreadable save and start
// over. Declining returns loadErr unchanged.
func recoverDamagedSave(ctx *cli.Context, g *game.Manager, loadErr error) error {
	fmt.Fprintln(os.Stderr, errors.Format(loadErr))

	confirmed, err := confirmPrompt(
		"Your save file could not be read.",
		"Back up the damaged save and adopt a new pet?",
	)
	if err != nil {
		return err
	}
	if !confirmed {
		return loadErr
	}

	if err := quarantineSave(ctx); err != nil {
		return err
	}
	return g.StartOver(adoptPrompt)
}

// offerNewPet lets the player replace a pet that has died. Declining keeps
// the deceased pet, which the TUI shows as such.
func offerNewPet(ctx *cli.Context, g *game.Manager) error {
	confirmed, err := confirmPrompt(
		fmt.Sprintf("%s has passed away.", g.Pet().Name),
		"Adopt a new pet? The old save is kept as a backup.",
	)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	return g.StartOver(adoptPrompt)
}

// quarantineSave copies the current save into the backup directory and removes
// it so the next save starts from a clean file.
func quarantineSave(ctx *cli.Context) error {
	backupPath, err := ctx.Backups().CreateBackup()
	if err != nil {
		return fmt.Errorf("could not back up damaged save: %w", err)
	}
	fmt.Printf("✓ Damaged save backed up to: %s\n", backupPath)
	logger.Warn("Quarantined damaged save", "backup", backupPath)

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close store", "error", err)
	}
	if err := os.Remove(ctx.Store.GetConfigPath()); err != nil && !os.IsNotExist(err) {
		return errors.Persistence("remove", ctx.Store.GetConfigPath(), err)
	}
	return nil
}
