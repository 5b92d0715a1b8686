package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nybbler/internal/models"
)

type AdoptFormModel struct {
	Name      string
	Character models.Character
}

// NewAdoptForm asks for a pet name and character.
func NewAdoptForm(fm *AdoptFormModel) *huh.Form {
	options := []huh.Option[models.Character]{}
	for _, c := range models.Characters() {
		options = append(options, huh.NewOption(string(c), c))
	}
	if fm.Character == "" {
		fm.Character = models.RandomCharacter()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What will you name your new pet?").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("pet name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.Character]().
				Title("Pick a look").
				Options(options...).
				Value(&fm.Character),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmForm asks a yes/no question.
func NewConfirmForm(title, description string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
