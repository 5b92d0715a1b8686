package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/game"
	"github.com/julianstephens/nybbler/internal/models"
)

type AdoptCmd struct {
	Name      string `help:"Name of the new pet." required:""`
	Character string `help:"Look of the pet (blob, square, ghost, cat, robo or random)." default:"random"`
	Force     bool   `help:"Replace an existing pet. The old save is backed up first."`
}

func (c *AdoptCmd) Run(ctx *cli.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.Input(c.Name, "pet name cannot be empty")
	}
	character, err := models.ParseCharacter(c.Character)
	if err != nil {
		return err
	}

	exists, err := ctx.Store.Exists()
	if err != nil {
		return err
	}
	if exists {
		if !c.Force {
			return fmt.Errorf("a pet already lives at %s - use --force to replace it", ctx.Store.GetConfigPath())
		}
		if err := quarantineSave(ctx); err != nil {
			return err
		}
	}

	g := ctx.NewGame()
	err = g.StartOver(func() (game.Adoption, error) {
		return game.Adoption{Name: name, Character: character}, nil
	})
	if err != nil {
		return err
	}
	if err := ctx.SaveGame(g); err != nil {
		return err
	}

	p := g.Pet()
	fmt.Println(p.Character.Art(models.FrameHappy))
	fmt.Printf("Welcome home, %s the %s!\n", p.Name, p.Character)
	return nil
}
