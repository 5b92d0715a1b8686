package pet

import (
	"fmt"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/models"
)

type ActCmd struct {
	Action string `arg:"" help:"Action to perform (feed, play, sleep, heal or status)."`
}

func (c *ActCmd) Run(ctx *cli.Context) error {
	action, err := models.ParseAction(c.Action)
	if err != nil {
		return err
	}
	if action == models.ActionQuit {
		return errors.Input(c.Action, "quit is only available in the interactive mode")
	}

	g, err := ctx.LoadGame()
	if err != nil {
		return err
	}
	if !g.Pet().Alive() {
		return fmt.Errorf("%s has passed away - adopt a new pet with 'nybbler adopt --force'", g.Pet().Name)
	}

	g.Do(action)

	frame := models.FrameForMood(g.Mood())
	if f, ok := models.FrameForAction(action); ok && g.Pet().Alive() {
		frame = f
	}
	fmt.Println(renderStatus(g, frame))

	return ctx.SaveGame(g)
}
