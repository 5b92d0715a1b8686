package pet

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/game"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/tui/components/stats"
)

const statusWidth = 60

var (
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	artStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Padding(0, 2)

	deadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	g, err := ctx.LoadGame()
	if err != nil {
		return err
	}

	fmt.Println(renderStatus(g, models.FrameForMood(g.Mood())))
	return ctx.SaveGame(g)
}

// renderStatus draws the pet with its mood and stat bars.
func renderStatus(g *game.Manager, frame models.Frame) string {
	p := g.Pet()
	rules := g.Rules()

	header := fmt.Sprintf("%s the %s, %d days old", nameStyle.Render(p.Name), p.Character, p.Age(g.Now()))
	mood := stats.MoodLine(p.Name, g.Mood())
	if !p.Alive() {
		frame = models.FrameSick
		mood = deadStyle.Render(fmt.Sprintf("%s has passed away.", p.Name))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		artStyle.Render(p.Character.Art(frame)),
		mood,
		"",
		stats.Render(p, rules.LowStatThreshold, statusWidth),
	)
}
