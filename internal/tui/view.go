package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/tui/components/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StatePet:
		content = m.viewPet()
	case constants.StateConfirmQuit:
		content = m.viewConfirmQuit()
	case constants.StateDeceased:
		content = m.viewDeceased()
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	))
}

func (m Model) viewHeader() string {
	p := m.game.Pet()
	age := p.Age(m.game.Now())
	days := "days"
	if age == 1 {
		days = "day"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(p.Name),
		subtitleStyle.Render(fmt.Sprintf("the %s, %d %s old", p.Character, age, days)),
	)
}

func (m Model) viewPet() string {
	p := m.game.Pet()

	top := lipgloss.JoinHorizontal(lipgloss.Center,
		artStyle.Render(p.Character.Art(m.frame)),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left,
			stats.MoodLine(p.Name, m.game.Mood()),
			"",
			m.stats.View(),
		),
	)

	parts := []string{"", top, ""}
	if m.message != "" {
		parts = append(parts, messageStyle.Render(m.message), "")
	}
	parts = append(parts, m.menu.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewConfirmQuit() string {
	p := m.game.Pet()
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		artStyle.Render(p.Character.Art(models.FrameSad)),
		"",
		fmt.Sprintf("Say goodbye to %s and quit?", p.Name),
		"",
		"[y] Yes",
		"[n] No",
		"",
	)
}

func (m Model) viewDeceased() string {
	p := m.game.Pet()
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		artStyle.Render(p.Character.Art(models.FrameSick)),
		"",
		dangerStyle.Render(fmt.Sprintf("%s has passed away.", p.Name)),
		fmt.Sprintf("%s lived for %d days.", p.Name, p.Age(m.game.Now())),
		"",
		m.stats.View(),
		"",
		"Press q to quit.",
		"",
	)
}
