package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/tui/components/menu"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.stats.SetWidth(msg.Width)
		m.menu.SetSize(msg.Width, len(models.Actions())*3)
		return m, nil

	case menu.SelectMsg:
		return m.perform(msg.Action)

	case tea.KeyMsg:
		switch m.state {
		case constants.StateConfirmQuit:
			return m.updateConfirmQuit(msg)
		case constants.StateDeceased:
			if key.Matches(msg, m.keys.Quit) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updatePet(msg)
	}

	return m, nil
}

func (m Model) updatePet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shortcuts := []struct {
		binding key.Binding
		action  models.Action
	}{
		{m.keys.Feed, models.ActionFeed},
		{m.keys.Play, models.ActionPlay},
		{m.keys.Sleep, models.ActionSleep},
		{m.keys.Heal, models.ActionHeal},
		{m.keys.Status, models.ActionStatus},
		{m.keys.Quit, models.ActionQuit},
	}
	for _, s := range shortcuts {
		if key.Matches(msg, s.binding) {
			m.menu.Select(s.action)
			return m.perform(s.action)
		}
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.No):
		m.state = constants.StatePet
		m.message = ""
	}
	return m, nil
}

// perform runs one menu action: the action, then the decay since the last one.
func (m Model) perform(a models.Action) (tea.Model, tea.Cmd) {
	if m.state == constants.StateDeceased {
		return m, nil
	}

	switch a {
	case models.ActionQuit:
		m.state = constants.StateConfirmQuit
		m.message = ""
		return m, nil
	case models.ActionStatus:
		p := m.game.Tick()
		m.refresh(p)
		m.message = fmt.Sprintf("%s is %s.", p.Name, m.game.Mood())
		return m, nil
	}

	p := m.game.Do(a)
	m.refresh(p)
	if frame, ok := models.FrameForAction(a); ok && p.Alive() {
		m.frame = frame
	}
	m.message = actionMessage(p.Name, a)
	if !p.Alive() {
		m.message = ""
	}
	return m, nil
}

func actionMessage(name string, a models.Action) string {
	switch a {
	case models.ActionFeed:
		return fmt.Sprintf("You fed %s. Nom nom!", name)
	case models.ActionPlay:
		return fmt.Sprintf("You played with %s!", name)
	case models.ActionSleep:
		return fmt.Sprintf("%s had a good rest. Zzz...", name)
	case models.ActionHeal:
		return fmt.Sprintf("You gave %s some medicine.", name)
	}
	return ""
}
