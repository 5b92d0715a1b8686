package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nybbler/internal/models"
)

// SelectMsg is sent when the highlighted action is chosen with enter.
type SelectMsg struct {
	Action models.Action
}

type Item struct {
	Action   models.Action
	Shortcut string
	Hint     string
}

func (i Item) Title() string {
	return fmt.Sprintf("[%s] %s", i.Shortcut, label(i.Action))
}
func (i Item) Description() string { return i.Hint }
func (i Item) FilterValue() string { return string(i.Action) }

func label(a models.Action) string {
	switch a {
	case models.ActionStatus:
		return "View status"
	case models.ActionQuit:
		return "Quit"
	}
	s := string(a)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Items builds the menu entries, describing each action's effect under rules.
func Items(rules models.Rules) []Item {
	hints := map[models.Action]string{
		models.ActionFeed:   fmt.Sprintf("+%g hunger", rules.FeedHungerIncrease),
		models.ActionPlay:   fmt.Sprintf("+%g happiness, -%g hunger, -%g energy", rules.PlayHappinessIncrease, rules.PlayHungerDecrease, rules.PlayEnergyDecrease),
		models.ActionSleep:  fmt.Sprintf("energy up to %g", rules.SleepEnergyTarget),
		models.ActionHeal:   fmt.Sprintf("+%g health", rules.HealHealthIncrease),
		models.ActionStatus: "refresh stats",
		models.ActionQuit:   "save and exit",
	}
	shortcuts := map[models.Action]string{
		models.ActionFeed:   "f",
		models.ActionPlay:   "p",
		models.ActionSleep:  "s",
		models.ActionHeal:   "h",
		models.ActionStatus: "v",
		models.ActionQuit:   "q",
	}

	var items []Item
	for _, a := range models.Actions() {
		items = append(items, Item{Action: a, Shortcut: shortcuts[a], Hint: hints[a]})
	}
	return items
}

type Model struct {
	list  list.Model
	enter key.Binding
}

func New(rules models.Rules, width, height int) Model {
	entries := Items(rules)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Actions"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the parent model
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		list: l,
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.enter) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			return m, func() tea.Msg { return SelectMsg{Action: i.Action} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the highlighted action.
func (m Model) Selected() (models.Action, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Action, ok
}

// Select moves the highlight to a.
func (m *Model) Select(a models.Action) {
	for idx, it := range m.list.Items() {
		if i, ok := it.(Item); ok && i.Action == a {
			m.list.Select(idx)
			return
		}
	}
}

func (m Model) EnterKey() key.Binding {
	return m.enter
}
