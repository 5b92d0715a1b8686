package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/game"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/storage"
	"github.com/julianstephens/nybbler/internal/tui/components/menu"
)

func newTestModel(t *testing.T, mutate func(*models.Pet)) (Model, *storage.JSONStore) {
	t.Helper()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "pet.json"))
	pet := models.DefaultRules().NewPet("Rex", models.CharacterCat, now)
	if mutate != nil {
		mutate(&pet)
	}
	if err := store.Save(pet); err != nil {
		t.Fatal(err)
	}

	g := game.New(store, models.DefaultRules(), game.WithClock(func() time.Time { return now }))
	if _, err := g.Load(nil); err != nil {
		t.Fatal(err)
	}
	return NewModel(g), store
}

func press(t *testing.T, m Model, keys string) Model {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	m = updated.(Model)
	// Follow a menu selection through to the action
	if cmd != nil {
		if sel, ok := cmd().(menu.SelectMsg); ok {
			updated, _ = m.Update(sel)
			m = updated.(Model)
		}
	}
	return m
}

func TestShortcutsApplyActions(t *testing.T) {
	tests := []struct {
		key    string
		check  func(models.Pet) bool
		expect string
	}{
		{"f", func(p models.Pet) bool { return p.Hunger == 100 }, "hunger 100"},
		{"p", func(p models.Pet) bool { return p.Happiness == 100 && p.Hunger == 70 && p.Energy == 65 }, "play effects"},
		{"s", func(p models.Pet) bool { return p.Energy == 100 }, "energy 100"},
		{"h", func(p models.Pet) bool { return p.Health == 100 }, "health 100"},
		{"v", func(p models.Pet) bool { return p.Hunger == 80 && p.Health == 80 }, "unchanged stats"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := newTestModel(t, nil)
			m = press(t, m, tt.key)
			if p := m.game.Pet(); !tt.check(p) {
				t.Errorf("after %q expected %s, got %+v", tt.key, tt.expect, p)
			}
			if m.State() != constants.StatePet {
				t.Errorf("unexpected state %v", m.State())
			}
		})
	}
}

func TestEnterSelectsHighlightedAction(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	sel, ok := cmd().(menu.SelectMsg)
	if !ok {
		t.Fatalf("expected SelectMsg, got %T", cmd())
	}
	if sel.Action != models.ActionFeed {
		t.Errorf("first menu entry = %s, want feed", sel.Action)
	}
}

func TestQuitRequiresConfirmation(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = press(t, m, "q")
	if m.State() != constants.StateConfirmQuit {
		t.Fatalf("expected confirm state, got %v", m.State())
	}
	if m.Quitting() {
		t.Fatal("quit before confirmation")
	}

	m = press(t, m, "n")
	if m.State() != constants.StatePet {
		t.Errorf("expected to return to pet view, got %v", m.State())
	}

	m = press(t, m, "q")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = updated.(Model)
	if !m.Quitting() {
		t.Error("expected quitting after confirmation")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestModelDoesNotSave(t *testing.T) {
	m, store := newTestModel(t, nil)

	press(t, m, "f")

	saved, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.Hunger != 80 {
		t.Errorf("the TUI wrote the save file: hunger %v", saved.Hunger)
	}
}

func TestDeceasedPetOnlyQuits(t *testing.T) {
	m, _ := newTestModel(t, func(p *models.Pet) { p.Health = 0 })

	if m.State() != constants.StateDeceased {
		t.Fatalf("expected deceased state, got %v", m.State())
	}

	m = press(t, m, "h")
	if m.game.Pet().Health != 0 {
		t.Error("a deceased pet was healed")
	}
	if !strings.Contains(m.View(), "passed away") {
		t.Error("deceased screen not shown")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !updated.(Model).Quitting() {
		t.Error("q should quit from the deceased screen")
	}
}

func TestViewShowsPet(t *testing.T) {
	m, _ := newTestModel(t, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Rex", "Hunger", "Happiness", "Energy", "Health", "Feed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
