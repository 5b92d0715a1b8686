package models

import (
	"strings"

	"github.com/julianstephens/nybbler/internal/errors"
)

// Action is one entry of the interactive menu.
type Action string

const (
	ActionFeed   Action = "feed"
	ActionPlay   Action = "play"
	ActionSleep  Action = "sleep"
	ActionHeal   Action = "heal"
	ActionStatus Action = "status"
	ActionQuit   Action = "quit"
)

// Actions lists the menu in display order.
func Actions() []Action {
	return []Action{ActionFeed, ActionPlay, ActionSleep, ActionHeal, ActionStatus, ActionQuit}
}

// Mutates reports whether the action changes stats.
func (a Action) Mutates() bool {
	switch a {
	case ActionFeed, ActionPlay, ActionSleep, ActionHeal:
		return true
	}
	return false
}

var actionAliases = map[string]Action{
	"feed":   ActionFeed,
	"eat":    ActionFeed,
	"play":   ActionPlay,
	"sleep":  ActionSleep,
	"rest":   ActionSleep,
	"heal":   ActionHeal,
	"status": ActionStatus,
	"view":   ActionStatus,
	"quit":   ActionQuit,
	"exit":   ActionQuit,
}

// ParseAction maps user input to an Action, returning an InputError for anything unknown.
func ParseAction(s string) (Action, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", errors.Input("", "no action given")
	}
	if a, ok := actionAliases[key]; ok {
		return a, nil
	}
	return "", errors.Input(s, "unknown action")
}
