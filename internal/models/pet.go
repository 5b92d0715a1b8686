package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/nybbler/internal/constants"
)

// Pet is the single persisted record. Name is set by NewPet and never reassigned.
type Pet struct {
	Name        string    `json:"name"`
	Character   Character `json:"character"`
	Hunger      float64   `json:"hunger"`    // satiety: 100 is full
	Happiness   float64   `json:"happiness"` // 0-100
	Energy      float64   `json:"energy"`    // 0-100
	Health      float64   `json:"health"`    // 0-100
	BornAt      time.Time `json:"born_at"`
	LastUpdated time.Time `json:"last_updated"` // moment decay was last applied
}

// Alive reports whether the pet still has any health left.
func (p Pet) Alive() bool {
	return p.Health > constants.MinStat
}

// Age returns the pet's age in whole days at now.
func (p Pet) Age(now time.Time) int {
	if p.BornAt.IsZero() || now.Before(p.BornAt) {
		return 0
	}
	return int(now.Sub(p.BornAt).Hours() / 24)
}

// Validate checks the invariants a loaded record must satisfy.
func (p Pet) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("pet has no name")
	}
	if _, ok := characterTemplates[p.Character]; !ok {
		return fmt.Errorf("unknown character %q", p.Character)
	}
	stats := []struct {
		name  string
		value float64
	}{
		{"hunger", p.Hunger},
		{"happiness", p.Happiness},
		{"energy", p.Energy},
		{"health", p.Health},
	}
	for _, s := range stats {
		if math.IsNaN(s.value) || s.value < constants.MinStat || s.value > constants.MaxStat {
			return fmt.Errorf("%s out of range: %v", s.name, s.value)
		}
	}
	if p.LastUpdated.IsZero() {
		return fmt.Errorf("missing last_updated timestamp")
	}
	return nil
}

func (p *Pet) clamp() {
	p.Hunger = clamp(p.Hunger)
	p.Happiness = clamp(p.Happiness)
	p.Energy = clamp(p.Energy)
	p.Health = clamp(p.Health)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < constants.MinStat {
		return constants.MinStat
	}
	if v > constants.MaxStat {
		return constants.MaxStat
	}
	return v
}
