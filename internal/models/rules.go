package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/nybbler/internal/constants"
)

// Rules holds the care policy: baseline, decay rates, action effects and mood thresholds.
// The zero value is not useful; start from DefaultRules.
type Rules struct {
	Baseline float64 `yaml:"baseline"`

	HungerDecayPerHour    float64 `yaml:"hunger_decay_per_hour"`
	HappinessDecayPerHour float64 `yaml:"happiness_decay_per_hour"`
	EnergyDecayPerHour    float64 `yaml:"energy_decay_per_hour"`
	HealthDecayPerHour    float64 `yaml:"health_decay_per_hour"`
	LowStatThreshold      float64 `yaml:"low_stat_threshold"`

	FeedHungerIncrease    float64 `yaml:"feed_hunger_increase"`
	PlayHappinessIncrease float64 `yaml:"play_happiness_increase"`
	PlayHungerDecrease    float64 `yaml:"play_hunger_decrease"`
	PlayEnergyDecrease    float64 `yaml:"play_energy_decrease"`
	SleepEnergyTarget     float64 `yaml:"sleep_energy_target"`
	HealHealthIncrease    float64 `yaml:"heal_health_increase"`

	SickBelow     float64 `yaml:"sick_below"`
	SleepingBelow float64 `yaml:"sleeping_below"`
	SadBelow      float64 `yaml:"sad_below"`
	HappyAbove    float64 `yaml:"happy_above"`
}

// DefaultRules returns the policy built from the constants package.
func DefaultRules() Rules {
	return Rules{
		Baseline: constants.BaselineStat,

		HungerDecayPerHour:    constants.HungerDecayPerHour,
		HappinessDecayPerHour: constants.HappinessDecayPerHour,
		EnergyDecayPerHour:    constants.EnergyDecayPerHour,
		HealthDecayPerHour:    constants.HealthDecayPerHour,
		LowStatThreshold:      constants.LowStatThreshold,

		FeedHungerIncrease:    constants.FeedHungerIncrease,
		PlayHappinessIncrease: constants.PlayHappinessIncrease,
		PlayHungerDecrease:    constants.PlayHungerDecrease,
		PlayEnergyDecrease:    constants.PlayEnergyDecrease,
		SleepEnergyTarget:     constants.SleepEnergyTarget,
		HealHealthIncrease:    constants.HealHealthIncrease,

		SickBelow:     constants.SickBelow,
		SleepingBelow: constants.SleepingBelow,
		SadBelow:      constants.SadBelow,
		HappyAbove:    constants.HappyAbove,
	}
}

// Validate rejects negative rates and thresholds outside the stat range.
func (r Rules) Validate() error {
	nonNegative := map[string]float64{
		"hunger_decay_per_hour":    r.HungerDecayPerHour,
		"happiness_decay_per_hour": r.HappinessDecayPerHour,
		"energy_decay_per_hour":    r.EnergyDecayPerHour,
		"health_decay_per_hour":    r.HealthDecayPerHour,
		"feed_hunger_increase":     r.FeedHungerIncrease,
		"play_happiness_increase":  r.PlayHappinessIncrease,
		"play_hunger_decrease":     r.PlayHungerDecrease,
		"play_energy_decrease":     r.PlayEnergyDecrease,
		"heal_health_increase":     r.HealHealthIncrease,
	}
	for name, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}

	inRange := map[string]float64{
		"baseline":            r.Baseline,
		"low_stat_threshold":  r.LowStatThreshold,
		"sleep_energy_target": r.SleepEnergyTarget,
		"sick_below":          r.SickBelow,
		"sleeping_below":      r.SleepingBelow,
		"sad_below":           r.SadBelow,
		"happy_above":         r.HappyAbove,
	}
	for name, v := range inRange {
		if v < constants.MinStat || v > constants.MaxStat {
			return fmt.Errorf("%s must be between %v and %v, got %v", name, constants.MinStat, constants.MaxStat, v)
		}
	}

	if r.Baseline == 0 {
		return fmt.Errorf("baseline must be greater than zero")
	}
	return nil
}

// NewPet creates a pet with every stat at the baseline.
func (r Rules) NewPet(name string, character Character, now time.Time) Pet {
	p := Pet{
		Name:        name,
		Character:   character,
		Hunger:      r.Baseline,
		Happiness:   r.Baseline,
		Energy:      r.Baseline,
		Health:      r.Baseline,
		BornAt:      now,
		LastUpdated: now,
	}
	p.clamp()
	return p
}

// ApplyDecay lowers hunger, happiness and energy in proportion to elapsed time.
// Health drops only for the part of elapsed during which hunger or happiness sat
// below LowStatThreshold. Zero or negative elapsed time changes nothing.
func (r Rules) ApplyDecay(p *Pet, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	hours := elapsed.Hours()

	lowHours := max(
		r.hoursBelowLow(p.Hunger, r.HungerDecayPerHour, hours),
		r.hoursBelowLow(p.Happiness, r.HappinessDecayPerHour, hours),
	)

	p.Hunger -= r.HungerDecayPerHour * hours
	p.Happiness -= r.HappinessDecayPerHour * hours
	p.Energy -= r.EnergyDecayPerHour * hours
	p.Health -= r.HealthDecayPerHour * lowHours
	p.clamp()
}

// hoursBelowLow returns how many of the given hours a stat starting at value and
// falling at rate per hour spends strictly below the low threshold.
func (r Rules) hoursBelowLow(value, rate, hours float64) float64 {
	if value < r.LowStatThreshold {
		return hours
	}
	if rate <= 0 {
		return 0
	}
	crossing := (value - r.LowStatThreshold) / rate
	if crossing >= hours {
		return 0
	}
	return hours - crossing
}

// Feed raises hunger (satiety).
func (r Rules) Feed(p *Pet) {
	p.Hunger += r.FeedHungerIncrease
	p.clamp()
}

// Play raises happiness at the cost of some hunger and energy.
func (r Rules) Play(p *Pet) {
	p.Happiness += r.PlayHappinessIncrease
	p.Hunger -= r.PlayHungerDecrease
	p.Energy -= r.PlayEnergyDecrease
	p.clamp()
}

// Sleep restores energy to the sleep target. It never lowers energy.
func (r Rules) Sleep(p *Pet) {
	p.Energy = max(p.Energy, r.SleepEnergyTarget)
	p.clamp()
}

// Heal raises health.
func (r Rules) Heal(p *Pet) {
	p.Health += r.HealHealthIncrease
	p.clamp()
}

// Apply dispatches a care action. Status and quit leave the pet untouched.
func (r Rules) Apply(p *Pet, a Action) {
	switch a {
	case ActionFeed:
		r.Feed(p)
	case ActionPlay:
		r.Play(p)
	case ActionSleep:
		r.Sleep(p)
	case ActionHeal:
		r.Heal(p)
	}
}
