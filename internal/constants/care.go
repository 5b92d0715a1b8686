package constants

// Stat bounds. Every stat is clamped to [MinStat, MaxStat] after each mutation.
const (
	MinStat = 0.0
	MaxStat = 100.0

	// BaselineStat is the value every stat starts at for a newly adopted pet.
	BaselineStat = 80.0
)

// Decay rates, in points per elapsed hour.
const (
	HungerDecayPerHour    = 2.0
	HappinessDecayPerHour = 2.0
	EnergyDecayPerHour    = 2.0

	// HealthDecayPerHour applies only while hunger or happiness is below LowStatThreshold.
	HealthDecayPerHour = 5.0
	LowStatThreshold   = 20.0
)

// Action effects.
const (
	FeedHungerIncrease    = 30.0
	PlayHappinessIncrease = 20.0
	PlayHungerDecrease    = 10.0
	PlayEnergyDecrease    = 15.0
	SleepEnergyTarget     = MaxStat // a full rest cycle
	HealHealthIncrease    = 40.0
)

// Mood thresholds. Below* rules are strict less-than, Above* rules strict greater-than.
const (
	SickBelow     = 30.0
	SleepingBelow = 20.0
	SadBelow      = 30.0
	HappyAbove    = 70.0
)
