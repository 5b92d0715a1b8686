package models

// Mood is derived from the current stats and never persisted.
type Mood string

const (
	MoodSick     Mood = "Sick"
	MoodSleeping Mood = "Sleeping"
	MoodSad      Mood = "Sad"
	MoodHappy    Mood = "Happy"
	MoodNeutral  Mood = "Neutral"
)

func (m Mood) String() string { return string(m) }

// Mood evaluates the threshold rules in priority order; the first match wins.
func (r Rules) Mood(p Pet) Mood {
	switch {
	case p.Health < r.SickBelow:
		return MoodSick
	case p.Energy < r.SleepingBelow:
		return MoodSleeping
	case p.Hunger < r.SadBelow || p.Happiness < r.SadBelow:
		return MoodSad
	case p.Hunger > r.HappyAbove && p.Happiness > r.HappyAbove:
		return MoodHappy
	default:
		return MoodNeutral
	}
}
