package models

import (
	"math/rand"
	"strings"

	"github.com/julianstephens/nybbler/internal/errors"
)

// Character selects the pet's ASCII body. It is cosmetic only.
type Character string

const (
	CharacterBlob   Character = "blob"
	CharacterSquare Character = "square"
	CharacterGhost  Character = "ghost"
	CharacterCat    Character = "cat"
	CharacterRobo   Character = "robo"
)

// Frame is the face a character is drawn with.
type Frame int

const (
	FrameNeutral Frame = iota
	FrameHappy
	FrameSad
	FrameSick
	FrameSleeping
	FrameEating
	FramePlaying
	FrameHealing
)

type face struct {
	left, right, mouth string
}

var faces = map[Frame]face{
	FrameNeutral:  {"o", "o", "-"},
	FrameHappy:    {"^", "^", "v"},
	FrameSad:      {";", ";", "n"},
	FrameSick:     {"x", "x", "~"},
	FrameSleeping: {"-", "-", "z"},
	FrameEating:   {"o", "o", "O"},
	FramePlaying:  {">", "<", "D"},
	FrameHealing:  {"+", "+", "u"},
}

// Templates use {l} {r} for the eyes and {m} for the mouth.
var characterTemplates = map[Character]string{
	CharacterBlob: `  .-~~~~-.
 /        \
|  {l}    {r}  |
|    {m}     |
 \        /
  '-....-'`,
	CharacterSquare: ` +--------+
 | {l}    {r} |
 |   {m}    |
 +--------+`,
	CharacterGhost: `  .-""-.
 / {l}  {r} \
|   {m}    |
|        |
'^^'^^'^^'`,
	CharacterCat: ` /\_/\
( {l}.{r} )
 > {m} <`,
	CharacterRobo: `  [=====]
 |[{l} {r}]|
 |  {m}  |
  '-----'
  _|  |_`,
}

// Characters lists every character in a stable order.
func Characters() []Character {
	return []Character{CharacterBlob, CharacterSquare, CharacterGhost, CharacterCat, CharacterRobo}
}

// RandomCharacter picks a character uniformly.
func RandomCharacter() Character {
	all := Characters()
	return all[rand.Intn(len(all))]
}

// ParseCharacter accepts a character name case-insensitively; "random" or "" picks one.
func ParseCharacter(s string) (Character, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" || key == "random" {
		return RandomCharacter(), nil
	}
	c := Character(key)
	if _, ok := characterTemplates[c]; !ok {
		return "", errors.Input(s, "unknown character")
	}
	return c, nil
}

// Art renders the character with the given face.
func (c Character) Art(f Frame) string {
	tmpl, ok := characterTemplates[c]
	if !ok {
		tmpl = characterTemplates[CharacterCat]
	}
	fc, ok := faces[f]
	if !ok {
		fc = faces[FrameNeutral]
	}
	return strings.NewReplacer("{l}", fc.left, "{r}", fc.right, "{m}", fc.mouth).Replace(tmpl)
}

// FrameForMood picks the resting face for a mood.
func FrameForMood(m Mood) Frame {
	switch m {
	case MoodHappy:
		return FrameHappy
	case MoodSad:
		return FrameSad
	case MoodSick:
		return FrameSick
	case MoodSleeping:
		return FrameSleeping
	default:
		return FrameNeutral
	}
}

// FrameForAction picks the face shown right after an action.
func FrameForAction(a Action) (Frame, bool) {
	switch a {
	case ActionFeed:
		return FrameEating, true
	case ActionPlay:
		return FramePlaying, true
	case ActionSleep:
		return FrameSleeping, true
	case ActionHeal:
		return FrameHealing, true
	}
	return FrameNeutral, false
}
