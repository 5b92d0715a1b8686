package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nybbler/internal/models"
)

const (
	defaultBarWidth = 30
	labelWidth      = 10
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(labelWidth)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			PaddingLeft(1)

	lowValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			PaddingLeft(1)
)

var moodEmoji = map[models.Mood]string{
	models.MoodHappy:    "😊",
	models.MoodNeutral:  "😐",
	models.MoodSad:      "😢",
	models.MoodSleeping: "😴",
	models.MoodSick:     "🤒",
}

var moodCaption = map[models.Mood]string{
	models.MoodHappy:    "is having a great time",
	models.MoodNeutral:  "is doing okay",
	models.MoodSad:      "needs some attention",
	models.MoodSleeping: "can barely keep its eyes open",
	models.MoodSick:     "is not feeling well",
}

// MoodLine renders "😊 Rex is having a great time (Happy)".
func MoodLine(name string, mood models.Mood) string {
	return fmt.Sprintf("%s %s %s (%s)", moodEmoji[mood], name, moodCaption[mood], mood)
}

// Model renders the four stat bars.
type Model struct {
	pet   models.Pet
	low   float64
	bars  map[string]progress.Model
	order []string
}

func New(lowThreshold float64) Model {
	m := Model{
		low:   lowThreshold,
		bars:  make(map[string]progress.Model),
		order: []string{"Hunger", "Happiness", "Energy", "Health"},
	}
	gradients := map[string][2]string{
		"Hunger":    {"#FF7CCB", "#FDFF8C"},
		"Happiness": {"#5A56E0", "#EE6FF8"},
		"Energy":    {"#00B4DB", "#0083B0"},
		"Health":    {"#F2473F", "#71EA8C"},
	}
	for _, name := range m.order {
		g := gradients[name]
		m.bars[name] = progress.New(
			progress.WithGradient(g[0], g[1]),
			progress.WithWidth(defaultBarWidth),
			progress.WithoutPercentage(),
		)
	}
	return m
}

func (m *Model) SetPet(p models.Pet) {
	m.pet = p
}

func (m *Model) SetWidth(width int) {
	w := width - labelWidth - 8
	if w > defaultBarWidth*2 {
		w = defaultBarWidth * 2
	}
	if w < 10 {
		w = 10
	}
	for name, bar := range m.bars {
		bar.Width = w
		m.bars[name] = bar
	}
}

func (m Model) value(name string) float64 {
	switch name {
	case "Hunger":
		return m.pet.Hunger
	case "Happiness":
		return m.pet.Happiness
	case "Energy":
		return m.pet.Energy
	case "Health":
		return m.pet.Health
	}
	return 0
}

func (m Model) View() string {
	var b strings.Builder
	for i, name := range m.order {
		v := m.value(name)
		style := valueStyle
		if v < m.low {
			style = lowValueStyle
		}
		b.WriteString(labelStyle.Render(name))
		b.WriteString(m.bars[name].ViewAs(v / 100))
		b.WriteString(style.Render(fmt.Sprintf("%3.0f", v)))
		if i < len(m.order)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Render draws the bars for p without a running program.
func Render(p models.Pet, lowThreshold float64, width int) string {
	m := New(lowThreshold)
	m.SetWidth(width)
	m.SetPet(p)
	return m.View()
}
