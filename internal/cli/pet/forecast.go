package pet

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/models"
)

const maxForecastHours = 24 * 14

type ForecastCmd struct {
	Hours  int `help:"How many hours ahead to project." default:"48"`
	Height int `help:"Plot height in rows." default:"12"`
}

func (c *ForecastCmd) Run(ctx *cli.Context) error {
	if c.Hours < 1 || c.Hours > maxForecastHours {
		return errors.Input(fmt.Sprint(c.Hours), fmt.Sprintf("hours must be between 1 and %d", maxForecastHours))
	}

	g, err := ctx.LoadGame()
	if err != nil {
		return err
	}

	points := g.Forecast(c.Hours)
	fmt.Println(plotForecast(points, c.Height))
	if hour, ok := deathHour(points); ok {
		fmt.Printf("\nWithout care, %s will not survive %d more hours.\n", g.Pet().Name, hour)
	} else {
		fmt.Printf("\n%s will make it through the next %d hours even without care.\n", g.Pet().Name, c.Hours)
	}

	return nil
}

// plotForecast charts the four stats, one series per stat, hour by hour.
func plotForecast(points []models.Pet, height int) string {
	series := make([][]float64, 4)
	for _, p := range points {
		series[0] = append(series[0], p.Hunger)
		series[1] = append(series[1], p.Happiness)
		series[2] = append(series[2], p.Energy)
		series[3] = append(series[3], p.Health)
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.SeriesColors(asciigraph.Goldenrod, asciigraph.HotPink, asciigraph.DeepSkyBlue, asciigraph.Red),
		asciigraph.SeriesLegends("hunger", "happiness", "energy", "health"),
		asciigraph.Caption(fmt.Sprintf("next %d hours without care", len(points)-1)),
	)
}

// deathHour returns the first hour at which health reaches zero.
func deathHour(points []models.Pet) (int, bool) {
	for i, p := range points {
		if !p.Alive() {
			return i, true
		}
	}
	return 0, false
}
