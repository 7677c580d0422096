package qlearning

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Plot renders the curves as a line chart into an HTML page.
func Plot(w io.Writer, title string, curves ...Curve) error {
	if len(curves) == 0 {
		return errors.New("plot: no curves")
	}
	numEpisodes := 0
	for _, c := range curves {
		if len(c.Returns) > numEpisodes {
			numEpisodes = len(c.Returns)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var episodes []string
	for i := 0; i < numEpisodes; i++ {
		episodes = append(episodes, fmt.Sprintf("%d", i+1))
	}

	line = line.SetXAxis(episodes)
	for _, c := range curves {
		items := make([]opts.LineData, 0, len(c.Returns))
		for _, g := range c.Returns {
			items = append(items, opts.LineData{Value: g})
		}
		line.AddSeries(c.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(
		line,
	)
	return page.Render(w)
}
