package main

import (
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// statsChartHandler renders the session's round outcomes as a standalone
// HTML bar chart.
func statsChartHandler(controller *GameController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := controller.Stats()

		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    "Tic-Tac-Toe round outcomes",
				Subtitle: "session totals",
			}),
			charts.WithInitializationOpts(opts.Initialization{
				Theme: "shine",
			}),
		)
		bar.SetXAxis([]string{"X wins", "O wins", "Draws"}).
			AddSeries("rounds", []opts.BarData{
				{Value: stats.XWins},
				{Value: stats.OWins},
				{Value: stats.Draws},
			})

		page := components.NewPage()
		page.AddCharts(bar)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Render(w); err != nil {
			log.Printf("[backend] stats chart render failed: %v", err)
		}
	}
}
