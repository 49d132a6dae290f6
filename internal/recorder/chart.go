package recorder

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Chart renders a recorded convergence history as an HTML page with one
// line chart for the residual norms and one for the damping factors.
type Chart struct {
	Title   string
	Records []Iteration
}

// NewChart builds a chart over the recorder's accumulated history.
func NewChart(title string, m *Memory) *Chart {
	return &Chart{Title: title, Records: m.Records()}
}

// Render writes the chart page to w.
func (c *Chart) Render(w io.Writer) error {
	xs := make([]string, len(c.Records))
	normItems := make([]opts.LineData, len(c.Records))
	relItems := make([]opts.LineData, len(c.Records))
	alphaItems := make([]opts.LineData, len(c.Records))
	for i, rec := range c.Records {
		xs[i] = fmt.Sprintf("%d", rec.Iteration)
		normItems[i] = opts.LineData{Value: rec.Norm}
		relItems[i] = opts.LineData{Value: rec.RelError}
		alphaItems[i] = opts.LineData{Value: rec.Alpha}
	}

	lineNorm := charts.NewLine()
	lineNorm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: "residual norm per iteration",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	lineNorm.SetXAxis(xs).
		AddSeries("abs error", normItems).
		AddSeries("rel error", relItems)

	lineAlpha := charts.NewLine()
	lineAlpha.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: "damping factor per iteration",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	lineAlpha.SetXAxis(xs).
		AddSeries("alpha", alphaItems)

	page := components.NewPage()
	page.AddCharts(lineNorm, lineAlpha)
	return page.Render(w)
}

// Handler serves the chart over HTTP.
func (c *Chart) Handler(w http.ResponseWriter, _ *http.Request) {
	_ = c.Render(w)
}
