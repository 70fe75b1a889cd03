package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/RunningProgress/src/analysis"
	"github.com/iafilius/RunningProgress/src/logging"
)

// Output file names, written into the output directory.
const (
	DistanceChartFile = "running_distance.png"
	TimeChartFile     = "running_time.png"
)

var (
	colorCumulative = drawing.ColorFromHex("636efa")
	colorGoal       = drawing.ColorFromHex("ef553b")
	colorDaily      = drawing.ColorFromHex("00cc96").WithAlpha(128)
)

// ChartOptions controls image size. Width and Height are at scale 1; Scale multiplies the
// pixel size, DPI and stroke widths together so a scaled chart is the same picture, sharper.
type ChartOptions struct {
	Width   int
	Height  int
	Scale   int
	Caption bool
}

// DefaultChartOptions returns 700x500 at 2x.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 700, Height: 500, Scale: 2}
}

func (o ChartOptions) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

// line is a cumulative trace drawn against the left axis.
type line struct {
	name   string
	ys     []float64
	color  drawing.Color
	dashed bool
}

// panel describes one chart: cumulative lines on the left axis, daily bars on the right.
type panel struct {
	title      string
	leftName   string
	rightName  string
	lines      []line
	barsName   string
	bars       []float64
	dates      []time.Time
	captionTxt string
}

func distancePanel(rows []analysis.DailyRow, cfg analysis.Config) panel {
	p := panel{
		title:     "Running distance",
		leftName:  "Cumulative km",
		rightName: "Daily km",
		barsName:  "Daily Values",
	}
	cum := make([]float64, len(rows))
	goal := make([]float64, len(rows))
	p.bars = make([]float64, len(rows))
	p.dates = make([]time.Time, len(rows))
	for i, r := range rows {
		p.dates[i] = r.Date
		cum[i] = r.CumulativeDistance
		goal[i] = r.Goal
		p.bars[i] = r.Distance
	}
	p.lines = []line{
		{name: "Cumulative Distance", ys: cum, color: colorCumulative},
		{name: goalLabel(cfg.BaselineDistance), ys: goal, color: colorGoal, dashed: true},
	}
	s := analysis.Summarize(rows)
	p.captionTxt = fmt.Sprintf("%s  %.1f km of %.1f km goal (%.1f%%)", s.To.Format("2006-01-02"), s.TotalDistance, s.Goal, s.GoalPct())
	return p
}

func timePanel(rows []analysis.DailyRow) panel {
	p := panel{
		title:     "Running time",
		leftName:  "Cumulative H",
		rightName: "Daily H",
		barsName:  "Daily Values",
	}
	cum := make([]float64, len(rows))
	p.bars = make([]float64, len(rows))
	p.dates = make([]time.Time, len(rows))
	for i, r := range rows {
		p.dates[i] = r.Date
		cum[i] = r.CumulativeHours
		p.bars[i] = r.ElapsedHours
	}
	p.lines = []line{{name: "Cumulative Time", ys: cum, color: colorCumulative}}
	s := analysis.Summarize(rows)
	p.captionTxt = fmt.Sprintf("%s  %.1f h over %d run(s)", s.To.Format("2006-01-02"), s.TotalHours, s.Activities)
	return p
}

// goalLabel names the goal line after the baseline, e.g. "5km/Day".
func goalLabel(baseline float64) string {
	return strconv.FormatFloat(baseline, 'f', -1, 64) + "km/Day"
}

// buildChart lays a panel out on a go-chart Chart. go-chart draws its primary Y axis on the
// right, so the bars use the primary axis and the cumulative lines the secondary (left) one.
func buildChart(p panel, opts ChartOptions) *chart.Chart {
	k := opts.scale()
	sw := float64(2 * k)

	series := make([]chart.Series, 0, len(p.lines)+1)
	lineValues := make([][]float64, 0, len(p.lines))
	for _, l := range p.lines {
		st := chart.Style{StrokeColor: l.color, StrokeWidth: sw}
		if l.dashed {
			st.StrokeDashArray = []float64{float64(6 * k), float64(4 * k)}
		}
		series = append(series, chart.TimeSeries{
			Name:    l.name,
			Style:   st,
			YAxis:   chart.YAxisSecondary,
			XValues: p.dates,
			YValues: l.ys,
		})
		lineValues = append(lineValues, l.ys)
	}
	series = append(series, barSeries{
		Name:       p.barsName,
		Style:      chart.Style{FillColor: colorDaily, StrokeColor: colorDaily, StrokeWidth: 1},
		YAxis:      chart.YAxisPrimary,
		XValues:    p.dates,
		YValues:    p.bars,
		WidthRatio: 0.8,
	})

	first, last := p.dates[0], p.dates[len(p.dates)-1]
	step, labelFmt := pickDayStep(len(p.dates))
	ch := &chart.Chart{
		Title:  p.title,
		Width:  opts.Width * k,
		Height: opts.Height * k,
		DPI:    chart.DefaultDPI * float64(k),
		Background: chart.Style{Padding: chart.Box{
			Top: 20 * k, Left: 16 * k, Right: 16 * k, Bottom: 70 * k,
		}},
		XAxis: chart.XAxis{
			Ticks: makeDayTicks(first, last, step, labelFmt),
		},
		YAxis: chart.YAxis{
			Name:  p.rightName,
			Ticks: zeroBasedTicks(p.bars),
		},
		YAxisSecondary: chart.YAxis{
			Name:  p.leftName,
			Ticks: zeroBasedTicks(lineValues...),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{legendBelow(ch, k)}
	return ch
}

// renderPanel renders p to an image, adding the caption when enabled.
func renderPanel(p panel, opts ChartOptions) (image.Image, error) {
	if len(p.dates) == 0 {
		return nil, errors.New("no rows to chart")
	}
	ch := buildChart(p, opts)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", p.title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", p.title, err)
	}
	if opts.Caption {
		img = drawCaption(img, p.captionTxt)
	}
	return img, nil
}

func renderDistanceChart(rows []analysis.DailyRow, cfg analysis.Config, opts ChartOptions) (image.Image, error) {
	if len(rows) == 0 {
		return nil, errors.New("distance chart: no rows to chart")
	}
	return renderPanel(distancePanel(rows, cfg), opts)
}

func renderTimeChart(rows []analysis.DailyRow, opts ChartOptions) (image.Image, error) {
	if len(rows) == 0 {
		return nil, errors.New("time chart: no rows to chart")
	}
	return renderPanel(timePanel(rows), opts)
}

// WriteCharts renders the distance and time charts into outDir and returns the written paths.
// Nothing is written unless both charts render.
func WriteCharts(rows []analysis.DailyRow, cfg analysis.Config, outDir string, opts ChartOptions) ([]string, error) {
	defer logging.TimeTrack(time.Now(), "render charts")
	if len(rows) == 0 {
		return nil, errors.New("no rows to chart")
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	toRender := []struct {
		name string
		fn   func() (image.Image, error)
	}{
		{DistanceChartFile, func() (image.Image, error) { return renderDistanceChart(rows, cfg, opts) }},
		{TimeChartFile, func() (image.Image, error) { return renderTimeChart(rows, opts) }},
	}
	encoded := make([][]byte, len(toRender))
	for i, item := range toRender {
		img, err := item.fn()
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("png encode %s: %w", item.name, err)
		}
		encoded[i] = buf.Bytes()
	}
	var written []string
	for i, item := range toRender {
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, encoded[i], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", outPath, err)
		}
		logging.Infof("wrote %s", outPath)
		written = append(written, outPath)
	}
	return written, nil
}
