package main

import (
	"fmt"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// barSeries draws one vertical bar per day. go-chart's Chart has no bar series of its own, so
// this implements chart.Series and chart.ValuesProvider over time-based X values. NaN values
// are skipped when drawing and count as 0 for range calculation.
type barSeries struct {
	Name    string
	Style   chart.Style
	YAxis   chart.YAxisType
	XValues []time.Time
	YValues []float64
	// WidthRatio is the share of a day's width a bar occupies.
	WidthRatio float64
}

func (bs barSeries) GetName() string           { return bs.Name }
func (bs barSeries) GetStyle() chart.Style     { return bs.Style }
func (bs barSeries) GetYAxis() chart.YAxisType { return bs.YAxis }
func (bs barSeries) Len() int                  { return len(bs.XValues) }

func (bs barSeries) GetValues(index int) (float64, float64) {
	y := bs.YValues[index]
	if math.IsNaN(y) {
		y = 0
	}
	return chart.TimeToFloat64(bs.XValues[index]), y
}

func (bs barSeries) Validate() error {
	if len(bs.XValues) == 0 {
		return fmt.Errorf("bar series %q: no x values", bs.Name)
	}
	if len(bs.XValues) != len(bs.YValues) {
		return fmt.Errorf("bar series %q: %d x values but %d y values", bs.Name, len(bs.XValues), len(bs.YValues))
	}
	return nil
}

func (bs barSeries) Render(r chart.Renderer, canvas chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.Style.InheritFrom(defaults)
	half := bs.barWidth(xrange) / 2
	base := canvas.Bottom - yrange.Translate(math.Max(0, yrange.GetMin()))
	for i, t := range bs.XValues {
		v := bs.YValues[i]
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		cx := canvas.Left + xrange.Translate(chart.TimeToFloat64(t))
		x0, x1 := cx-half, cx+half
		if x1 == x0 {
			x1++
		}
		if x0 < canvas.Left {
			x0 = canvas.Left
		}
		if x1 > canvas.Right {
			x1 = canvas.Right
		}
		top := canvas.Bottom - yrange.Translate(v)
		if top < canvas.Top {
			top = canvas.Top
		}
		style.WriteToRenderer(r)
		r.MoveTo(x0, top)
		r.LineTo(x1, top)
		r.LineTo(x1, base)
		r.LineTo(x0, base)
		r.LineTo(x0, top)
		r.Close()
		r.FillStroke()
	}
}

// barWidth is the pixel width of one bar.
func (bs barSeries) barWidth(xrange chart.Range) int {
	ratio := bs.WidthRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 0.8
	}
	origin := chart.TimeToFloat64(bs.XValues[0])
	perDay := xrange.Translate(origin+float64(24*time.Hour)) - xrange.Translate(origin)
	w := int(math.Round(float64(perDay) * ratio))
	if w < 1 {
		w = 1
	}
	return w
}
