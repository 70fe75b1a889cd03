package main

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

// legendBelow draws a single horizontal row of legend entries centered under the plot area,
// below the X axis labels. The chart's bottom padding must leave room for it.
func legendBelow(c *chart.Chart, scale int) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if scale < 1 {
			scale = 1
		}
		text := chart.Style{FontSize: 9, FontColor: chart.ColorBlack}.InheritFrom(defaults)
		text.WriteTextOptionsToRenderer(r)

		type entry struct {
			name  string
			style chart.Style
			bar   bool
			width int
		}
		marker := 22 * scale
		gap := 6 * scale
		spacing := 18 * scale
		var entries []entry
		total := 0
		textH := 0
		for _, s := range c.Series {
			st := s.GetStyle()
			if st.Hidden || s.GetName() == "" {
				continue
			}
			tb := r.MeasureText(s.GetName())
			if tb.Height() > textH {
				textH = tb.Height()
			}
			_, isBar := s.(barSeries)
			e := entry{name: s.GetName(), style: st, bar: isBar, width: marker + gap + tb.Width()}
			if len(entries) > 0 {
				total += spacing
			}
			total += e.width
			entries = append(entries, e)
		}
		if len(entries) == 0 {
			return
		}

		// Skip past the X axis tick labels, then one line of breathing room.
		baseline := cb.Bottom + 3*textH + 10*scale
		mid := baseline - textH/2
		x := cb.Left + (cb.Width()-total)/2
		if x < 0 {
			x = 0
		}
		for _, e := range entries {
			if e.bar {
				h := textH / 2
				bar := chart.Style{FillColor: e.style.FillColor, StrokeColor: e.style.StrokeColor, StrokeWidth: 1}
				bar.WriteDrawingOptionsToRenderer(r)
				r.MoveTo(x, mid-h)
				r.LineTo(x+marker, mid-h)
				r.LineTo(x+marker, mid+h)
				r.LineTo(x, mid+h)
				r.LineTo(x, mid-h)
				r.Close()
				r.FillStroke()
			} else {
				line := chart.Style{
					StrokeColor:     e.style.StrokeColor,
					StrokeWidth:     e.style.StrokeWidth,
					StrokeDashArray: e.style.StrokeDashArray,
				}
				line.WriteDrawingOptionsToRenderer(r)
				r.MoveTo(x, mid)
				r.LineTo(x+marker, mid)
				r.Stroke()
			}
			text.WriteTextOptionsToRenderer(r)
			r.Text(e.name, x+marker+gap, baseline)
			x += e.width + spacing
		}
	}
}
