package main

import (
	"fmt"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// zeroBasedTicks returns ticks for an axis anchored at 0 that fits every finite value in vs.
func zeroBasedTicks(vs ...[]float64) []chart.Tick {
	maxY := 0.0
	for _, s := range vs {
		for _, v := range s {
			if !math.IsNaN(v) && v > maxY {
				maxY = v
			}
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	return ticksUpTo(maxY, 6)
}

// tickStep picks a 1, 2, 2.5 or 5 times power-of-ten step giving about n ticks from 0 to max;
// ties go to the coarser step.
func tickStep(max float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(max/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		if score := math.Abs(math.Ceil(max/step) - float64(n)); score <= bestScore {
			best, bestScore = step, score
		}
	}
	return best
}

// ticksUpTo labels 0, step, 2*step... through the first multiple of step covering max plus 5%.
func ticksUpTo(max float64, n int) []chart.Tick {
	if n < 2 || !(max > 0) || math.IsInf(max, 0) {
		return []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}}
	}
	step := tickStep(max*1.05, n)
	top := math.Ceil(max*1.05/step) * step
	ticks := make([]chart.Tick, 0, n+2)
	for i := 0; ; i++ {
		v := float64(i) * step
		if v > top+step/2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		if v == math.Trunc(v) {
			return fmt.Sprintf("%.0f", v)
		}
		return fmt.Sprintf("%.1f", v)
	default:
		if v == math.Trunc(v) {
			return fmt.Sprintf("%.0f", v)
		}
		return fmt.Sprintf("%.2f", v)
	}
}

// pickDayStep selects a day step and label format for a calendar of the given length.
func pickDayStep(days int) (int, string) {
	switch {
	case days <= 14:
		return 1, "Jan 2"
	case days <= 31:
		return 3, "Jan 2"
	case days <= 92:
		return 7, "Jan 2"
	case days <= 183:
		return 14, "Jan 2"
	case days <= 400:
		return 30, "Jan 2"
	default:
		return 91, "Jan 2006"
	}
}

// makeDayTicks labels every step-th day from first through last. Unlabeled ticks half a day
// outside both ends pad the range so the first and last bars are drawn whole.
func makeDayTicks(first, last time.Time, step int, labelFmt string) []chart.Tick {
	if step <= 0 {
		step = 1
	}
	half := 12 * time.Hour
	ticks := []chart.Tick{{Value: chart.TimeToFloat64(first.Add(-half))}}
	for t := first; !t.After(last); t = t.AddDate(0, 0, step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.UTC().Format(labelFmt)})
	}
	ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(last.Add(half))})
	return ticks
}
