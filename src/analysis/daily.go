// Package analysis turns activity records into a gap-free daily table.
//
// The table has one row per calendar day from Config.StartDate to the last matching activity.
// Daily values are NaN on days without data; cumulative values are forward-filled so they are
// never missing and never decrease. Records sharing a day are summed.
package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/iafilius/RunningProgress/src/activity"
	"github.com/iafilius/RunningProgress/src/logging"
)

// DailyRow is one calendar day of the table.
type DailyRow struct {
	Date               time.Time
	Distance           float64 // NaN when no distance was recorded that day
	CumulativeDistance float64
	ElapsedHours       float64 // NaN when there was no activity that day
	CumulativeHours    float64
	Goal               float64
	Activities         int
}

// HasDistance reports whether a distance was recorded on this day.
func (r DailyRow) HasDistance() bool { return !math.IsNaN(r.Distance) }

// HasActivity reports whether at least one matching activity fell on this day.
func (r DailyRow) HasActivity() bool { return r.Activities > 0 }

// run is a filtered record with its elapsed time converted.
type run struct {
	date     time.Time
	distance float64 // NaN when missing
	hours    float64
}

// FilterRuns sorts records by date (stable) and keeps those on or after cfg.StartDate whose
// type equals cfg.ActivityType. The input slice is not modified.
func FilterRuns(records []activity.Record, cfg Config) []activity.Record {
	sorted := make([]activity.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	start := activity.TruncateDay(cfg.StartDate)
	out := sorted[:0]
	for _, r := range sorted {
		if r.Date.Before(start) || r.Type != cfg.ActivityType {
			continue
		}
		out = append(out, r)
	}
	return out
}

// BuildDailyTable filters records and reindexes them onto the daily calendar. A malformed
// elapsed time on a kept record aborts with an error wrapping activity.ErrElapsedTimeFormat.
// With no matching records the table is the single start-date row.
func BuildDailyTable(records []activity.Record, cfg Config) ([]DailyRow, error) {
	defer logging.TimeTrack(time.Now(), "build daily table")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kept := FilterRuns(records, cfg)
	logging.Debugf("%d of %d record(s) are %q on or after %s", len(kept), len(records), cfg.ActivityType, cfg.StartDate.Format(activity.DateLayout))

	runs := make([]run, 0, len(kept))
	for _, r := range kept {
		secs, err := activity.ParseElapsed(r.Elapsed)
		if err != nil {
			return nil, &activity.ParseError{Line: r.Line, Column: activity.ColElapsed, Value: r.Elapsed, Err: err}
		}
		runs = append(runs, run{date: activity.TruncateDay(r.Date), distance: r.Distance, hours: float64(secs) / 3600})
	}
	return reindex(runs, cfg), nil
}

// reindex expands the sorted runs onto [start, last run] and fills the cumulative columns.
func reindex(runs []run, cfg Config) []DailyRow {
	start := activity.TruncateDay(cfg.StartDate)
	end := start
	if len(runs) > 0 {
		end = runs[len(runs)-1].date
	} else {
		logging.Warnf("no %q activities on or after %s", cfg.ActivityType, start.Format(activity.DateLayout))
	}
	n := daysBetween(start, end) + 1

	rows := make([]DailyRow, n)
	for i := range rows {
		rows[i] = DailyRow{
			Date:         start.AddDate(0, 0, i),
			Distance:     math.NaN(),
			ElapsedHours: math.NaN(),
			Goal:         float64(i) * cfg.BaselineDistance,
		}
	}

	// Left join; several runs on one day are summed.
	for _, r := range runs {
		i := daysBetween(start, r.date)
		row := &rows[i]
		row.Activities++
		row.ElapsedHours = addMissing(row.ElapsedHours, r.hours)
		if !math.IsNaN(r.distance) {
			row.Distance = addMissing(row.Distance, r.distance)
		}
	}

	// Forward fill: the running totals carry across empty days and start at 0.
	var cumDist, cumHours float64
	for i := range rows {
		if rows[i].HasDistance() {
			cumDist += rows[i].Distance
		}
		if !math.IsNaN(rows[i].ElapsedHours) {
			cumHours += rows[i].ElapsedHours
		}
		rows[i].CumulativeDistance = cumDist
		rows[i].CumulativeHours = cumHours
	}
	return rows
}

// daysBetween counts calendar days from a to b, both UTC midnights. Unix seconds rather than
// time.Duration, which saturates at about 292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}

func addMissing(acc, v float64) float64 {
	if math.IsNaN(acc) {
		return v
	}
	return acc + v
}
