package analysis

import (
	"fmt"
	"time"

	"github.com/iafilius/RunningProgress/src/activity"
)

// Summary holds the totals of a daily table.
type Summary struct {
	From, To      time.Time
	Days          int
	ActiveDays    int
	Activities    int
	TotalDistance float64
	TotalHours    float64
	Goal          float64
}

// GoalPct is the share of the goal reached, 0 when the goal is 0.
func (s Summary) GoalPct() float64 {
	if s.Goal <= 0 {
		return 0
	}
	return s.TotalDistance / s.Goal * 100
}

func (s Summary) String() string {
	return fmt.Sprintf("%s..%s: %d run(s) on %d/%d day(s), %.1f km (goal %.1f, %.1f%%), %.1f h",
		s.From.Format(activity.DateLayout), s.To.Format(activity.DateLayout),
		s.Activities, s.ActiveDays, s.Days, s.TotalDistance, s.Goal, s.GoalPct(), s.TotalHours)
}

// Summarize reads the totals off the last row of the table.
func Summarize(rows []DailyRow) Summary {
	if len(rows) == 0 {
		return Summary{}
	}
	last := rows[len(rows)-1]
	s := Summary{
		From:          rows[0].Date,
		To:            last.Date,
		Days:          len(rows),
		TotalDistance: last.CumulativeDistance,
		TotalHours:    last.CumulativeHours,
		Goal:          last.Goal,
	}
	for _, r := range rows {
		if r.HasActivity() {
			s.ActiveDays++
			s.Activities += r.Activities
		}
	}
	return s
}
