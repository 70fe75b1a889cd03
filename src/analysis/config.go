package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// DefaultStartDate is the first day of the calendar.
	DefaultStartDate = "2024-01-01"
	// DefaultBaselineDistance is the goal distance per day.
	DefaultBaselineDistance = 5.0
	// DefaultActivityType is the only activity type that counts.
	DefaultActivityType = "Running"
)

// Config controls filtering and the goal series.
type Config struct {
	StartDate        time.Time // first calendar day, UTC midnight
	BaselineDistance float64   // goal distance per day
	ActivityType     string    // exact, case-sensitive match
}

// DefaultConfig returns the 2024-01-01 / 5 per day / Running configuration.
func DefaultConfig() Config {
	start, _ := time.Parse("2006-01-02", DefaultStartDate)
	return Config{
		StartDate:        start,
		BaselineDistance: DefaultBaselineDistance,
		ActivityType:     DefaultActivityType,
	}
}

// Validate reports configuration errors before any data is touched.
func (c Config) Validate() error {
	var errs []error
	if c.StartDate.IsZero() {
		errs = append(errs, errors.New("start date is not set"))
	}
	if math.IsNaN(c.BaselineDistance) || math.IsInf(c.BaselineDistance, 0) || c.BaselineDistance < 0 {
		errs = append(errs, fmt.Errorf("baseline distance %v must be a non-negative number", c.BaselineDistance))
	}
	if strings.TrimSpace(c.ActivityType) == "" {
		errs = append(errs, errors.New("activity type is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
