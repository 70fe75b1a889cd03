package activity

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrDateFormat is returned when a Date cell is not YYYY-MM-DD.
	ErrDateFormat = errors.New("invalid date")
	// ErrElapsedTimeFormat is returned when an Elapsed Time cell is not HH:MM:SS.
	ErrElapsedTimeFormat = errors.New("invalid elapsed time")
)

// ParseError locates a bad cell in the input file. Line is 1-based and counts the header.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
