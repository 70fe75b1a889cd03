// Package activity reads the activity export into records.
//
// The export is a comma-separated file with a header row. Only four columns are used:
// Activity Type, Date, Distance and Elapsed Time. Dates are fatal when malformed, distances
// are coerced to NaN, and elapsed times are kept as text for the transform to convert.
package activity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/iafilius/RunningProgress/src/logging"
)

// DefaultPath is where the export is expected relative to the working directory.
const DefaultPath = "data/Activities.csv"

// Column names in the export header.
const (
	ColType     = "Activity Type"
	ColDate     = "Date"
	ColDistance = "Distance"
	ColElapsed  = "Elapsed Time"
)

// Record is one row of the export.
type Record struct {
	Line     int       // 1-based line in the source, header is line 1
	Type     string    // e.g. "Running", "Cycling"
	Date     time.Time // UTC midnight
	Distance float64   // NaN when empty or malformed
	Elapsed  string    // raw "HH:MM:SS"
}

// HasDistance reports whether the distance cell held a number.
func (r Record) HasDistance() bool { return !math.IsNaN(r.Distance) }

// Load opens path and reads all records from it.
func Load(path string) ([]Record, error) {
	defer logging.TimeTrack(time.Now(), "load "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open activities: %w", err)
	}
	defer f.Close()
	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read parses the export from r. It fails on a missing required column or a bad date; bad
// distances only produce a warning.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input, no header", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var recs []Record
	coerced := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(row) {
			continue
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		date, err := ParseDate(cell(ColDate))
		if err != nil {
			return nil, &ParseError{Line: line, Column: ColDate, Value: cell(ColDate), Err: err}
		}
		dist, _ := ParseDistance(cell(ColDistance))
		rec := Record{
			Line:     line,
			Type:     cell(ColType),
			Date:     date,
			Distance: dist,
			Elapsed:  strings.TrimSpace(cell(ColElapsed)),
		}
		if !rec.HasDistance() {
			coerced++
			logging.Debugf("line %d: distance %q is not a number, treating as missing", line, cell(ColDistance))
		}
		recs = append(recs, rec)
	}
	if coerced > 0 {
		logging.Warnf("%d of %d distance value(s) could not be parsed and were treated as missing", coerced, len(recs))
	}
	logging.Debugf("read %d activity record(s)", len(recs))
	return recs, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	var missing []string
	for _, col := range []string{ColType, ColDate, ColDistance, ColElapsed} {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
