package activity

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleCSV = `Activity Type,Date,Favorite,Title,Distance,Calories,Elapsed Time
Running,2024-01-03,false,Evening Run,2.0,150,00:15:00
Cycling,2024-01-02,false,Commute,12.5,300,00:40:00
Running,2024-01-01,true,Morning Run,3.0,220,00:30:00
`

func TestReadSample(t *testing.T) {
	recs, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records got %d", len(recs))
	}
	r := recs[0]
	if r.Type != "Running" || r.Distance != 2.0 || r.Elapsed != "00:15:00" || r.Line != 2 {
		t.Fatalf("unexpected first record: %+v", r)
	}
	if !r.Date.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", r.Date)
	}
	if recs[2].Line != 4 {
		t.Fatalf("expected line 4 got %d", recs[2].Line)
	}
}

func TestReadMalformedDistanceIsMissing(t *testing.T) {
	in := "Activity Type,Date,Distance,Elapsed Time\n" +
		"Running,2024-01-01,N/A,00:30:00\n" +
		"Running,2024-01-02,,00:30:00\n" +
		"Running,2024-01-03,4.25,00:30:00\n"
	recs, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("malformed distance must not fail the read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records got %d", len(recs))
	}
	if recs[0].HasDistance() || recs[1].HasDistance() {
		t.Fatalf("expected missing distances: %+v", recs[:2])
	}
	if !recs[2].HasDistance() || recs[2].Distance != 4.25 {
		t.Fatalf("expected 4.25 got %v", recs[2].Distance)
	}
}

func TestReadMissingColumn(t *testing.T) {
	in := "Activity Type,Date,Elapsed Time\nRunning,2024-01-01,00:30:00\n"
	_, err := Read(strings.NewReader(in))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn got %v", err)
	}
	if !strings.Contains(err.Error(), "Distance") {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn for empty input got %v", err)
	}
}

func TestReadBadDateIsFatal(t *testing.T) {
	in := "Activity Type,Date,Distance,Elapsed Time\n" +
		"Running,2024-01-01,3.0,00:30:00\n" +
		"Running,01/02/2024,3.0,00:30:00\n"
	_, err := Read(strings.NewReader(in))
	if !errors.Is(err, ErrDateFormat) {
		t.Fatalf("expected ErrDateFormat got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError got %T", err)
	}
	if pe.Line != 3 || pe.Column != ColDate || pe.Value != "01/02/2024" {
		t.Fatalf("unexpected parse error fields: %+v", pe)
	}
}

func TestReadHeaderWithBOMAndSpaces(t *testing.T) {
	in := "\ufeffActivity Type, Date, Distance, Elapsed Time\nRunning,2024-02-29,5.0,00:28:10\n"
	recs, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 1 || !recs[0].Date.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReadDateWithTimeOfDayIsFatal(t *testing.T) {
	in := "Activity Type,Date,Distance,Elapsed Time\nRunning,2024-01-01 07:00:00,5.0,00:28:10\n"
	_, err := Read(strings.NewReader(in))
	var pe *ParseError
	if !errors.As(err, &pe) || !errors.Is(err, ErrDateFormat) {
		t.Fatalf("expected date ParseError got %v", err)
	}
	if pe.Line != 2 || pe.Value != "2024-01-01 07:00:00" {
		t.Fatalf("unexpected parse error fields: %+v", pe)
	}
}

func TestReadKeepsActivityTypeVerbatim(t *testing.T) {
	in := "Activity Type,Date,Distance,Elapsed Time\n" +
		" Running,2024-01-01,5.0,00:30:00\n" +
		"Running ,2024-01-02,5.0,00:30:00\n" +
		"Running,2024-01-03,5.0,00:30:00\n"
	recs, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{" Running", "Running ", "Running"}
	for i, r := range recs {
		if r.Type != want[i] {
			t.Fatalf("record %d: type %q want %q", i, r.Type, want[i])
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Activities.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records got %d", len(recs))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error got %v", err)
	}
}

func TestParseElapsed(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"01:00:00", 3600, true},
		{"00:30:00", 1800, true},
		{"00:15:00", 900, true},
		{"02:03:04", 7384, true},
		{" 10:00:01 ", 36001, true},
		{"00:75:00", 4500, true},
		{"45:12", 0, false},
		{"00:45:12.3", 0, false},
		{"--", 0, false},
		{"", 0, false},
		{"1:-2:00", 0, false},
		{"a:b:c", 0, false},
	}
	for _, c := range cases {
		got, err := ParseElapsed(c.in)
		if c.ok {
			if err != nil || got != c.want {
				t.Fatalf("ParseElapsed(%q) = %d, %v; want %d", c.in, got, err, c.want)
			}
			continue
		}
		if !errors.Is(err, ErrElapsedTimeFormat) {
			t.Fatalf("ParseElapsed(%q) expected ErrElapsedTimeFormat got %v", c.in, err)
		}
	}
}

func TestParseDistance(t *testing.T) {
	if v, ok := ParseDistance(" 7.5 "); !ok || v != 7.5 {
		t.Fatalf("expected 7.5 got %v %v", v, ok)
	}
	for _, s := range []string{"N/A", "", "1,234.5", "NaN", "Inf", "--"} {
		v, ok := ParseDistance(s)
		if ok || !math.IsNaN(v) {
			t.Fatalf("ParseDistance(%q) expected NaN/false got %v/%v", s, v, ok)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-13-01"); !errors.Is(err, ErrDateFormat) {
		t.Fatalf("expected ErrDateFormat got %v", err)
	}
	for _, s := range []string{"2024-03-10 23:59:59", "2024-03-10T00:00:00Z", "10/03/2024", "2024-3-10", ""} {
		if _, err := ParseDate(s); !errors.Is(err, ErrDateFormat) {
			t.Fatalf("ParseDate(%q) expected ErrDateFormat got %v", s, err)
		}
	}
	d, err := ParseDate(" 2024-03-10 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", d)
	}
}
