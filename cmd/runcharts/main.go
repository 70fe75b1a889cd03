// runcharts reads an activity export and draws two progress charts.
//
// With no flags it reads data/Activities.csv, keeps Running activities from 2024-01-01 on,
// and writes running_distance.png (cumulative distance against a 5 km/day goal) and
// running_time.png (cumulative hours) into the current directory at 2x scale.
//
// Pipeline: activity.Load -> analysis.BuildDailyTable -> WriteCharts. Any load, parse or write
// error aborts the run before or instead of producing charts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iafilius/RunningProgress/src/activity"
	"github.com/iafilius/RunningProgress/src/analysis"
	"github.com/iafilius/RunningProgress/src/logging"
)

type runOptions struct {
	inPath string
	outDir string
	cfg    analysis.Config
	charts ChartOptions
}

func main() {
	inPath := flag.String("in", activity.DefaultPath, "Path to the activities CSV export")
	outDir := flag.String("out", ".", "Directory for "+DistanceChartFile+" and "+TimeChartFile)
	start := flag.String("start", analysis.DefaultStartDate, "First calendar day (YYYY-MM-DD)")
	baseline := flag.Float64("baseline", analysis.DefaultBaselineDistance, "Goal distance per day")
	activityType := flag.String("type", analysis.DefaultActivityType, "Activity type to chart (exact, case-sensitive)")
	scale := flag.Int("scale", DefaultChartOptions().Scale, "Image scale factor")
	caption := flag.Bool("caption", false, "Stamp a totals line onto each chart")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	if err := logging.SetLogLevel(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	startDate, err := time.Parse(activity.DateLayout, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -start %q: want YYYY-MM-DD\n", *start)
		os.Exit(2)
	}

	opts := runOptions{
		inPath: *inPath,
		outDir: *outDir,
		cfg: analysis.Config{
			StartDate:        startDate,
			BaselineDistance: *baseline,
			ActivityType:     *activityType,
		},
		charts: DefaultChartOptions(),
	}
	opts.charts.Scale = *scale
	opts.charts.Caption = *caption

	if err := run(opts); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(opts runOptions) error {
	defer logging.TimeTrack(time.Now(), "run")
	if err := opts.cfg.Validate(); err != nil {
		return err
	}
	records, err := activity.Load(opts.inPath)
	if err != nil {
		return err
	}
	rows, err := analysis.BuildDailyTable(records, opts.cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.inPath, err)
	}
	logging.Infof("%s", analysis.Summarize(rows))
	if _, err := WriteCharts(rows, opts.cfg, opts.outDir, opts.charts); err != nil {
		return err
	}
	return nil
}
