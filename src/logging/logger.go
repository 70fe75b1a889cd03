// Package logging is the leveled logger shared by the loader, the transform and the chart tool.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

// SetLogLevel parses and sets the global log level. Unknown names leave the level unchanged
// and are reported back so the caller can complain about a bad flag value.
func SetLogLevel(s string) error {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	return nil
}

// GetLogLevel returns the current global log level.
func GetLogLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

// SetOutput redirects log output; tests use it to capture lines.
func SetOutput(w io.Writer) {
	baseLogger.SetOutput(w)
}

func logf(l Level, format string, args ...interface{}) {
	if GetLogLevel() > l {
		return
	}
	// A message without args is printed as is so literal % signs survive.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", l, format)
		return
	}
	baseLogger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level. Use with defer:
//
//	defer logging.TimeTrack(time.Now(), "load")
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start).Round(time.Microsecond))
}
