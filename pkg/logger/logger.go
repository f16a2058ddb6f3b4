// Package logger holds the process-wide zerolog instance. Call Init once from
// main, then pass the returned logger down or fetch it with Get.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options is intentionally small: level, console formatting, destination.
type Options struct {
	// Level is the minimum level emitted: trace, debug, info, warn, error.
	// Anything else falls back to info.
	Level string
	// Pretty switches to the colourised console writer for local development.
	// Production keeps JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	instance zerolog.Logger
	once     sync.Once
	ready    bool
)

// Init builds the shared logger. Subsequent calls return the first result.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		instance = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
		ready = true
	})
	return instance
}

// Get returns the shared logger. Panics when Init has not run.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Reset clears the singleton so the next Init rebuilds it. For tests.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	ready = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
