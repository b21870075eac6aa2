package common

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevelEnv selects the minimum log level (debug, info, warn, error).
const LogLevelEnv = "FRUITMERGE_LOG"

var logOutput io.Writer = os.Stderr

// SetLogOutput redirects loggers created afterwards by NewLogger. Terminal
// front ends point it at a file so log lines do not tear the screen.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

// NewLogger returns a logger tagged with prefix, writing to stderr unless
// SetLogOutput changed it.
func NewLogger(prefix string) *log.Logger {
	return NewLoggerTo(logOutput, prefix)
}

func NewLoggerTo(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv(LogLevelEnv, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// DiscardLogger drops everything. Tests use it to keep output quiet.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}
