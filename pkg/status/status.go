// Package status renders per-file rename results to the console, keeping
// the human-facing output separate from the structured zerolog stream.
package status

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/batch"
)

// 🎨 Display configuration
const (
	nameWidth = 40 // base width for the original filename column
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📂 StartBatch announces the directory being processed
func (l *Logger) StartBatch(dir string, files int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := color.New(color.FgCyan, color.Bold).Sprintf("%s", dir)
	fmt.Fprintf(l.console, "%s (%d files)\n", header, files)
}

// 👀 LogMapping prints one preview line
func (l *Logger) LogMapping(m batch.Mapping) {
	l.mu.Lock()
	defer l.mu.Unlock()

	symbol := color.New(color.FgYellow).Sprint("-")
	if m.Candidate != m.Original {
		symbol = color.New(color.FgBlue).Sprint("⟳")
	}
	fmt.Fprintf(l.console, "  %s %-*s %s\n", symbol, nameWidth, m.Original, m.Candidate)
}

// 📝 LogResult prints one commit line
func (l *Logger) LogResult(r batch.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case r.Err != nil:
		symbol := color.New(color.FgRed).Sprint("✗")
		fmt.Fprintf(l.console, "  %s %-*s %s\n", symbol, nameWidth, r.Original, r.Err.Error())
	case r.Candidate == r.Original:
		symbol := color.New(color.FgCyan).Sprint("•")
		fmt.Fprintf(l.console, "  %s %-*s unchanged\n", symbol, nameWidth, r.Original)
	default:
		symbol := color.New(color.FgGreen).Sprint("✓")
		fmt.Fprintf(l.console, "  %s %-*s %s\n", symbol, nameWidth, r.Original, r.Candidate)
	}
}

// 📊 Summary prints the batch outcome and logs it structurally
func (l *Logger) Summary(results []batch.Result) {
	renamed, unchanged, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Candidate == r.Original:
			unchanged++
		default:
			renamed++
		}
	}

	l.zlog.Info().
		Int("renamed", renamed).
		Int("unchanged", unchanged).
		Int("failed", failed).
		Msg("batch finished")

	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%d renamed, %d unchanged, %d failed", renamed, unchanged, failed)
	if failed > 0 {
		fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(line))
	} else {
		fmt.Fprintln(l.console, color.New(color.FgGreen).Sprint(line))
	}
}
