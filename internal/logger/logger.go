package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	NONE
)

// slog has no "off" level; anything above ERROR silences the handler.
var slogLevels = map[LogLevel]slog.Level{
	DEBUG: slog.LevelDebug,
	INFO:  slog.LevelInfo,
	WARN:  slog.LevelWarn,
	ERROR: slog.LevelError,
	NONE:  slog.LevelError + 100,
}

var (
	mu      sync.Mutex
	level   = new(slog.LevelVar)
	std     = newLogger(os.Stderr)
	logFile *os.File
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !colorable(w),
	}))
}

func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "none":
		return NONE
	default:
		return INFO
	}
}

// Init sets the level and, when logfilePath is set, tees output to that file.
// With quiet, stderr is left out entirely; the TUI uses this so log lines do
// not tear the screen.
func Init(logfilePath string, levelStr string, quiet bool) error {
	mu.Lock()
	defer mu.Unlock()

	level.Set(slogLevels[ParseLevel(levelStr)])

	var console io.Writer = os.Stderr
	if quiet {
		console = io.Discard
	}

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if logfilePath == "" {
		std = newLogger(console)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logfilePath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f
	if quiet {
		std = newLogger(f)
	} else {
		std = newLogger(io.MultiWriter(console, f))
	}
	return nil
}

// SetOutput redirects log lines, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std = newLogger(w)
}

func logf(l slog.Level, msg string, args ...any) {
	mu.Lock()
	lg := std
	mu.Unlock()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(msg, args...))
}

func Debug(msg string, args ...any) { logf(slog.LevelDebug, msg, args...) }
func Info(msg string, args ...any)  { logf(slog.LevelInfo, msg, args...) }
func Warn(msg string, args ...any)  { logf(slog.LevelWarn, msg, args...) }
func Error(msg string, args ...any) { logf(slog.LevelError, msg, args...) }
