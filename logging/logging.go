package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Config struct {
	Level  string
	Format string // "console" or "json"
	Output io.Writer
}

var (
	mu      sync.Mutex
	lg      zerolog.Logger
	ready   bool
	session string
)

// Init builds the process logger. Every line carries the session id so runs
// can be told apart in a shared log file.
func Init(cfg Config) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}
	session = uuid.NewString()
	lg = zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("session", session).
		Logger()
	ready = true
	return lg
}

// L returns the process logger, initialising a console logger on first use.
func L() zerolog.Logger {
	mu.Lock()
	if ready {
		defer mu.Unlock()
		return lg
	}
	mu.Unlock()
	return Init(Config{Level: "info"})
}

// Session returns the id stamped on every log line.
func Session() string {
	mu.Lock()
	defer mu.Unlock()
	return session
}

// Component returns a child logger tagged with a subsystem name.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
