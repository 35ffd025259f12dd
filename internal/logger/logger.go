package logger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunEntry summarizes a single fizzbuzz run
type RunEntry struct {
	RunID     string
	Timestamp time.Time
	Bound     int32
	Lines     int
	Fizz      int
	Buzz      int
	FizzBuzz  int
	Numbers   int
	Duration  time.Duration
}

// NewRunEntry returns an entry stamped with a fresh run ID and the current time
func NewRunEntry(bound int32) RunEntry {
	return RunEntry{
		RunID:     uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Bound:     bound,
	}
}

// Logger wraps a zap logger with run-level helpers
type Logger struct {
	*zap.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
	File   string `yaml:"file"`   // Optional extra output path (appended)
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// New creates a logger writing to stderr, plus cfg.File when set.
// Stdout is left alone, it carries the program output.
func New(cfg Config) (*Logger, error) {
	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	zc.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = append(zc.OutputPaths, cfg.File)
	}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	zl, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{Logger: zl}, nil
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// LogRun writes the run summary at debug level
func (l *Logger) LogRun(e RunEntry) {
	l.Debug("run complete",
		zap.String("run_id", e.RunID),
		zap.Time("started", e.Timestamp),
		zap.Int32("bound", e.Bound),
		zap.Int("lines", e.Lines),
		zap.Int("fizz", e.Fizz),
		zap.Int("buzz", e.Buzz),
		zap.Int("fizzbuzz", e.FizzBuzz),
		zap.Int("numbers", e.Numbers),
		zap.Duration("duration", e.Duration),
	)
}

// Close flushes buffered entries. Sync errors on terminals are ignored.
func (l *Logger) Close() error {
	_ = l.Sync()
	return nil
}
