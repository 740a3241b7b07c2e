package log

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/conradsun/staffd/pkg/types"
)

var (
	// Logger is the global logger instance
	Logger zerolog.Logger

	// currentLevel is the process-wide knob the LOG command sets. It is a
	// single atomic cell rather than something plumbed through every
	// handler, since the level is inherently process-global.
	currentLevel atomic.Int32
)

// Level represents log level
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// SetLevel installs level as the active process-wide log level, mapping the
// wire protocol's five levels onto zerolog's. LogFault maps to zerolog's
// FatalLevel, the most severe level short of a panic.
func SetLevel(level types.LogLevel) {
	currentLevel.Store(int32(level))
	zerolog.SetGlobalLevel(zerologLevel(level))
}

// CurrentLevel returns the level last installed by SetLevel. Init resets it
// to LogInfo whatever cfg.Level is.
func CurrentLevel() types.LogLevel {
	return types.LogLevel(currentLevel.Load())
}

func zerologLevel(level types.LogLevel) zerolog.Level {
	switch level {
	case types.LogOff:
		return zerolog.Disabled
	case types.LogFault:
		return zerolog.FatalLevel
	case types.LogError:
		return zerolog.ErrorLevel
	case types.LogInfo:
		return zerolog.InfoLevel
	case types.LogDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// Config holds logging configuration
type Config struct {
	Level      Level
	JSONOutput bool
	Output     io.Writer
}

// Init initializes the global logger
func Init(cfg Config) {
	// Set log level
	var level zerolog.Level
	switch cfg.Level {
	case DebugLevel:
		level = zerolog.DebugLevel
	case InfoLevel:
		level = zerolog.InfoLevel
	case WarnLevel:
		level = zerolog.WarnLevel
	case ErrorLevel:
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	currentLevel.Store(int32(types.LogInfo))

	// Configure output
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	// Use JSON or console output
	if cfg.JSONOutput {
		Logger = zerolog.New(output).With().Timestamp().Logger()
	} else {
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
}

// WithComponent creates a child logger with component field
func WithComponent(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}

// WithConnID creates a child logger tagged with a dispatcher connection id.
func WithConnID(connID string) zerolog.Logger {
	return Logger.With().Str("conn_id", connID).Logger()
}
