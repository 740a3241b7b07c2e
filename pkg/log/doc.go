/*
Package log provides structured logging for staffd using zerolog.

The log package wraps zerolog to provide JSON-structured logging with
component-specific loggers, a configurable level, and helper functions for
common logging patterns. All logs include timestamps and support filtering by
severity level.

# Architecture

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("dispatcher")               │          │
	│  │  - WithConnID("8f3e...")                     │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                              │          │
	│  │  JSON Format:                               │          │
	│  │  {                                           │          │
	│  │    "level": "info",                         │          │
	│  │    "component": "dispatcher",               │          │
	│  │    "time": "2024-10-13T10:30:00Z",         │          │
	│  │    "message": "connection accepted"         │          │
	│  │  }                                           │          │
	│  │                                              │          │
	│  │  Console Format:                            │          │
	│  │  10:30AM INF connection accepted component=dispatcher │ │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# The LOG command and the global level

The LOG command (see pkg/query) is the one piece of user-facing state that
is genuinely process-wide: it is accepted only from the dispatcher's local
standard-input channel, and it governs every subsequent log line regardless
of which connection produced it. SetLevel stores the new level in a single
atomic cell (currentLevel) and reconfigures zerolog's global level to
match, so no handler needs to thread a level value through its call chain.

Wire level → zerolog level:

	off   → zerolog.Disabled
	fault → zerolog.FatalLevel   (most severe short of a panic)
	error → zerolog.ErrorLevel
	info  → zerolog.InfoLevel
	debug → zerolog.DebugLevel

# Usage

Initializing the Logger:

	import "github.com/conradsun/staffd/pkg/log"

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

Component Loggers:

	dispatchLog := log.WithComponent("dispatcher")
	dispatchLog.Info().Msg("accepted connection")

	connLog := log.WithConnID(connID)
	connLog.Debug().Str("command", "GET").Msg("dispatching request")

Setting the level from the LOG command:

	log.SetLevel(types.LogDebug)
	current := log.CurrentLevel() // types.LogDebug

# Integration Points

This package is used by:

  - pkg/dispatcher: logs connection lifecycle and shutdown
  - pkg/query: calls SetLevel when the LOG command is executed
  - cmd/staffd: calls log.Init during bootstrap

# Design Patterns

Global Logger Pattern:
  - Single package-level Logger instance
  - Initialized once at process start
  - Accessible from all packages without passing a reference

Context Logger Pattern:
  - Create child loggers with context fields (component, conn_id)
  - Pass context loggers down instead of repeating fields per call site

# Security

  - Never log full record contents alongside secrets; this system has none,
    but client-supplied free-text fields (dept, pos) should still go through
    structured fields (.Str) rather than string concatenation, so a crafted
    value cannot forge a second log line.
*/
package log
