package log

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/conradsun/staffd/pkg/types"
)

func TestSetLevelUpdatesCurrentLevel(t *testing.T) {
	SetLevel(types.LogDebug)
	if got := CurrentLevel(); got != types.LogDebug {
		t.Fatalf("CurrentLevel() = %v, want LogDebug", got)
	}
	SetLevel(types.LogInfo)
	if got := CurrentLevel(); got != types.LogInfo {
		t.Fatalf("CurrentLevel() = %v, want LogInfo", got)
	}
}

func TestZerologLevelMapping(t *testing.T) {
	cases := map[types.LogLevel]zerolog.Level{
		types.LogOff:   zerolog.Disabled,
		types.LogFault: zerolog.FatalLevel,
		types.LogError: zerolog.ErrorLevel,
		types.LogInfo:  zerolog.InfoLevel,
		types.LogDebug: zerolog.DebugLevel,
	}
	for wire, want := range cases {
		if got := zerologLevel(wire); got != want {
			t.Errorf("zerologLevel(%v) = %v, want %v", wire, got, want)
		}
	}
	SetLevel(types.LogInfo)
}
