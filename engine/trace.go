package engine

import (
	"context"
	"log/slog"
)

// LevelTrace sits just above Info so per-cycle traces can be filtered out
// without losing ordinary logs.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace emits a per-cycle trace record through the default slog handler.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
