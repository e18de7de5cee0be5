// Package logger provides leveled logging for the Dreamtides engine. It
// keeps the teacher's named-level API (LogGame/LogPlayer/LogCard/LogMeta,
// originally in mtgsim's internal/logger/logger.go) but replaces the
// hand-rolled log.Logger wrapper with go.uber.org/zap, grounded on
// rackaracka123-terraforming-mars and AKJUS-bsc-erigon, both of which wire
// zap for structured application logging.
package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors the teacher's LogLevel ordering (META < GAME < PLAYER <
// CARD, each tier a superset of the coarser ones).
type Level int

const (
	META Level = iota
	GAME
	PLAYER
	CARD
)

var currentLevel = CARD

var base = mustBuildLogger()

func mustBuildLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.TimeKey = "t"
	l, err := cfg.Build()
	if err != nil {
		// A degraded no-op logger is preferable to panicking at package
		// init; a battle should still run with logging disabled, not crash.
		return zap.NewNop()
	}
	return l
}

// SetLogLevel sets the minimum level that will be emitted.
func SetLogLevel(level Level) { currentLevel = level }

// ParseLogLevel parses a RUST_LOG-style string ("META", "GAME", "PLAYER",
// "CARD") into a Level, defaulting to CARD for unrecognized input, matching
// the teacher's ParseLogLevel behavior.
func ParseLogLevel(level string) Level {
	switch strings.ToUpper(level) {
	case "META":
		return META
	case "GAME":
		return GAME
	case "PLAYER":
		return PLAYER
	case "CARD":
		return CARD
	default:
		return CARD
	}
}

func logAt(level Level, tag, message string, args ...interface{}) {
	if currentLevel < level {
		return
	}
	base.Info(tag + ": " + fmt.Sprintf(message, args...))
}

// LogMeta logs meta-level messages (deck generation, catalog build, etc).
func LogMeta(message string, args ...interface{}) { logAt(META, "META", message, args...) }

// LogGame logs game-level messages (turn/phase transitions).
func LogGame(message string, args ...interface{}) { logAt(GAME, "GAME", message, args...) }

// LogPlayer logs player-level messages (priority passes, decisions).
func LogPlayer(message string, args ...interface{}) { logAt(PLAYER, "PLAYER", message, args...) }

// LogCard logs card-level messages (individual effect resolution).
func LogCard(message string, args ...interface{}) { logAt(CARD, "CARD", message, args...) }

// Fields returns a *zap.Logger pre-tagged with the given structured fields,
// for call sites (e.g. battle diagnostics) that want key=value context
// instead of a formatted string.
func Fields(fields ...zap.Field) *zap.Logger { return base.With(fields...) }

// diagnosticLogger appends structured failure dumps to a log file, grounded
// on the teacher's ParsingFailureLogger, which dedupes and appends
// parse-failure diagnostics to logs/parsing_failures.log. Dreamtides
// generalizes this into a single append-only sink used both for parse
// failures and for battle.PanicWithDiagnostics invariant-failure dumps
// (spec.md section 7).
type diagnosticLogger struct {
	dir   string
	cache map[string]bool
}

var diag *diagnosticLogger

// InitDiagnostics points the diagnostic sink at dir, creating it if needed.
func InitDiagnostics(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating diagnostic log directory: %w", err)
	}
	diag = &diagnosticLogger{dir: dir, cache: make(map[string]bool)}
	return nil
}

func (d *diagnosticLogger) path(name string) string { return filepath.Join(d.dir, name) }

// LogParsingFailure appends a deduped parse-failure entry to
// parsing_failures.log, matching the teacher's LogParsingFailure behavior.
func LogParsingFailure(cardName, text, details string) {
	if diag == nil {
		if err := InitDiagnostics(""); err != nil {
			LogCard("failed to initialize diagnostic log: %v", err)
			return
		}
	}
	key := "parse:" + cardName
	if diag.cache[key] {
		return
	}
	diag.cache[key] = true
	appendDiagnostic(diag.path("parsing_failures.log"), cardName, fmt.Sprintf("oracle text: %s\nerror: %s", text, details))
}

// LogBattleDiagnostic appends an undeduped full-state dump used by
// battle.PanicWithDiagnostics. Unlike parse failures, invariant failures are
// never deduped: each is a distinct bug report.
func LogBattleDiagnostic(label, dump string) {
	if diag == nil {
		if err := InitDiagnostics(""); err != nil {
			LogCard("failed to initialize diagnostic log: %v", err)
			return
		}
	}
	appendDiagnostic(diag.path("battle_panics.log"), label, dump)
}

func appendDiagnostic(path, label, body string) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		LogCard("failed to open diagnostic log %s: %v", path, err)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()
	fmt.Fprintf(w, "%s [%s]\n%s\n---\n", time.Now().Format("2006-01-02 15:04:05"), label, body)
}
