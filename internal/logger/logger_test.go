package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, observed := observer.New(zapcore.DebugLevel)
	original := base
	base = zap.New(core)
	t.Cleanup(func() { base = original })
	return observed
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"META", META},
		{"GAME", GAME},
		{"PLAYER", PLAYER},
		{"CARD", CARD},
		{"card", CARD},
		{"invalid", CARD},
		{"", CARD},
	}
	for _, test := range tests {
		if got := ParseLogLevel(test.input); got != test.expected {
			t.Errorf("ParseLogLevel(%q) = %d; expected %d", test.input, got, test.expected)
		}
	}
}

func TestSetLogLevelFiltersLowerPriorityMessages(t *testing.T) {
	observed := withObserver(t)
	original := currentLevel
	t.Cleanup(func() { currentLevel = original })

	SetLogLevel(GAME)
	LogMeta("meta message")
	LogGame("game message")
	LogPlayer("player message")
	LogCard("card message")

	var messages []string
	for _, entry := range observed.All() {
		messages = append(messages, entry.Message)
	}

	assertContains(t, messages, "META: meta message")
	assertContains(t, messages, "GAME: game message")
	assertNotContains(t, messages, "PLAYER: player message")
	assertNotContains(t, messages, "CARD: card message")
}

func TestLogCardFormatsArguments(t *testing.T) {
	observed := withObserver(t)
	original := currentLevel
	t.Cleanup(func() { currentLevel = original })

	SetLogLevel(CARD)
	LogCard("drawing card: %s (cost %d)", "Scout", 0)

	assertContains(t, allMessages(observed), "CARD: drawing card: Scout (cost 0)")
}

func TestLogParsingFailureDedupesByCardName(t *testing.T) {
	dir := t.TempDir()
	if err := InitDiagnostics(dir); err != nil {
		t.Fatalf("InitDiagnostics: %v", err)
	}

	LogParsingFailure("scout", "bad text", "unexpected token")
	LogParsingFailure("scout", "bad text", "unexpected token")

	data, err := os.ReadFile(filepath.Join(dir, "parsing_failures.log"))
	if err != nil {
		t.Fatalf("reading parsing_failures.log: %v", err)
	}
	if got := countOccurrences(string(data), "scout"); got != 1 {
		t.Errorf("expected exactly one deduped entry for scout, got %d", got)
	}
}

func TestLogBattleDiagnosticNeverDedupes(t *testing.T) {
	dir := t.TempDir()
	if err := InitDiagnostics(dir); err != nil {
		t.Fatalf("InitDiagnostics: %v", err)
	}

	LogBattleDiagnostic("invariant failure", "dump one")
	LogBattleDiagnostic("invariant failure", "dump two")

	data, err := os.ReadFile(filepath.Join(dir, "battle_panics.log"))
	if err != nil {
		t.Fatalf("reading battle_panics.log: %v", err)
	}
	if got := countOccurrences(string(data), "invariant failure"); got != 2 {
		t.Errorf("expected two undeduped entries, got %d", got)
	}
}

func allMessages(observed *observer.ObservedLogs) []string {
	var out []string
	for _, entry := range observed.All() {
		out = append(out, entry.Message)
	}
	return out
}

func assertContains(t *testing.T, haystack []string, needle string) {
	t.Helper()
	for _, s := range haystack {
		if s == needle {
			return
		}
	}
	t.Errorf("expected %v to contain %q", haystack, needle)
}

func assertNotContains(t *testing.T, haystack []string, needle string) {
	t.Helper()
	for _, s := range haystack {
		if s == needle {
			t.Errorf("expected %v not to contain %q", haystack, needle)
		}
	}
}

func countOccurrences(haystack, needle string) int {
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			count++
		}
	}
	return count
}
