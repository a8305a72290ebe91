package run

import (
	"github.com/suzuki-shunsuke/eslintdiff/pkg/diff"
)

// RunnerName identifies messages produced by eslintdiff.
const RunnerName = "eslint"

type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// severityLevels maps ESLint severities to levels.
// ESLint uses 0 for "off", which never appears in its output.
var severityLevels = []Level{"", LevelWarning, LevelError} //nolint:gochecknoglobals

// ResolveLevel converts an ESLint severity to a Level.
// A missing or unknown severity is treated as a warning.
func ResolveLevel(severity *int) Level {
	if severity == nil {
		return LevelWarning
	}
	s := *severity
	if s < 0 || s >= len(severityLevels) || severityLevels[s] == "" {
		return LevelWarning
	}
	return severityLevels[s]
}

// Message is a problem attributed to an added line.
type Message struct {
	Path   string
	Line   *diff.AddedLine
	Level  Level
	Text   string
	RuleID string
	Runner string
}

func hasError(messages []*Message) bool {
	for _, msg := range messages {
		if msg.Level == LevelError {
			return true
		}
	}
	return false
}
