package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...any) string

// Logger outputs messages for humans.
type Logger struct {
	stderr io.Writer
	red    colorFunc
	yellow colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Output(msg *Message) {
	s := l.yellow("WARN")
	if msg.Level == LevelError {
		s = l.red("ERROR")
	}
	if msg.RuleID == "" {
		fmt.Fprintf(l.stderr, "%s %s:%d %s\n", s, msg.Path, msg.Line.Number, msg.Text)
		return
	}
	fmt.Fprintf(l.stderr, "%s %s:%d %s (%s)\n", s, msg.Path, msg.Line.Number, msg.Text, msg.RuleID)
}
