package run

import (
	"github.com/suzuki-shunsuke/eslintdiff/pkg/diff"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/eslint"
)

// Correlate converts ESLint results of a file into messages on the lines the patch adds.
// Offences on lines the patch doesn't add are dropped.
func Correlate(patch *diff.Patch, results []*eslint.FileResult) []*Message {
	messages := []*Message{}
	for _, offence := range offences(results) {
		line := anchor(patch.AddedLines, offence)
		if line == nil {
			continue
		}
		messages = append(messages, newMessage(offence, line))
	}
	return messages
}

// offences returns offences of results having both problems and a line number.
// A result without errors and warnings is ignored even if it has messages.
func offences(results []*eslint.FileResult) []*eslint.Offence {
	var arr []*eslint.Offence
	for _, result := range results {
		if result == nil || result.ErrorCount+result.WarningCount == 0 {
			continue
		}
		for _, offence := range result.Messages {
			if offence == nil || offence.Line == nil {
				continue
			}
			arr = append(arr, offence)
		}
	}
	return arr
}

// anchor returns the last added line in the range of offence.
// Multi-line offences are reported at the end of the added block.
func anchor(lines []*diff.AddedLine, offence *eslint.Offence) *diff.AddedLine {
	start := *offence.Line
	end := start
	if offence.EndLine != nil {
		end = *offence.EndLine
	}
	var last *diff.AddedLine
	for _, line := range lines {
		if line.Number >= start && line.Number <= end {
			last = line
		}
	}
	return last
}

func newMessage(offence *eslint.Offence, line *diff.AddedLine) *Message {
	return &Message{
		Path:   line.Patch.Path,
		Line:   line,
		Level:  ResolveLevel(offence.Severity),
		Text:   offence.Message,
		RuleID: offence.RuleID,
		Runner: RunnerName,
	}
}
