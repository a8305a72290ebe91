package run

import (
	"encoding/json"
	"fmt"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatSARIF = "sarif"
)

type jsonMessage struct {
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Level  Level  `json:"level"`
	Text   string `json:"message"`
	RuleID string `json:"rule_id,omitempty"`
	Runner string `json:"runner"`
}

func (c *Controller) output(messages []*Message) error {
	switch c.param.Format {
	case "", formatText:
		for _, msg := range messages {
			c.logger.Output(msg)
		}
		return nil
	case formatJSON:
		return c.outputJSON(messages)
	case formatSARIF:
		return c.outputSARIF(messages)
	default:
		return fmt.Errorf("unsupported format: %s", c.param.Format)
	}
}

func (c *Controller) outputJSON(messages []*Message) error {
	arr := make([]*jsonMessage, len(messages))
	for i, msg := range messages {
		arr[i] = &jsonMessage{
			Path:   msg.Path,
			Line:   msg.Line.Number,
			Level:  msg.Level,
			Text:   msg.Text,
			RuleID: msg.RuleID,
			Runner: msg.Runner,
		}
	}
	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(arr); err != nil {
		return fmt.Errorf("encode messages as JSON: %w", err)
	}
	return nil
}
