package run

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/eslintdiff/pkg/sarif"
)

// ruleUnknown is used for problems ESLint reports without a rule, such as parse errors.
const ruleUnknown = "eslint"

// outputSARIF outputs messages in SARIF format to stdout.
func (c *Controller) outputSARIF(messages []*Message) error {
	log := sarif.New(sarif.Driver{
		Name:           "eslintdiff",
		InformationURI: "https://github.com/suzuki-shunsuke/eslintdiff",
		Version:        c.param.Version,
		Rules:          buildSARIFRules(messages),
	}, buildSARIFResults(messages))

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func sarifRuleID(msg *Message) string {
	if msg.RuleID == "" {
		return ruleUnknown
	}
	return msg.RuleID
}

func buildSARIFRules(messages []*Message) []sarif.Rule {
	rules := []sarif.Rule{}
	seen := map[string]struct{}{}
	for _, msg := range messages {
		id := sarifRuleID(msg)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rules = append(rules, sarif.Rule{
			ID:               id,
			ShortDescription: sarif.Message{Text: "ESLint rule " + id},
			HelpURI:          ruleHelpURI(msg.RuleID),
		})
	}
	return rules
}

// ruleHelpURI returns the documentation of core rules.
// Plugin rules such as "react/jsx-key" have no known URL.
func ruleHelpURI(ruleID string) string {
	if ruleID == "" || strings.Contains(ruleID, "/") {
		return ""
	}
	return "https://eslint.org/docs/latest/rules/" + ruleID
}

func buildSARIFResults(messages []*Message) []sarif.Result {
	results := make([]sarif.Result, 0, len(messages))
	for _, msg := range messages {
		results = append(results, sarif.Result{
			RuleID:  sarifRuleID(msg),
			Level:   string(msg.Level),
			Message: sarif.Message{Text: msg.Text},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: msg.Path,
						},
						Region: sarif.Region{
							StartLine: msg.Line.Number,
						},
					},
				},
			},
		})
	}
	return results
}
