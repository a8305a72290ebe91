// Package eslint runs ESLint for a single file and parses its JSON formatter output.
package eslint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/sirupsen/logrus"
)

// FileResult is an element of the output of `eslint -f json`.
type FileResult struct {
	FilePath     string     `json:"filePath"`
	ErrorCount   int        `json:"errorCount"`
	WarningCount int        `json:"warningCount"`
	Messages     []*Offence `json:"messages"`
}

// Offence is a problem which ESLint reports.
// Optional fields are pointers so that a missing value can be told apart from zero.
type Offence struct {
	RuleID   string `json:"ruleId"`
	Line     *int   `json:"line"`
	EndLine  *int   `json:"endLine"`
	Severity *int   `json:"severity"`
	Message  string `json:"message"`
}

// Parse parses the output of `eslint -f json`.
func Parse(b []byte) ([]*FileResult, error) {
	results := []*FileResult{}
	if err := json.Unmarshal(b, &results); err != nil {
		return nil, fmt.Errorf("parse ESLint output as JSON: %w", err)
	}
	return results, nil
}

// ErrUnexpectedExit is returned when ESLint exits with a code other than 0 and 1.
// ESLint exits with 1 when it finds problems, which isn't a failure here.
var ErrUnexpectedExit = errors.New("eslint exited unexpectedly")

// Runner runs ESLint through the shell in the repository root.
type Runner struct {
	executable  string
	cmdLineOpts string
	dir         string
}

func NewRunner(executable, cmdLineOpts, dir string) *Runner {
	return &Runner{
		executable:  executable,
		cmdLineOpts: cmdLineOpts,
		dir:         dir,
	}
}

// CommandLine returns the shell command line to lint a file.
func (r *Runner) CommandLine(path string) string {
	return fmt.Sprintf("%s %s %s -f json", r.executable, r.cmdLineOpts, shellescape.Quote(path))
}

// Lint runs ESLint for path and returns the parsed result.
func (r *Runner) Lint(ctx context.Context, logE *logrus.Entry, path string) ([]*FileResult, error) {
	cmdLine := r.CommandLine(path)
	logE.WithField("command", cmdLine).Debug("run eslint")
	cmd := exec.CommandContext(ctx, "sh", "-c", cmdLine)
	cmd.Dir = r.dir
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		exitErr := &exec.ExitError{}
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run eslint: %w", err)
		}
		if exitErr.ExitCode() != 1 {
			return nil, fmt.Errorf("%w: exit code %d: %s", ErrUnexpectedExit, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
	}
	results, err := Parse(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return results, nil
}
