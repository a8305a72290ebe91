package diff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Source reads a unified diff either from a file or from git.
type Source struct {
	fs    afero.Fs
	stdin io.Reader
	git   GitRunner
}

// GitRunner runs a git command in dir and returns its stdout.
type GitRunner interface {
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

func NewSource(fs afero.Fs, stdin io.Reader, git GitRunner) *Source {
	return &Source{
		fs:    fs,
		stdin: stdin,
		git:   git,
	}
}

type ParamRead struct {
	RepoPath string
	// DiffFile is a path of a diff file. "-" means the standard input.
	// If DiffFile is empty, the diff is got by `git diff <Base>`.
	DiffFile string
	Base     string
}

// Read returns the patches of the diff.
func (s *Source) Read(ctx context.Context, logE *logrus.Entry, param *ParamRead) ([]*Patch, error) {
	b, err := s.read(ctx, logE, param)
	if err != nil {
		return nil, err
	}
	return Parse(param.RepoPath, b)
}

func (s *Source) read(ctx context.Context, logE *logrus.Entry, param *ParamRead) ([]byte, error) {
	switch param.DiffFile {
	case "-":
		b, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("read a diff from the standard input: %w", err)
		}
		return b, nil
	case "":
		logE.WithField("base", param.Base).Debug("get a diff by git")
		b, err := s.git.Run(ctx, param.RepoPath, "diff", "--no-color", "--no-ext-diff", param.Base)
		if err != nil {
			return nil, fmt.Errorf("get a diff by git: %w", err)
		}
		return b, nil
	default:
		b, err := afero.ReadFile(s.fs, param.DiffFile)
		if err != nil {
			return nil, fmt.Errorf("read a diff file: %w", err)
		}
		return b, nil
	}
}

// Git runs the git command.
type Git struct{}

func (g *Git) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// RepoRoot returns the root directory of the git repository containing dir.
func RepoRoot(ctx context.Context, git GitRunner, dir string) (string, error) {
	b, err := git.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
