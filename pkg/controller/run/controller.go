// Package run reports ESLint problems on the lines a diff adds.
// It selects the changed files worth linting, runs ESLint for each of them in parallel,
// attributes each problem to the last added line it covers, and outputs the messages
// as text, JSON, or SARIF. Messages can also be posted as pull request review comments.
package run

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/config"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/diff"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/eslint"
)

type Controller struct {
	fs                  afero.Fs
	patchReader         PatchReader
	cfgFinder           ConfigFinder
	cfgReader           ConfigReader
	newLinter           LinterFactory
	pullRequestsService PullRequestsService
	param               *ParamRun
	logger              *Logger
}

type PatchReader interface {
	Read(ctx context.Context, logE *logrus.Entry, param *diff.ParamRead) ([]*diff.Patch, error)
}

type ConfigFinder interface {
	Find(repoPath, configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(configFilePath string) (*config.Config, error)
}

type Linter interface {
	Lint(ctx context.Context, logE *logrus.Entry, path string) ([]*eslint.FileResult, error)
}

// LinterFactory creates a Linter running in the repository root.
type LinterFactory func(cfg *config.Config, repoPath string) Linter

// NewESLint is the LinterFactory running the ESLint command.
func NewESLint(cfg *config.Config, repoPath string) Linter {
	return eslint.NewRunner(cfg.ESLintExecutable, cfg.CmdLineOpts, repoPath)
}

type ParamRun struct {
	RepoPath       string
	ConfigFilePath string
	DiffFile       string
	Base           string
	Format         string
	Version        string
	Check          bool
	Review         *Review
	Stdout         io.Writer
	Stderr         io.Writer
}

func New(fs afero.Fs, patchReader PatchReader, cfgFinder ConfigFinder, cfgReader ConfigReader, newLinter LinterFactory, pullRequestsService PullRequestsService, param *ParamRun) *Controller {
	return &Controller{
		fs:                  fs,
		patchReader:         patchReader,
		cfgFinder:           cfgFinder,
		cfgReader:           cfgReader,
		newLinter:           newLinter,
		pullRequestsService: pullRequestsService,
		param:               param,
		logger:              NewLogger(param.Stderr),
	}
}
