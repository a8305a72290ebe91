// Package di creates and wires together the dependencies of the run command.
package di

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/config"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/controller/run"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/diff"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/github"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/log"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const defaultBase = "master"

type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the run command.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, secrets *Secrets, stdio *IO) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	log.SetLevel(flags.LogLevel, logE)

	fs := afero.NewOsFs()
	git := &diff.Git{}
	repoPath, err := resolveRepoPath(ctx, logE, git, flags)
	if err != nil {
		return err
	}
	ev := loadEvent(fs, logE, flags)
	review := setupReview(logE, flags, ev)

	var prService run.PullRequestsService
	if review != nil {
		gh, err := github.New(ctx, &github.ParamNew{
			Token:  secrets.GitHubToken,
			APIURL: flags.GitHubAPIURL,
		})
		if err != nil {
			return fmt.Errorf("create a GitHub client: %w", err)
		}
		prService = gh.PullRequests
	}

	param := &run.ParamRun{
		RepoPath:       repoPath,
		ConfigFilePath: flags.Config,
		DiffFile:       flags.DiffFile,
		Base:           resolveBase(flags, ev),
		Format:         flags.Format,
		Version:        flags.Version,
		Check:          flags.Check,
		Review:         review,
		Stdout:         stdio.Stdout,
		Stderr:         stdio.Stderr,
	}
	ctrl := run.New(fs, diff.NewSource(fs, stdio.Stdin, git), config.NewFinder(fs), config.NewReader(fs), run.NewESLint, prService, param)
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// resolveRepoPath returns the absolute path of the repository root.
// Outside a git repository the current directory is used.
func resolveRepoPath(ctx context.Context, logE *logrus.Entry, git diff.GitRunner, flags *Flags) (string, error) {
	if flags.Repo != "" {
		p, err := filepath.Abs(flags.Repo)
		if err != nil {
			return "", fmt.Errorf("get the absolute path of the repository: %w", err)
		}
		return p, nil
	}
	root, err := diff.RepoRoot(ctx, git, flags.PWD)
	if err != nil {
		logerr.WithError(logE, err).Debug("use the current directory as the repository root")
		return flags.PWD, nil
	}
	return root, nil
}

// resolveBase returns the base revision of the diff.
// In a pull_request workflow the base commit of the pull request is used by default.
func resolveBase(flags *Flags, ev *Event) string {
	if flags.Base != "" {
		return flags.Base
	}
	if sha := ev.BaseSHA(); sha != "" {
		return sha
	}
	return defaultBase
}
