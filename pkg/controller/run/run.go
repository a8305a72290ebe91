package run

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/config"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/diff"
	"golang.org/x/sync/errgroup"
)

// ErrOffencesFound is returned with -check when errors are found on added lines.
var ErrOffencesFound = errors.New("eslint errors are found in added lines")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	patches, err := c.patchReader.Read(ctx, logE, &diff.ParamRead{
		RepoPath: c.param.RepoPath,
		DiffFile: c.param.DiffFile,
		Base:     c.param.Base,
	})
	if err != nil {
		return fmt.Errorf("read a diff: %w", err)
	}
	messages, err := c.Lint(ctx, logE, patches)
	if err != nil {
		return err
	}
	logE.WithField("num_of_messages", len(messages)).Debug("linted added lines")
	if err := c.output(messages); err != nil {
		return err
	}
	if c.param.Review != nil {
		c.reviewMessages(ctx, logE, messages)
	}
	if c.param.Check && hasError(messages) {
		return ErrOffencesFound
	}
	return nil
}

// Lint runs ESLint for each selected patch in parallel and returns messages on added lines.
// If ESLint fails for any file, the whole run fails.
func (c *Controller) Lint(ctx context.Context, logE *logrus.Entry, patches []*diff.Patch) ([]*Message, error) {
	if len(patches) == 0 {
		return []*Message{}, nil
	}
	cfg, err := c.readConfig()
	if err != nil {
		return nil, err
	}
	selected := SelectPatches(patches, cfg.FilesToLint)
	logE.WithFields(logrus.Fields{
		"num_of_patches":  len(patches),
		"num_of_selected": len(selected),
		"files_to_lint":   cfg.FilesToLintPattern,
	}).Debug("selected patches")
	linter := c.newLinter(cfg, c.param.RepoPath)

	results := make([][]*Message, len(selected))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, patch := range selected {
		eg.Go(func() error {
			logE := logE.WithField("file", patch.Path)
			fileResults, err := linter.Lint(ctx, logE, patch.FullPath)
			if err != nil {
				return fmt.Errorf("lint %s: %w", patch.Path, err)
			}
			results[i] = Correlate(patch, fileResults)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	messages := []*Message{}
	for _, msgs := range results {
		messages = append(messages, msgs...)
	}
	return messages, nil
}

func (c *Controller) readConfig() (*config.Config, error) {
	p, err := c.cfgFinder.Find(c.param.RepoPath, c.param.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg, err := c.cfgReader.Read(p)
	if err != nil {
		return nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfg, nil
}
