// Package cli defines the command line interface of eslintdiff.
package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/cli/flag"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/cli/run"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	gf := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "eslintdiff",
		Usage:                 "Report ESLint problems only on lines added by a diff. https://github.com/suzuki-shunsuke/eslintdiff",
		Version:               r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:                 gf.Flags(),
		EnableShellCompletion: true,
		Writer:                r.Stdout,
		ErrWriter:             r.Stderr,
		Commands: []*cli.Command{
			initcmd.New(r.LogE, gf),
			run.New(r.LogE, gf, &run.IO{
				Stdin:  r.Stdin,
				Stdout: r.Stdout,
				Stderr: r.Stderr,
			}, r.LDFlags.Version),
			r.newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
