// Package run implements the 'eslintdiff run' command.
package run

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/cli/flag"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/di"
	"github.com/urfave/cli/v3"
)

type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func New(logE *logrus.Entry, gf *flag.GlobalFlags, stdio *IO, version string) *cli.Command {
	r := &runner{
		logE:    logE,
		gf:      gf,
		io:      stdio,
		version: version,
	}
	return r.Command()
}

type runner struct {
	logE    *logrus.Entry
	gf      *flag.GlobalFlags
	io      *IO
	version string
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Lint files changed by a diff and report problems on added lines",
		Description: `Lint JavaScript files changed from the base revision and report only problems on added lines.

$ eslintdiff run

The diff is got by "git diff <base>" in the repository root.
You can also pass a diff file. "-" means the standard input.

e.g.

$ git diff main... | eslintdiff run --diff-file -
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Usage: "Repository root directory. By default, the root of the git repository of the current directory",
			},
			&cli.StringFlag{
				Name:  "base",
				Usage: "Base revision of the diff. By default, the base commit of the pull request in GitHub Actions, otherwise master",
			},
			&cli.StringFlag{
				Name:  "diff-file",
				Usage: "Unified diff file. '-' means the standard input",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format. One of text, json, and sarif",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Exit with a non-zero status code if errors are found on added lines",
			},
			&cli.BoolFlag{
				Name:  "review",
				Usage: "Create review comments",
			},
			&cli.StringFlag{
				Name:    "repo-owner",
				Usage:   "GitHub repository owner",
				Sources: cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
			},
			&cli.StringFlag{
				Name:  "repo-name",
				Usage: "GitHub repository name",
			},
			&cli.StringFlag{
				Name:  "sha",
				Usage: "Commit SHA to be reviewed",
			},
			&cli.IntFlag{
				Name:  "pr",
				Usage: "GitHub pull request number",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	pwd, err := os.Getwd()
	if err != nil {
		return err //nolint:wrapcheck
	}
	flags := &di.Flags{
		GlobalFlags: r.gf,
		Repo:        c.String("repo"),
		Base:        c.String("base"),
		DiffFile:    c.String("diff-file"),
		Format:      c.String("format"),
		Check:       c.Bool("check"),
		Review:      c.Bool("review"),
		RepoOwner:   c.String("repo-owner"),
		RepoName:    c.String("repo-name"),
		SHA:         c.String("sha"),
		PR:          c.Int("pr"),
		PWD:         pwd,
		Version:     r.version,
	}
	di.SetEnv(flags, os.Getenv)
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Run(ctx, r.logE, flags, secrets, &di.IO{ //nolint:wrapcheck
		Stdin:  r.io.Stdin,
		Stdout: r.io.Stdout,
		Stderr: r.io.Stderr,
	})
}
