// Package initcmd implements the 'eslintdiff init' command.
package initcmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/cli/flag"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/config"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/controller/run"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/log"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE: logE,
		gf:   gf,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
	gf   *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create " + config.FileName + " if it doesn't exist",
		Description: `Create ` + config.FileName + ` if it doesn't exist

$ eslintdiff init

You can also pass configuration file path.

e.g.

$ eslintdiff init ci/eslintdiff.yml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.gf.LogLevel, r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gf.Config
	}
	if configFilePath == "" {
		configFilePath = config.FileName
	}
	fs := afero.NewOsFs()
	ctrl := run.New(fs, nil, nil, nil, nil, nil, &run.ParamRun{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err := ctrl.Init(configFilePath); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
