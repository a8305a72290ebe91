package run

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/eslintdiff/refs/heads/main/json-schema/eslintdiff.json
# eslintdiff - https://github.com/suzuki-shunsuke/eslintdiff
# eslint_executable: node_modules/.bin/eslint
# files_to_lint: (\.js|\.es6)$
# cmd_line_opts: --no-eslintrc --config .eslintrc.ci.json
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
