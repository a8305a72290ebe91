// Package config reads the eslintdiff configuration file from the root of a repository.
// The file is optional. Recognized keys are merged over the defaults and the
// result is an immutable Config built once per run.
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	FileName = ".eslintdiff.yml"

	DefaultESLintExecutable = "eslint"
	DefaultFilesToLint      = `(\.js|\.es6)$`
)

// File is the schema of the configuration file.
// Keys that aren't declared here are ignored.
type File struct {
	ESLintExecutable string `json:"eslint_executable,omitempty" yaml:"eslint_executable" jsonschema:"description=ESLint executable. The default is eslint"`
	FilesToLint      string `json:"files_to_lint,omitempty" yaml:"files_to_lint" jsonschema:"description=A regular expression of files to lint. The default matches .js and .es6 files"`
	CmdLineOpts      string `json:"cmd_line_opts,omitempty" yaml:"cmd_line_opts" jsonschema:"description=Command line options passed to ESLint as is"`
}

// Config is the resolved configuration.
type Config struct {
	ESLintExecutable string
	CmdLineOpts      string
	// FilesToLintPattern is the source of FilesToLint, kept for logging.
	FilesToLintPattern string
	FilesToLint        func(path string) bool
}

// New merges f over the defaults and compiles files_to_lint.
// f may be nil.
func New(f *File) (*Config, error) {
	cfg := &Config{
		ESLintExecutable:   DefaultESLintExecutable,
		FilesToLintPattern: DefaultFilesToLint,
	}
	if f != nil {
		if f.ESLintExecutable != "" {
			cfg.ESLintExecutable = f.ESLintExecutable
		}
		if f.FilesToLint != "" {
			cfg.FilesToLintPattern = f.FilesToLint
		}
		cfg.CmdLineOpts = f.CmdLineOpts
	}
	r, err := regexp.Compile(cfg.FilesToLintPattern)
	if err != nil {
		return nil, fmt.Errorf("compile files_to_lint as a regular expression: %w", err)
	}
	cfg.FilesToLint = r.MatchString
	return cfg, nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it is set.
// Otherwise it returns the path of the configuration file in the repository root,
// or an empty string if the file doesn't exist.
func (f *Finder) Find(repoPath, configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p := filepath.Join(repoPath, FileName)
	exist, err := afero.Exists(f.fs, p)
	if err != nil {
		return "", fmt.Errorf("check if %s exists: %w", p, err)
	}
	if exist {
		return p, nil
	}
	return "", nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read reads configFilePath and returns the resolved configuration.
// If configFilePath is empty, the default configuration is returned.
func (r *Reader) Read(configFilePath string) (*Config, error) {
	if configFilePath == "" {
		return New(nil)
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	file := &File{}
	if err := yaml.NewDecoder(f).Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	return New(file)
}
