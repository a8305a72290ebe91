package di

import (
	"github.com/suzuki-shunsuke/eslintdiff/pkg/cli/flag"
)

// Flags holds all command-line flags for the run command.
type Flags struct {
	*flag.GlobalFlags

	Repo     string
	Base     string
	DiffFile string
	Format   string
	Check    bool
	Review   bool

	IsGitHubActions bool

	RepoOwner string
	RepoName  string
	SHA       string
	PR        int

	GitHubRepository string
	GitHubAPIURL     string
	GitHubEventPath  string

	PWD     string
	Version string
}
