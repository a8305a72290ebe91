package di

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/controller/run"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// populateReviewFromGitHubActionsEnv fills missing review fields from GITHUB_REPOSITORY and the event payload.
func populateReviewFromGitHubActionsEnv(review *run.Review, flags *Flags, ev *Event) error {
	if review.RepoOwner == "" || review.RepoName == "" {
		owner, name, ok := strings.Cut(flags.GitHubRepository, "/")
		if !ok || owner == "" || name == "" {
			return fmt.Errorf("GITHUB_REPOSITORY is not set or invalid: %s", flags.GitHubRepository)
		}
		if review.RepoOwner == "" {
			review.RepoOwner = owner
		}
		if review.RepoName == "" {
			review.RepoName = name
		}
	}
	if review.PullRequest == 0 {
		review.PullRequest = ev.PRNumber()
	}
	if review.SHA == "" {
		review.SHA = ev.SHA()
	}
	return nil
}

// setupReview returns the pull request to review.
// It returns nil if -review isn't set or the pull request can't be determined.
func setupReview(logE *logrus.Entry, flags *Flags, ev *Event) *run.Review {
	if !flags.Review {
		return nil
	}
	review := &run.Review{
		RepoOwner:   flags.RepoOwner,
		RepoName:    flags.RepoName,
		PullRequest: flags.PR,
		SHA:         flags.SHA,
	}
	if flags.IsGitHubActions {
		if err := populateReviewFromGitHubActionsEnv(review, flags, ev); err != nil {
			logerr.WithError(logE, err).Error("set review information")
		}
	}
	if !review.Valid() {
		logE.Warn("skip creating reviews because the review information is invalid")
		return nil
	}
	return review
}

// loadEvent reads the event payload in GitHub Actions.
// The payload is optional, so a failure is logged and nil is returned.
func loadEvent(fs afero.Fs, logE *logrus.Entry, flags *Flags) *Event {
	if !flags.IsGitHubActions || flags.GitHubEventPath == "" {
		return nil
	}
	ev, err := readEvent(fs, flags.GitHubEventPath)
	if err != nil {
		logerr.WithError(logE, err).Warn("read the event payload")
		return nil
	}
	return ev
}
