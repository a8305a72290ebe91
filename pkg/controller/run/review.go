package run

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/github"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type PullRequestsService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.PullRequestComment) (*github.PullRequestComment, *github.Response, error)
}

// Review is the pull request where messages are posted as review comments.
type Review struct {
	RepoOwner   string
	RepoName    string
	PullRequest int
	SHA         string
}

func (r *Review) Valid() bool {
	return r != nil && r.RepoOwner != "" && r.RepoName != "" && r.PullRequest > 0
}

const reviewHeader = "Reported by [eslintdiff](https://github.com/suzuki-shunsuke/eslintdiff)"

// reviewMessages posts each message as a review comment.
// A failure is logged and doesn't stop the other comments.
func (c *Controller) reviewMessages(ctx context.Context, logE *logrus.Entry, messages []*Message) {
	for _, msg := range messages {
		logE := logE.WithFields(logrus.Fields{
			"file": msg.Path,
			"line": msg.Line.Number,
		})
		code, err := c.review(ctx, msg)
		if err != nil {
			logerr.WithError(logE, err).WithField("status_code", code).Error("create a review comment")
		}
	}
}

func (c *Controller) review(ctx context.Context, msg *Message) (int, error) {
	cmt := &github.PullRequestComment{
		Body: github.Ptr(reviewBody(msg)),
		Path: github.Ptr(msg.Path),
		Line: github.Ptr(msg.Line.Number),
	}
	if c.param.Review.SHA != "" {
		cmt.CommitID = github.Ptr(c.param.Review.SHA)
	}
	_, resp, err := c.pullRequestsService.CreateComment(ctx, c.param.Review.RepoOwner, c.param.Review.RepoName, c.param.Review.PullRequest, cmt)
	code := 0
	if resp != nil && resp.Response != nil {
		code = resp.StatusCode
	}
	if err != nil {
		return code, fmt.Errorf("create a review comment: %w", err)
	}
	return code, nil
}

func reviewBody(msg *Message) string {
	level := "Warning"
	if msg.Level == LevelError {
		level = "Error"
	}
	if msg.RuleID == "" {
		return fmt.Sprintf("%s\n\n**%s**: %s", reviewHeader, level, msg.Text)
	}
	return fmt.Sprintf("%s\n\n**%s**: %s (`%s`)", reviewHeader, level, msg.Text, msg.RuleID)
}
