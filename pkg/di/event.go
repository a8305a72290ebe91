package di

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Event is the subset of a GitHub Actions pull_request event payload.
type Event struct {
	PullRequest *PullRequest `json:"pull_request"`
	Repository  *Repository  `json:"repository"`
}

func (e *Event) PRNumber() int {
	if e == nil || e.PullRequest == nil {
		return 0
	}
	return e.PullRequest.Number
}

// SHA returns the head commit of the pull request.
func (e *Event) SHA() string {
	if e == nil || e.PullRequest == nil || e.PullRequest.Head == nil {
		return ""
	}
	return e.PullRequest.Head.SHA
}

// BaseSHA returns the base commit of the pull request, which is the default base of the diff.
func (e *Event) BaseSHA() string {
	if e == nil || e.PullRequest == nil || e.PullRequest.Base == nil {
		return ""
	}
	return e.PullRequest.Base.SHA
}

type PullRequest struct {
	Number int     `json:"number"`
	Head   *Commit `json:"head"`
	Base   *Commit `json:"base"`
}

type Repository struct {
	Name string `json:"name"`
}

type Commit struct {
	SHA string `json:"sha"`
}

func readEvent(fs afero.Fs, eventPath string) (*Event, error) {
	f, err := fs.Open(eventPath)
	if err != nil {
		return nil, fmt.Errorf("read GITHUB_EVENT_PATH: %w", err)
	}
	defer f.Close()
	ev := &Event{}
	if err := json.NewDecoder(f).Decode(ev); err != nil {
		return nil, fmt.Errorf("unmarshal GITHUB_EVENT_PATH: %w", err)
	}
	return ev, nil
}
