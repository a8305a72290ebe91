// Package github creates the GitHub API client used to post review comments.
// The client is authenticated with a token through OAuth2 and can talk to
// GitHub Enterprise Server when an API URL other than github.com is given.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

type (
	Client             = github.Client
	Response           = github.Response
	PullRequestComment = github.PullRequestComment
)

const defaultAPIURL = "https://api.github.com"

type ParamNew struct {
	Token string
	// APIURL is the REST API endpoint. Empty or the github.com endpoint means github.com.
	APIURL string
}

// New creates a GitHub API client.
func New(ctx context.Context, param *ParamNew) (*Client, error) {
	client := github.NewClient(getHTTPClient(ctx, param.Token))
	if !IsEnterprise(param.APIURL) {
		return client, nil
	}
	c, err := client.WithEnterpriseURLs(param.APIURL, param.APIURL)
	if err != nil {
		return nil, fmt.Errorf("configure GitHub Enterprise Server URLs: %w", err)
	}
	return c, nil
}

// IsEnterprise reports whether apiURL points to GitHub Enterprise Server.
func IsEnterprise(apiURL string) bool {
	return apiURL != "" && strings.TrimSuffix(apiURL, "/") != defaultAPIURL
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

func getHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
