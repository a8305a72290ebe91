package github_test

import (
	"context"
	"testing"

	"github.com/suzuki-shunsuke/eslintdiff/pkg/github"
)

func TestIsEnterprise(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		apiURL string
		exp    bool
	}{
		{name: "empty", apiURL: "", exp: false},
		{name: "github.com", apiURL: "https://api.github.com", exp: false},
		{name: "github.com with a trailing slash", apiURL: "https://api.github.com/", exp: false},
		{name: "ghes", apiURL: "https://ghes.example.com/api/v3", exp: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := github.IsEnterprise(d.apiURL); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	client, err := github.New(context.Background(), &github.ParamNew{
		Token:  "xxx",
		APIURL: "https://ghes.example.com/api/v3",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := client.BaseURL.String(); got != "https://ghes.example.com/api/v3/" {
		t.Fatalf("wanted %q, got %q", "https://ghes.example.com/api/v3/", got)
	}
}
