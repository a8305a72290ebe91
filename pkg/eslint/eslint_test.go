package eslint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/eslint"
)

func intP(i int) *int {
	return &i
}

func TestParse(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name  string
		input string
		exp   []*eslint.FileResult
		isErr bool
	}{
		{
			name:  "empty array",
			input: "[]",
			exp:   []*eslint.FileResult{},
		},
		{
			name: "optional fields",
			input: `[{
  "filePath": "/repo/hello.js",
  "errorCount": 1,
  "warningCount": 1,
  "messages": [
    {"ruleId": "no-undef", "line": 5, "endLine": 8, "severity": 2, "message": "'foo' is not defined."},
    {"ruleId": null, "message": "File ignored because of a matching ignore pattern.", "severity": 1}
  ]
}]`,
			exp: []*eslint.FileResult{
				{
					FilePath:     "/repo/hello.js",
					ErrorCount:   1,
					WarningCount: 1,
					Messages: []*eslint.Offence{
						{
							RuleID:   "no-undef",
							Line:     intP(5),
							EndLine:  intP(8),
							Severity: intP(2),
							Message:  "'foo' is not defined.",
						},
						{
							Severity: intP(1),
							Message:  "File ignored because of a matching ignore pattern.",
						},
					},
				},
			},
		},
		{
			name:  "invalid JSON",
			input: "Oops! Something went wrong!",
			isErr: true,
		},
		{
			name:  "unexpected shape",
			input: `{"errorCount": 1}`,
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			results, err := eslint.Parse([]byte(d.input))
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if s := cmp.Diff(d.exp, results); s != "" {
				t.Fatal(s)
			}
		})
	}
}

func TestRunner_CommandLine(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		executable string
		opts       string
		path       string
		exp        string
	}{
		{
			name:       "default",
			executable: "eslint",
			path:       "/repo/hello.js",
			exp:        "eslint  /repo/hello.js -f json",
		},
		{
			name:       "options and a path with spaces",
			executable: "node_modules/.bin/eslint",
			opts:       "--no-eslintrc --rule 'semi: 2'",
			path:       "/repo/my file.js",
			exp:        "node_modules/.bin/eslint --no-eslintrc --rule 'semi: 2' '/repo/my file.js' -f json",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := eslint.NewRunner(d.executable, d.opts, "/repo").CommandLine(d.path)
			if got != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}

func TestRunner_Lint(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name         string
		executable   string
		expCount     int
		isErr        bool
		isUnexpected bool
	}{
		{
			name:       "no problem",
			executable: `echo '[{"filePath":"a.js","errorCount":0,"warningCount":0,"messages":[]}]'; true`,
			expCount:   1,
		},
		{
			name:       "problems found",
			executable: `echo '[{"filePath":"a.js","errorCount":1,"warningCount":0,"messages":[{"line":1,"severity":2,"message":"x"}]}]'; exit 1;`,
			expCount:   1,
		},
		{
			name:         "crash",
			executable:   `echo 'config not found' >&2; exit 2;`,
			isErr:        true,
			isUnexpected: true,
		},
		{
			name:         "executable not found",
			executable:   "eslintdiff-command-which-does-not-exist",
			isErr:        true,
			isUnexpected: true,
		},
		{
			name:       "invalid JSON",
			executable: `echo 'Oops'; true`,
			isErr:      true,
		},
	}
	logE := logrus.NewEntry(logrus.New())
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			runner := eslint.NewRunner(d.executable, "", t.TempDir())
			results, err := runner.Lint(context.Background(), logE, "a.js")
			if err != nil {
				if !d.isErr {
					t.Fatal(err)
				}
				if d.isUnexpected != errors.Is(err, eslint.ErrUnexpectedExit) {
					t.Fatalf("errors.Is(err, ErrUnexpectedExit) should be %v: %v", d.isUnexpected, err)
				}
				return
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if len(results) != d.expCount {
				t.Fatalf("wanted %d results, got %d", d.expCount, len(results))
			}
		})
	}
}
