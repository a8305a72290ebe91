package diff_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/diff"
)

const twoFiles = `diff --git a/hello.js b/hello.js
index 1111111..2222222 100644
--- a/hello.js
+++ b/hello.js
@@ -1,4 +1,6 @@
 const a = 1;
-const b = 2;
+const b = foo;
+const c = 3;
 const d = 4;
+console.log(a);
 module.exports = a;
@@ -20,2 +22,3 @@ function f() {
 return 1;
+return 2;
 }
diff --git a/lib/new.es6 b/lib/new.es6
new file mode 100644
index 0000000..3333333
--- /dev/null
+++ b/lib/new.es6
@@ -0,0 +1,2 @@
+export default 1;
+export const x = 2;
diff --git a/removed.js b/removed.js
deleted file mode 100644
index 4444444..0000000
--- a/removed.js
+++ /dev/null
@@ -1,1 +0,0 @@
-const gone = true;
`

type line struct {
	Path   string
	Number int
}

func flatten(patches []*diff.Patch) map[string][]line {
	m := map[string][]line{}
	for _, p := range patches {
		lines := []line{}
		for _, l := range p.AddedLines {
			if l.Patch != p {
				continue
			}
			lines = append(lines, line{Path: l.Patch.Path, Number: l.Number})
		}
		m[p.Path] = lines
	}
	return m
}

func TestParse(t *testing.T) {
	t.Parallel()
	patches, err := diff.Parse("/repo", []byte(twoFiles))
	if err != nil {
		t.Fatal(err)
	}
	if len(patches) != 2 {
		t.Fatalf("wanted 2 patches, got %d", len(patches))
	}
	exp := map[string][]line{
		"hello.js": {
			{Path: "hello.js", Number: 2},
			{Path: "hello.js", Number: 3},
			{Path: "hello.js", Number: 5},
			{Path: "hello.js", Number: 23},
		},
		"lib/new.es6": {
			{Path: "lib/new.es6", Number: 1},
			{Path: "lib/new.es6", Number: 2},
		},
	}
	if d := cmp.Diff(exp, flatten(patches)); d != "" {
		t.Fatal(d)
	}
	if patches[1].FullPath != "/repo/lib/new.es6" {
		t.Errorf("FullPath: wanted %q, got %q", "/repo/lib/new.es6", patches[1].FullPath)
	}
	if patches[0].Additions() != 4 {
		t.Errorf("Additions: wanted 4, got %d", patches[0].Additions())
	}
}

func TestParse_empty(t *testing.T) {
	t.Parallel()
	patches, err := diff.Parse("/repo", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(patches) != 0 {
		t.Fatalf("wanted no patch, got %d", len(patches))
	}
}

type fakeGit struct {
	out  string
	err  error
	args []string
}

func (g *fakeGit) Run(_ context.Context, _ string, args ...string) ([]byte, error) {
	g.args = args
	return []byte(g.out), g.err
}

func TestSource_Read(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		param    *diff.ParamRead
		stdin    string
		file     string
		git      *fakeGit
		isErr    bool
		expPaths []string
		expArgs  []string
	}{
		{
			name:     "stdin",
			param:    &diff.ParamRead{RepoPath: "/repo", DiffFile: "-"},
			stdin:    twoFiles,
			git:      &fakeGit{},
			expPaths: []string{"hello.js", "lib/new.es6"},
		},
		{
			name:     "file",
			param:    &diff.ParamRead{RepoPath: "/repo", DiffFile: "/tmp/pr.diff"},
			file:     twoFiles,
			git:      &fakeGit{},
			expPaths: []string{"hello.js", "lib/new.es6"},
		},
		{
			name:     "git",
			param:    &diff.ParamRead{RepoPath: "/repo", Base: "main"},
			git:      &fakeGit{out: twoFiles},
			expPaths: []string{"hello.js", "lib/new.es6"},
			expArgs:  []string{"diff", "--no-color", "--no-ext-diff", "main"},
		},
		{
			name:  "git fails",
			param: &diff.ParamRead{RepoPath: "/repo", Base: "main"},
			git:   &fakeGit{err: errors.New("unknown revision")},
			isErr: true,
		},
		{
			name:  "file not found",
			param: &diff.ParamRead{RepoPath: "/repo", DiffFile: "/tmp/missing.diff"},
			git:   &fakeGit{},
			isErr: true,
		},
	}
	logE := logrus.NewEntry(logrus.New())
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.file != "" {
				if err := afero.WriteFile(fs, d.param.DiffFile, []byte(d.file), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			src := diff.NewSource(fs, bytes.NewBufferString(d.stdin), d.git)
			patches, err := src.Read(context.Background(), logE, d.param)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			paths := make([]string, len(patches))
			for i, p := range patches {
				paths[i] = p.Path
			}
			if s := cmp.Diff(d.expPaths, paths); s != "" {
				t.Fatal(s)
			}
			if d.expArgs != nil {
				if s := cmp.Diff(d.expArgs, d.git.args); s != "" {
					t.Fatal(s)
				}
			}
		})
	}
}

func TestRepoRoot(t *testing.T) {
	t.Parallel()
	root, err := diff.RepoRoot(context.Background(), &fakeGit{out: "/home/foo/repo\n"}, "/home/foo/repo/src")
	if err != nil {
		t.Fatal(err)
	}
	if root != "/home/foo/repo" {
		t.Fatalf("wanted %q, got %q", "/home/foo/repo", root)
	}
	if _, err := diff.RepoRoot(context.Background(), &fakeGit{err: errors.New("not a git repository")}, "/tmp"); err == nil {
		t.Fatal("error must be returned")
	}
}
