// Package diff turns a unified diff into per-file patches and their added lines.
package diff

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

const devNull = "/dev/null"

// Patch is the change of one file between two revisions.
type Patch struct {
	// Path is the path of the new file relative to the repository root.
	Path string
	// FullPath is the absolute path of the new file.
	FullPath   string
	AddedLines []*AddedLine
}

// Additions returns the number of added lines.
func (p *Patch) Additions() int {
	return len(p.AddedLines)
}

// AddedLine is a line which exists in the new revision but not in the old one.
type AddedLine struct {
	Patch *Patch
	// Number is the 1-based line number in the new file.
	Number int
}

// Parse parses a unified diff, which may contain multiple files.
// Deleted files are skipped because they can't have added lines.
func Parse(repoPath string, b []byte) ([]*Patch, error) {
	fileDiffs, err := diff.NewMultiFileDiffReader(bytes.NewReader(b)).ReadAllFiles()
	if err != nil {
		return nil, fmt.Errorf("parse a unified diff: %w", err)
	}
	patches := make([]*Patch, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		if fd.NewName == devNull || fd.NewName == "" {
			continue
		}
		p := trimPrefix(fd.NewName)
		patch := &Patch{
			Path:     p,
			FullPath: filepath.Join(repoPath, filepath.FromSlash(p)),
		}
		for _, hunk := range fd.Hunks {
			patch.AddedLines = append(patch.AddedLines, addedLines(patch, hunk)...)
		}
		patches = append(patches, patch)
	}
	return patches, nil
}

func trimPrefix(name string) string {
	for _, prefix := range []string{"b/", "a/"} {
		if s, ok := strings.CutPrefix(name, prefix); ok {
			return s
		}
	}
	return name
}

func addedLines(patch *Patch, hunk *diff.Hunk) []*AddedLine {
	lines := bytes.Split(hunk.Body, []byte("\n"))
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	var added []*AddedLine
	number := int(hunk.NewStartLine)
	for _, line := range lines {
		if len(line) == 0 {
			// a context line whose leading space was stripped
			number++
			continue
		}
		switch line[0] {
		case '+':
			added = append(added, &AddedLine{
				Patch:  patch,
				Number: number,
			})
			number++
		case '-', '\\':
		default:
			number++
		}
	}
	return added
}
