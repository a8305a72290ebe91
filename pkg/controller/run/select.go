package run

import (
	"github.com/suzuki-shunsuke/eslintdiff/pkg/diff"
)

// SelectPatches returns patches which add lines to files matching filesToLint.
// The order of patches is kept.
func SelectPatches(patches []*diff.Patch, filesToLint func(string) bool) []*diff.Patch {
	selected := make([]*diff.Patch, 0, len(patches))
	for _, patch := range patches {
		if patch.Additions() <= 0 {
			continue
		}
		if !filesToLint(patch.FullPath) {
			continue
		}
		selected = append(selected, patch)
	}
	return selected
}
