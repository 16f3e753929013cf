// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// YakefileName is the exact file name recognized during subordinate discovery.
const YakefileName = "Yakefile"

// FindYakefiles searches the given root path for files named exactly
// "Yakefile" located one subdirectory level below root. Deeper nesting is
// ignored, as is a Yakefile at the root itself. Results are returned in
// lexical path order.
func FindYakefiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		depth := pathDepth(rootPath, path)
		if d.IsDir() {
			if depth > 1 {
				return fs.SkipDir
			}
			return nil
		}
		if depth == 2 && d.Name() == YakefileName {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// pathDepth counts the path segments separating path from root; the root
// itself has depth 0.
func pathDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(rel, string(filepath.Separator)))
}
