package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"axscan/internal/model"
)

// SourceSuffix selects the files considered by a scan.
const SourceSuffix = ".swift"

// Scanner runs the enumerate-match-classify pipeline over a directory tree.
type Scanner struct {
	matcher *Matcher
}

func NewScanner() *Scanner {
	return &Scanner{matcher: NewMatcher()}
}

// Run scans every Swift file under root and returns the accumulated result.
// Files are processed one at a time in walk order; a file that cannot be
// read is recorded in Skipped and the scan continues.
func (s *Scanner) Run(root string) (model.ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return model.ScanResult{}, fmt.Errorf("Directory %s does not exist", root)
	}

	paths, err := enumerate(root)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("walking %s: %w", root, err)
	}

	result := model.ScanResult{
		Root:         root,
		FilesScanned: len(paths),
	}

	for _, path := range paths {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			result.Skipped = append(result.Skipped, model.SkippedFile{
				Path:   rel,
				Reason: readErr.Error(),
			})
			continue
		}

		matches := s.matcher.FindMatches(string(content))
		if len(matches) == 0 {
			continue
		}

		result.Files = append(result.Files, model.FileReport{
			Path:    rel,
			Matches: matches,
		})
		result.TotalMatches += len(matches)
	}

	return result, nil
}

// enumerate collects the Swift file paths under root, recursively.
// Order is whatever the walk yields; callers must not rely on it.
func enumerate(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable directory shouldn't kill the whole scan.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), SourceSuffix) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
