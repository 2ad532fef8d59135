package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cpprun/internal/config"
)

// Scanner expands directories into C++ source files
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Expand turns paths into candidate files. Directories are walked recursively
// for *.cpp files; anything else passes through unchanged. Expansions keep the
// order of paths, and a directory with no sources contributes nothing.
func (s *Scanner) Expand(paths []string) ([]string, error) {
	var candidates []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			candidates = append(candidates, path)
			continue
		}

		found, err := s.walk(path, func(name string) bool {
			return strings.HasSuffix(name, config.SourceSuffix)
		})
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, found...)
	}

	return candidates, nil
}

// Scan finds files under root whose name ends with one of suffixes
func (s *Scanner) Scan(root string, suffixes ...string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search root is not a directory: %s", root)
	}

	return s.walk(root, func(name string) bool {
		for _, suffix := range suffixes {
			if strings.HasSuffix(name, suffix) {
				return true
			}
		}
		return false
	})
}

// walk collects matching files below root. A symlinked root is followed and
// results are reported under root as given. Hidden files and directories below
// the root are skipped.
func (s *Scanner) walk(root string, match func(name string) bool) ([]string, error) {
	var files []string

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == resolved {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !match(name) {
			return nil
		}

		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return files, nil
}
