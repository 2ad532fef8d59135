package discovery

import (
	"errors"
	"fmt"
	"os"
)

// ErrPathNotFound is returned for a user-supplied path that does not exist
var ErrPathNotFound = errors.New("invalid file path")

// ValidatePaths checks that every path exists, failing on the first that does not
func ValidatePaths(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w %s", ErrPathNotFound, path)
			}
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return nil
}
