package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates the given files (relative to dir) with placeholder content
func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, file := range files {
		fullPath := filepath.Join(dir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("int main() {}\n"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}
}

// chdir switches into dir for the rest of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}
