package toolchain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"cpprun/internal/config"
	"cpprun/internal/domain"
)

// fakeCompiler writes the last argument as an executable script that exits
// with the code named in the source file, or fails for sources named broken
const fakeCompiler = `#!/bin/sh
src=$1
for a; do out=$a; done
case "$(basename "$src")" in
  *broken*) echo "$src:1:1: error: expected ';'" >&2; exit 1 ;;
esac
code=$(cat "$src")
printf '#!/bin/sh\necho running\nexit %s\n' "$code" > "$out"
chmod +x "$out"
`

func setup(t *testing.T) (*config.Config, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	compiler := filepath.Join(dir, "fakecxx")
	if err := os.WriteFile(compiler, []byte(fakeCompiler), 0755); err != nil {
		t.Fatalf("failed to write fake compiler: %v", err)
	}

	cfg := config.New()
	cfg.Compiler = compiler
	cfg.Artifact = filepath.Join(dir, "exec")
	return cfg, dir
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestCompiler_Args(t *testing.T) {
	cfg := config.New()
	compiler := NewCompiler(cfg)

	tests := []struct {
		name     string
		category domain.Category
		extra    []string
		expected string
		wantErr  bool
	}{
		{
			name:     "test",
			category: domain.CategoryTest,
			expected: "a.test.cpp -std=c++17 -lgtest -lgtest_main -lpthread -o exec",
		},
		{
			name:     "benchmark",
			category: domain.CategoryBenchmark,
			expected: "a.test.cpp -std=c++17 -O3 -lbenchmark -lpthread -o exec",
		},
		{
			name:     "extra flags precede libraries",
			category: domain.CategoryTest,
			extra:    []string{"-Wall", "-Isrc"},
			expected: "a.test.cpp -std=c++17 -Wall -Isrc -lgtest -lgtest_main -lpthread -o exec",
		},
		{
			name:     "other is rejected",
			category: domain.CategoryOther,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.ExtraFlags = tt.extra
			args, err := compiler.Args("a.test.cpp", tt.category)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.Join(args, " "); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCompiler_CompileAndClean(t *testing.T) {
	cfg, dir := setup(t)
	compiler := NewCompiler(cfg)
	ctx := context.Background()

	t.Run("successful compile produces artifact", func(t *testing.T) {
		src := writeSource(t, dir, "ok.test.cpp", "0")
		if _, err := compiler.Compile(ctx, src, domain.CategoryTest); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !compiler.Compiled() {
			t.Fatal("expected artifact to exist")
		}
		if compiler.ArtifactSize() == 0 {
			t.Error("expected non-empty artifact")
		}
		if err := compiler.Clean(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if compiler.Compiled() {
			t.Error("expected artifact to be removed")
		}
	})

	t.Run("failed compile returns diagnostics", func(t *testing.T) {
		src := writeSource(t, dir, "broken.test.cpp", "")
		output, err := compiler.Compile(ctx, src, domain.CategoryTest)
		if err != nil {
			t.Fatalf("compiler exit status should not be an error: %v", err)
		}
		if !strings.Contains(output, "error: expected ';'") {
			t.Errorf("expected diagnostics, got %q", output)
		}
		if compiler.Compiled() {
			t.Error("no artifact expected")
		}
	})

	t.Run("missing compiler is an error", func(t *testing.T) {
		missing := *cfg
		missing.Compiler = filepath.Join(dir, "no-such-cxx")
		src := writeSource(t, dir, "ok.test.cpp", "0")
		if _, err := NewCompiler(&missing).Compile(ctx, src, domain.CategoryTest); err == nil {
			t.Error("expected error for missing compiler")
		}
	})

	t.Run("clean without artifact", func(t *testing.T) {
		if err := compiler.Clean(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRunner_Run(t *testing.T) {
	cfg, dir := setup(t)
	compiler := NewCompiler(cfg)
	ctx := context.Background()

	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"passing binary", "0", 0},
		{"crashing binary", "3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeSource(t, dir, "case.test.cpp", tt.code)
			if _, err := compiler.Compile(ctx, src, domain.CategoryTest); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer compiler.Clean()

			var stdout bytes.Buffer
			runner := NewRunner(cfg, &stdout, &stdout)
			code, err := runner.Run(ctx, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tt.expected {
				t.Errorf("expected exit code %d, got %d", tt.expected, code)
			}
			if !strings.Contains(stdout.String(), "running") {
				t.Errorf("expected binary output, got %q", stdout.String())
			}
		})
	}

	t.Run("missing artifact is an error", func(t *testing.T) {
		if _, err := NewRunner(cfg, &bytes.Buffer{}, &bytes.Buffer{}).Run(ctx, nil); err == nil {
			t.Error("expected error for missing artifact")
		}
	})
}

func TestRunner_Command(t *testing.T) {
	tests := []struct {
		artifact string
		expected string
	}{
		{"exec", "./exec"},
		{"build/exec", "build/exec"},
		{"/tmp/exec", "/tmp/exec"},
	}

	for _, tt := range tests {
		t.Run(tt.artifact, func(t *testing.T) {
			cfg := config.New()
			cfg.Artifact = tt.artifact
			if got := NewRunner(cfg, nil, nil).Command(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestRunner_RunCapturesOutput(t *testing.T) {
	cfg, dir := setup(t)
	compiler := NewCompiler(cfg)
	ctx := context.Background()

	src := writeSource(t, dir, "capture.test.cpp", "0")
	if _, err := compiler.Compile(ctx, src, domain.CategoryTest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer compiler.Clean()

	var stdout, capture bytes.Buffer
	if _, err := NewRunner(cfg, &stdout, &stdout).Run(ctx, &capture); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capture.String() != stdout.String() || capture.Len() == 0 {
		t.Errorf("expected captured output to mirror stdout, got %q and %q", capture.String(), stdout.String())
	}
}
