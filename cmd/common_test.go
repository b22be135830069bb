package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveProjectRoot(t *testing.T) {
	dir := t.TempDir()

	root, err := resolveProjectRoot([]string{dir})
	if err != nil {
		t.Fatalf("resolveProjectRoot: %v", err)
	}
	if root != filepath.Clean(dir) {
		t.Errorf("root = %q", root)
	}

	if _, err := resolveProjectRoot([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("expected error for missing path")
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveProjectRoot([]string{file}); err == nil {
		t.Error("expected error for non-directory path")
	}
}

func TestResolveProjectRootDefaultsToCwd(t *testing.T) {
	root, err := resolveProjectRoot(nil)
	if err != nil {
		t.Fatalf("resolveProjectRoot: %v", err)
	}
	if root != "." {
		t.Errorf("root = %q, want .", root)
	}
}
