package normalize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVariants_OriginalFirst(t *testing.T) {
	got := Variants("./foo/bar")

	if len(got) == 0 || got[0] != "./foo/bar" {
		t.Fatalf("expected original path first, got %v", got)
	}
	if !contains(got, "foo/bar") {
		t.Errorf("expected ./-stripped variant, got %v", got)
	}
}

func TestVariants_AbsoluteUnderCwd(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(cwd, "sub", "file.txt")

	got := Variants(abs)

	if !contains(got, filepath.Join("sub", "file.txt")) {
		t.Errorf("expected cwd-relative variant, got %v", got)
	}
}

func TestVariants_TildeExpansion(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := Variants("~/.ssh/id_rsa")

	if got[0] != "~/.ssh/id_rsa" {
		t.Fatalf("expected original path first, got %v", got)
	}
	if !contains(got, filepath.Join(homeDir, ".ssh/id_rsa")) {
		t.Errorf("expected home-expanded variant, got %v", got)
	}
}

func TestVariants_IdempotentRelativePath(t *testing.T) {
	// A plain relative path with no symlinks and no prefixes has no
	// other spelling.
	got := Variants("docs/readme.md")

	if len(got) != 1 || got[0] != "docs/readme.md" {
		t.Errorf("expected single-element result, got %v", got)
	}
}

func TestVariants_Deduplicated(t *testing.T) {
	got := Variants("./x")

	seen := make(map[string]bool)
	for _, v := range got {
		if seen[v] {
			t.Fatalf("duplicate variant %q in %v", v, got)
		}
		seen[v] = true
	}
}

func TestVariants_SymlinkResolved(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	if err := os.WriteFile(target, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got := Variants(link)

	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}
	if !contains(got, resolved) {
		t.Errorf("expected resolved path %q in %v", resolved, got)
	}
}

func TestExpandTilde(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~", homeDir},
		{"~/notes.txt", filepath.Join(homeDir, "notes.txt")},
		{"/etc/hosts", "/etc/hosts"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandTilde(tt.in); got != tt.expected {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
