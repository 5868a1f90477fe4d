package patterns

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_SinglePattern(t *testing.T) {
	path := writeFile(t, "^rm -rf /tmp/.*\n")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 pattern, got %d", set.Len())
	}

	// A single pattern must behave exactly as if compiled directly,
	// anchors included.
	direct := regexp.MustCompile("^rm -rf /tmp/.*")
	for _, in := range []string{"rm -rf /tmp/build", "echo rm -rf /tmp/build", "rm -rf /var"} {
		if set.Match(in) != direct.MatchString(in) {
			t.Errorf("match mismatch for %q: set=%v direct=%v", in, set.Match(in), direct.MatchString(in))
		}
	}
}

func TestLoad_MultiplePatternsAnyMatch(t *testing.T) {
	path := writeFile(t, "^foo$\n# a comment\n\n^bar$\n")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 patterns, got %d", set.Len())
	}
	for _, in := range []string{"foo", "bar"} {
		if !set.Match(in) {
			t.Errorf("expected %q to match", in)
		}
	}
	if set.Match("foobar") {
		t.Error("anchored sub-patterns must not match 'foobar'")
	}
}

func TestLoad_EmptyFileIsError(t *testing.T) {
	path := writeFile(t, "# only comments\n\n   \n")

	_, err := Load(path)
	if !errors.Is(err, ErrNoPatterns) {
		t.Fatalf("expected ErrNoPatterns, got %v", err)
	}
}

func TestLoad_InvalidRegex(t *testing.T) {
	path := writeFile(t, "valid.*\n[unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid regex")
	}
	if errors.Is(err, ErrNoPatterns) {
		t.Fatalf("wrong error class: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
