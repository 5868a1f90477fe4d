// Package normalize expands a path string into the ordered list of
// equivalent spellings a deny-list has to consider: the original form,
// the ./-stripped form, relative/absolute conversions, tilde expansion,
// and the symlink-resolved real path.
package normalize

import (
	"os"
	"path/filepath"
	"strings"
)

// Variants returns the candidate spellings for path, deduplicated with
// first-seen order preserved. The first element is always the original
// input. Resolution failures (broken symlinks, unrelated roots) drop
// the affected variant rather than failing the whole expansion.
func Variants(path string) []string {
	candidates := []string{path}

	if strings.HasPrefix(path, "./") {
		candidates = append(candidates, path[2:])
	}

	if filepath.IsAbs(path) {
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, path); err == nil {
				candidates = append(candidates, rel)
			}
		}
	}

	if strings.HasPrefix(path, "~") {
		expanded := ExpandTilde(path)
		candidates = append(candidates, expanded)
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, expanded); err == nil {
				candidates = append(candidates, rel)
			}
		}
	}

	if real, err := filepath.EvalSymlinks(path); err == nil && real != path {
		candidates = append(candidates, real)
	}

	return uniqueStrings(candidates)
}

// ExpandTilde replaces a leading ~ or ~/ with the user's home
// directory. Paths without a tilde (and ~user forms, which we do not
// resolve) come back unchanged when no expansion applies.
func ExpandTilde(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func uniqueStrings(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(input))
	for _, s := range input {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}
