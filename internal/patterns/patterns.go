// Package patterns loads regex pattern files: one pattern per line,
// blank lines and #-comments ignored. All patterns from a file are
// collapsed into a single compiled alternation.
package patterns

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrNoPatterns is returned when a pattern file contains no effective
// (non-blank, non-comment) lines. An empty pattern file is a
// configuration error, never a match-all or match-nothing set.
var ErrNoPatterns = errors.New("pattern file has no patterns")

// Set is a compiled pattern set built from a file. The combined regex
// matches if any source pattern matches.
type Set struct {
	combined *regexp.Regexp
	sources  []string
}

// Load reads a pattern file and compiles it into a Set.
//
// A single pattern is compiled verbatim so anchors keep their meaning.
// Multiple patterns are joined with non-capturing groups:
// (?:p1)|(?:p2)|...
func Load(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var sources []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPatterns, path)
	}

	combined := sources[0]
	if len(sources) > 1 {
		quoted := make([]string, len(sources))
		for i, src := range sources {
			quoted[i] = "(?:" + src + ")"
		}
		combined = strings.Join(quoted, "|")
	}

	re, err := regexp.Compile(combined)
	if err != nil {
		return nil, fmt.Errorf("invalid regex in pattern file %s: %w", path, err)
	}

	return &Set{combined: re, sources: sources}, nil
}

// Match reports whether any pattern in the set matches s.
func (s *Set) Match(in string) bool {
	return s.combined.MatchString(in)
}

// Sources returns the raw pattern lines in file order.
func (s *Set) Sources() []string {
	return s.sources
}

// Len returns the number of source patterns.
func (s *Set) Len() int {
	return len(s.sources)
}
