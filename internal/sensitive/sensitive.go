// Package sensitive classifies file paths against a fixed deny-list of
// credential and secret file signatures, optionally extended by a
// caller-supplied pattern file.
package sensitive

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/askeland/hookgate/internal/normalize"
)

// Result is the classification verdict for one path.
type Result struct {
	Sensitive bool
	Reason    string
}

// Pattern pairs a compiled regex with the description reported when it
// matches.
type Pattern struct {
	Regexp      *regexp.Regexp
	Description string
}

// builtins is the ordered built-in signature list. Order matters: the
// first matching signature supplies the reported description, and
// built-ins always run before caller-supplied extras.
var builtins = []Pattern{
	{regexp.MustCompile(`(^|/|\\)\.env$`), "Environment file (.env)"},
	{regexp.MustCompile(`(^|/|\\)\.env\.[a-zA-Z0-9_-]+$`), "Environment file (.env.*)"},
	{regexp.MustCompile(`(^|/|\\)\.ssh(/|\\|$)`), "SSH directory (~/.ssh/)"},
	{regexp.MustCompile(`(^|/|\\)\.aws(/|\\|$)`), "AWS credentials directory (~/.aws/)"},
	{regexp.MustCompile(`(^|/|\\)\.gnupg(/|\\|$)`), "GPG directory (~/.gnupg/)"},
	{regexp.MustCompile(`(?i)credentials`), "File containing 'credentials'"},
	{regexp.MustCompile(`(?i)secrets`), "File containing 'secrets'"},
	{regexp.MustCompile(`(?i)\.pem$`), "PEM certificate/key file (*.pem)"},
	{regexp.MustCompile(`(?i)\.key$`), "Key file (*.key)"},
	{regexp.MustCompile(`(^|/|\\)id_rsa$`), "RSA private key (id_rsa)"},
	{regexp.MustCompile(`(^|/|\\)id_ed25519$`), "Ed25519 private key (id_ed25519)"},
	{regexp.MustCompile(`(^|/|\\)id_ecdsa$`), "ECDSA private key (id_ecdsa)"},
	{regexp.MustCompile(`(^|/|\\)\.netrc$`), "Netrc credentials file (.netrc)"},
	{regexp.MustCompile(`(^|/|\\)\.npmrc$`), "NPM config file (.npmrc) - may contain tokens"},
	{regexp.MustCompile(`(^|/|\\)\.pypirc$`), "PyPI config file (.pypirc) - may contain tokens"},
}

// Check classifies a path against the built-in signatures only.
func Check(path string) Result {
	return check(path, builtins)
}

// CheckWithExtra classifies a path against the built-in signatures
// first, then against caller-supplied extras in their given order.
func CheckWithExtra(path string, extra []Pattern) Result {
	if res := check(path, builtins); res.Sensitive {
		return res
	}
	if len(extra) > 0 {
		return check(path, extra)
	}
	return Result{}
}

// MatchesBareWord reports whether a bare command token matches a
// built-in signature, without any path normalization. Used by command
// tokenization to keep "cat id_rsa" in scope.
func MatchesBareWord(token string) bool {
	for _, p := range builtins {
		if p.Regexp.MatchString(token) {
			return true
		}
	}
	return false
}

func check(path string, pats []Pattern) Result {
	for _, candidate := range candidates(path) {
		for _, p := range pats {
			if p.Regexp.MatchString(candidate) {
				return Result{Sensitive: true, Reason: p.Description}
			}
		}
	}
	return Result{}
}

// candidates expands a path into its normalized variants, plus the
// tilde-expanded form and its resolved real path for ~-prefixed input.
// A symlink pointing at ~/.ssh must not hide behind its link name.
func candidates(path string) []string {
	list := normalize.Variants(path)

	if strings.HasPrefix(path, "~") {
		expanded := normalize.ExpandTilde(path)
		list = append(list, expanded)
		if real, err := filepath.EvalSymlinks(expanded); err == nil && real != expanded {
			list = append(list, real)
		}
	}

	return list
}

// LoadExtra reads a caller-supplied pattern file: one regex per line,
// blank lines and #-comments ignored. Every loaded pattern reports a
// synthetic "Custom pattern" description carrying its raw source.
//
// Loading is best-effort: a missing or unreadable file, or a line that
// fails to compile, is reported through warnf and skipped. A nil (or
// empty) result means no extra patterns.
func LoadExtra(path string, warnf func(format string, args ...any)) []Pattern {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	file, err := os.Open(path)
	if err != nil {
		warnf("patterns file not usable: %v", err)
		return nil
	}
	defer file.Close()

	var extra []Pattern
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		re, err := regexp.Compile(line)
		if err != nil {
			warnf("invalid regex in patterns file: %s (%v)", line, err)
			continue
		}
		extra = append(extra, Pattern{
			Regexp:      re,
			Description: fmt.Sprintf("Custom pattern: %s", line),
		})
	}
	if err := scanner.Err(); err != nil {
		warnf("error reading patterns file: %v", err)
	}

	return extra
}
