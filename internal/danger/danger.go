// Package danger classifies shell command strings against a fixed
// deny-list of destructive command signatures. The signatures are a
// best-effort regex approximation of shell semantics, not a parser:
// unusual quoting or encoding can evade them, and that false-negative
// risk is accepted.
package danger

import (
	"regexp"
	"strings"
)

// Result is the classification verdict for one command.
type Result struct {
	Dangerous bool
	Reason    string
}

// signature pairs a compiled pattern with the human-readable reason
// reported when it fires.
type signature struct {
	pattern *regexp.Regexp
	reason  string
}

// rmForceFlags matches the recursive+force flag combination of rm in
// every spelling: combined short flags (-rf, -fr, -rfi), separated
// short flags (-r -f), long flags (--recursive --force), and mixed
// short/long in either order.
const rmForceFlags = `(` +
	`-[a-zA-Z]*r[a-zA-Z]*f[a-zA-Z]*|` +
	`-[a-zA-Z]*f[a-zA-Z]*r[a-zA-Z]*|` +
	`-r\s+-f|-f\s+-r|` +
	`-[a-zA-Z]*r[a-zA-Z]*\s+-[a-zA-Z]*f[a-zA-Z]*|` +
	`-[a-zA-Z]*f[a-zA-Z]*\s+-[a-zA-Z]*r[a-zA-Z]*|` +
	`--recursive\s+--force|--force\s+--recursive|` +
	`--recursive\s+-f|-f\s+--recursive|` +
	`-r\s+--force|--force\s+-r|` +
	`--recursive[^|;&]*-f|-f[^|;&]*--recursive|` +
	`-r[^|;&]*--force|--force[^|;&]*-r` +
	`)`

// signatures is the ordered deny-list. Order matters: the first
// non-suppressed match determines the reported reason. Signatures
// whose terminator includes $ are multi-line so a dangerous line
// inside a multi-line command still matches at its own line end.
var signatures = []signature{
	{
		regexp.MustCompile(`(?m)\brm\s+` + rmForceFlags + `\s*(/|/\*)\s*($|;|\||&)`),
		"rm -rf targeting root filesystem (/) is extremely dangerous",
	},
	{
		regexp.MustCompile(`(?m)\brm\s+` + rmForceFlags + `\s*\./?(\s|$|;|\||&)`),
		"rm -rf targeting current directory (.) could delete critical files",
	},
	{
		regexp.MustCompile(`(?m)\brm\s+` + rmForceFlags + `\s*\.\./?(\s|$|;|\||&)`),
		"rm -rf targeting parent directory (..) could delete critical files",
	},
	{
		regexp.MustCompile(`\bsudo\s+rm\s+` + rmForceFlags + `\s+`),
		"sudo rm -rf with elevated privileges is extremely dangerous",
	},
	{
		regexp.MustCompile(`\bchmod\s+(.*\s+)?777\s+`),
		"chmod 777 makes files world-writable and executable, a security risk",
	},
	{
		regexp.MustCompile(`\bgit\s+reset\s+--hard\b`),
		"git reset --hard discards uncommitted changes permanently",
	},
	{
		regexp.MustCompile(`\bgit\s+push\s+[^;|&]*--force(-with-lease)?[^;|&]*\b(main|master)\b`),
		"git push --force to main/master can destroy shared commit history",
	},
	{
		regexp.MustCompile(`\bgit\s+push\s+[^;|&]*\b(main|master)\b[^;|&]*--force(-with-lease)?`),
		"git push --force to main/master can destroy shared commit history",
	},
	{
		regexp.MustCompile(`\bgit\s+push\s+[^;|&]*-f\s+[^;|&]*\b(main|master)\b`),
		"git push -f to main/master can destroy shared commit history",
	},
	{
		regexp.MustCompile(`\bgit\s+push\s+[^;|&]*\b(main|master)\b[^;|&]*\s+-f\b`),
		"git push -f to main/master can destroy shared commit history",
	},
	{
		regexp.MustCompile(`(?i)\bDROP\s+TABLE\b`),
		"DROP TABLE would permanently delete database table and its data",
	},
	{
		regexp.MustCompile(`(?im)\bDELETE\s+FROM\s+\w+\s*($|;|\|)`),
		"DELETE FROM without WHERE clause would delete all rows in the table",
	},
}

var (
	segmentSplit = regexp.MustCompile(`[|;&]`)

	// quotedString matches single- or double-quoted literals with
	// backslash-escaped terminators. Two alternatives instead of a
	// backreference, which RE2 does not support.
	quotedString = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)

	// echoPrefix matches an echo/printf invocation at the end of the
	// text preceding a quoted literal.
	echoPrefix = regexp.MustCompile(`(echo|printf)\s*$`)
)

// Check classifies a command string. The full command is tested first,
// then each trimmed pipe/semicolon/ampersand segment, so a signature
// spanning a compound command fires even when no single segment
// contains it. Matches that sit entirely inside an echo/printf string
// literal are suppressed: printing a dangerous command is not
// executing it.
func Check(command string) Result {
	segments := segmentSplit.Split(command, -1)

	for _, sig := range signatures {
		if span := sig.pattern.FindStringIndex(command); span != nil {
			if !insideEchoLiteral(command, span[0], span[1]) {
				return Result{Dangerous: true, Reason: sig.reason}
			}
		}

		for _, segment := range segments {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
			if span := sig.pattern.FindStringIndex(segment); span != nil {
				if !insideEchoLiteral(segment, span[0], span[1]) {
					return Result{Dangerous: true, Reason: sig.reason}
				}
			}
		}
	}

	return Result{}
}

// insideEchoLiteral reports whether the match span [start,end) lies
// entirely inside a quoted string that directly follows an echo or
// printf invocation.
func insideEchoLiteral(command string, start, end int) bool {
	for _, q := range quotedString.FindAllStringIndex(command, -1) {
		if q[0] <= start && end <= q[1] {
			prefix := strings.TrimRight(command[:q[0]], " \t\n\r")
			if echoPrefix.MatchString(prefix) {
				return true
			}
		}
	}
	return false
}
