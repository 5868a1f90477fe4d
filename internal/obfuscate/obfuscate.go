// Package obfuscate detects Unicode tricks that hide the real text of
// a shell command: zero-width characters spliced into a destructive
// flag, bidi overrides that make the displayed command differ from the
// executed one, and homoglyphs from look-alike scripts. Alongside the
// findings it produces a plain-ASCII fold of the command so the danger
// signatures can be re-run against what would actually execute.
package obfuscate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind classifies a single suspicious codepoint.
type Kind string

const (
	KindInvisible Kind = "invisible"   // zero-width chars, joiners, BOM
	KindBidi      Kind = "bidi"        // directional overrides and isolates
	KindTag       Kind = "tag"         // U+E0001..U+E007F tag characters
	KindControl   Kind = "control"     // C0/C1 controls other than \t \n \r
	KindBadUTF8   Kind = "invalid"     // undecodable byte sequence
	KindHomoglyph Kind = "homoglyph"   // Cyrillic/Greek look-alike letters
)

// Finding is one suspicious codepoint with its byte offset.
type Finding struct {
	Kind      Kind
	Codepoint string // "U+200B" spelling, or "0xNN" for invalid bytes
	Position  int
}

// Result of inspecting a command.
type Result struct {
	// Obfuscated is true when any finding was made.
	Obfuscated bool
	Findings   []Finding
	// Plain is the command with invisible/control characters removed
	// and homoglyphs folded to the Latin letters they imitate.
	Plain string
}

// Severe reports whether any finding hides or alters execution:
// everything except a bare homoglyph, which on its own may be
// legitimate non-English text.
func (r Result) Severe() bool {
	for _, f := range r.Findings {
		if f.Kind != KindHomoglyph {
			return true
		}
	}
	return false
}

// Describe summarizes the findings for a block reason or warning,
// e.g. "invisible character U+200B at offset 4".
func (r Result) Describe() string {
	if len(r.Findings) == 0 {
		return "no obfuscation"
	}
	f := r.Findings[0]
	desc := fmt.Sprintf("%s character %s at offset %d", kindNoun(f.Kind), f.Codepoint, f.Position)
	if n := len(r.Findings); n > 1 {
		desc += fmt.Sprintf(" (+%d more)", n-1)
	}
	return desc
}

func kindNoun(k Kind) string {
	switch k {
	case KindInvisible:
		return "invisible"
	case KindBidi:
		return "bidi-override"
	case KindTag:
		return "tag"
	case KindControl:
		return "control"
	case KindBadUTF8:
		return "invalid-UTF-8"
	case KindHomoglyph:
		return "homoglyph"
	}
	return string(k)
}

// Inspect scans a command for smuggled codepoints and builds its
// plain fold. ASCII-only commands come back untouched with
// Obfuscated=false.
func Inspect(command string) Result {
	var res Result
	var plain strings.Builder

	for i := 0; i < len(command); {
		r, size := utf8.DecodeRuneInString(command[i:])

		if r == utf8.RuneError && size == 1 {
			res.Findings = append(res.Findings, Finding{
				Kind:      KindBadUTF8,
				Codepoint: fmt.Sprintf("0x%02X", command[i]),
				Position:  i,
			})
			i++
			continue
		}

		if kind, ok := classify(r); ok {
			res.Findings = append(res.Findings, Finding{
				Kind:      kind,
				Codepoint: fmt.Sprintf("U+%04X", r),
				Position:  i,
			})
			if kind == KindHomoglyph {
				plain.WriteRune(latinFold(r))
			}
			// Invisible, bidi, tag and control characters are dropped
			// from the fold: the shell would not display them either.
			i += size
			continue
		}

		plain.WriteRune(r)
		i += size
	}

	res.Plain = plain.String()
	res.Obfuscated = len(res.Findings) > 0
	return res
}

func classify(r rune) (Kind, bool) {
	switch r {
	case '\u200B', // zero width space
		'\u200C', // zero width non-joiner
		'\u200D', // zero width joiner
		'\uFEFF', // BOM / zero width no-break space
		'\u2060', // word joiner
		'\u180E', // Mongolian vowel separator
		'\u200E', // left-to-right mark
		'\u200F': // right-to-left mark
		return KindInvisible, true
	case '\u202A', '\u202B', '\u202C', '\u202D', '\u202E', // embeddings and overrides
		'\u2066', '\u2067', '\u2068', '\u2069': // isolates
		return KindBidi, true
	}
	if r >= 0xE0001 && r <= 0xE007F {
		return KindTag, true
	}
	if isUnsafeControl(r) {
		return KindControl, true
	}
	if _, ok := homoglyphFold[r]; ok {
		return KindHomoglyph, true
	}
	return "", false
}

// Tab, newline and carriage return are legitimate in multi-line
// commands; every other control codepoint is not.
func isUnsafeControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return (r <= 0x1F) || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

func latinFold(r rune) rune {
	if l, ok := homoglyphFold[r]; ok {
		return l
	}
	return r
}

// homoglyphFold maps Cyrillic and Greek letters that render like
// Latin ones back to the Latin letter they imitate. Only confusable
// letters are listed; ordinary non-Latin text does not match.
var homoglyphFold = map[rune]rune{
	// Cyrillic
	'а': 'a', 'А': 'A',
	'В': 'B',
	'с': 'c', 'С': 'C',
	'е': 'e', 'Е': 'E',
	'Н': 'H',
	'і': 'i', 'І': 'I',
	'К': 'K',
	'М': 'M',
	'о': 'o', 'О': 'O',
	'р': 'p', 'Р': 'P',
	'Т': 'T',
	'х': 'x', 'Х': 'X',
	'у': 'y', 'У': 'Y',
	// Greek
	'Α': 'A', 'Β': 'B', 'Ε': 'E', 'Η': 'H', 'Ι': 'I', 'Κ': 'K',
	'Μ': 'M', 'Ν': 'N', 'Ο': 'O', 'ο': 'o', 'Ρ': 'P', 'Τ': 'T',
	'Χ': 'X', 'Υ': 'Y', 'Ζ': 'Z',
}
