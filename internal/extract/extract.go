// Package extract pulls path candidates out of tool invocations: the
// structured payload of file-oriented tools, or the raw command string
// of a Bash tool call.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// maxDepth bounds the recursive payload walk so pathological nesting
// cannot blow the stack. Extraction stops quietly at the limit.
const maxDepth = 32

var errTooDeep = errors.New("payload nesting too deep")

// pathKeys are the payload keys whose string values are treated as
// file paths, compared case-insensitively.
var pathKeys = map[string]bool{
	"file_path":   true,
	"filepath":    true,
	"path":        true,
	"target_file": true,
	"filename":    true,
	"file":        true,
}

// Paths walks a raw JSON payload and collects string values stored
// under recognized path keys. The walk runs over the token stream
// rather than a decoded map so that candidates come back in document
// order, which downstream first-match semantics rely on. Recursion
// descends into every object and array regardless of key, so paths
// nested under unrelated keys (a list of edits, say) are still found.
// The result is deduplicated preserving first-seen order.
func Paths(raw []byte) []string {
	var results []string
	dec := json.NewDecoder(bytes.NewReader(raw))
	// Malformed or over-deep input yields whatever was collected
	// before the walk stopped.
	_ = walk(dec, "", &results, 0)
	return uniqueStrings(results)
}

func walk(dec *json.Decoder, key string, results *[]string, depth int) error {
	if depth >= maxDepth {
		return errTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return err
				}
				childKey, _ := keyTok.(string)
				if err := walk(dec, childKey, results, depth+1); err != nil {
					return err
				}
			}
			_, err = dec.Token()
			return err
		case '[':
			for dec.More() {
				if err := walk(dec, "", results, depth+1); err != nil {
					return err
				}
			}
			_, err = dec.Token()
			return err
		}
	case string:
		if key != "" && pathKeys[strings.ToLower(key)] {
			*results = append(*results, t)
		}
	}

	return nil
}

// CommandPaths tokenizes a shell command and returns the tokens that
// look like file paths. Flags are skipped. A non-flag token qualifies
// when it carries a path separator or a ~/./$ prefix, or when the
// caller-supplied predicate flags it as a sensitive bare word ("cat
// id_rsa" has no separator but still names a key file). The predicate
// may be nil. Output is deduplicated preserving first-seen order.
func CommandPaths(command string, bareWord func(string) bool) []string {
	var paths []string

	for _, token := range splitTokens(command) {
		if strings.HasPrefix(token, "-") {
			continue
		}

		if strings.ContainsAny(token, `/\`) ||
			strings.HasPrefix(token, "~") ||
			strings.HasPrefix(token, ".") ||
			strings.HasPrefix(token, "$") {
			paths = append(paths, token)
		} else if bareWord != nil && bareWord(token) {
			paths = append(paths, token)
		}
	}

	return uniqueStrings(paths)
}

// splitTokens lexes a command with shell quoting rules so that quoted
// substrings stay single tokens. Lexing failures (unbalanced quotes)
// fall back to naive whitespace splitting rather than failing the
// extraction.
func splitTokens(command string) []string {
	var tokens []string
	src := strings.NewReader(command)
	err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Words(src, func(w *syntax.Word) bool {
		tokens = append(tokens, wordLiteral(w))
		return true
	})
	if err != nil {
		return strings.Fields(command)
	}
	return tokens
}

// wordLiteral flattens a parsed word back into its literal text,
// dropping the surrounding quotes but keeping the quoted content
// intact. Parameter expansions and substitutions keep their source
// spelling so that "$HOME/.ssh" survives as a candidate.
func wordLiteral(w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		appendPartLiteral(&sb, part)
	}
	return sb.String()
}

func appendPartLiteral(sb *strings.Builder, part syntax.WordPart) {
	switch p := part.(type) {
	case *syntax.Lit:
		sb.WriteString(p.Value)
	case *syntax.SglQuoted:
		sb.WriteString(p.Value)
	case *syntax.DblQuoted:
		for _, inner := range p.Parts {
			appendPartLiteral(sb, inner)
		}
	case *syntax.ParamExp:
		sb.WriteString("$" + p.Param.Value)
	default:
		// Command substitutions and arithmetic keep their raw text.
		var buf strings.Builder
		if err := syntax.NewPrinter().Print(&buf, part); err == nil {
			sb.WriteString(buf.String())
		}
	}
}

// Dedupe removes duplicates from a candidate list, preserving
// first-seen order.
func Dedupe(input []string) []string {
	return uniqueStrings(input)
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
