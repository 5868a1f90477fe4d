// Package redact scrubs secret material from strings before they are
// written to the audit log. Commands handed to a hook routinely embed
// tokens ("curl -H 'Authorization: Bearer ...'"), and an audit trail
// must not become a second copy of them.
package redact

import "regexp"

var secretPatterns = []*regexp.Regexp{
	// AWS
	regexp.MustCompile(`(?i)(aws_access_key_id|aws_secret_access_key|aws_session_token)\s*[=:]\s*['"]?[A-Za-z0-9/+=]{20,}['"]?`),
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),

	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36}`),
	regexp.MustCompile(`(?i)(github_token|gh_token|github_pat)\s*[=:]\s*['"]?[A-Za-z0-9_-]{30,}['"]?`),

	// Generic API keys and passwords in key=value form
	regexp.MustCompile(`(?i)(api_key|apikey|api-key|secret_key|access_token|auth_token)\s*[=:]\s*['"]?[A-Za-z0-9_-]{16,}['"]?`),
	regexp.MustCompile(`(?i)(password|passwd|pwd|secret)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`),

	// Bearer tokens and basic auth in URLs
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_.-]{20,}`),
	regexp.MustCompile(`https?://[^:/\s]+:[^@\s]+@`),

	// Private key material
	regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`),
}

const placeholder = "[REDACTED]"

// String replaces recognized secret material in s with a placeholder.
func String(s string) string {
	result := s
	for _, pattern := range secretPatterns {
		result = pattern.ReplaceAllString(result, placeholder)
	}
	return result
}

// Strings redacts every element of a slice, returning a new slice.
func Strings(in []string) []string {
	result := make([]string, len(in))
	for i, s := range in {
		result[i] = String(s)
	}
	return result
}
