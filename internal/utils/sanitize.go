package utils

import "regexp"

// Patterns for secret-looking substrings that must never appear in logged
// or returned error messages: key=value style password/token assignments
// and compact JWT serializations.
var (
	secretAssignment = regexp.MustCompile(`(?i)(password|passwd|pwd|token|secret|authorization)(["']?\s*[:=]\s*)(\S+)`)
	jwtLike          = regexp.MustCompile(`\beyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\b`)
)

// Sanitize redacts password- and token-like substrings from a message so
// that an unclassified error can be logged and returned without leaking
// credentials that a driver or client library may have embedded in it.
func Sanitize(message string) string {
	message = secretAssignment.ReplaceAllString(message, "$1$2[REDACTED]")
	message = jwtLike.ReplaceAllString(message, "[REDACTED]")
	return message
}
