package tui

import (
	"errors"
	"strings"
)

var ErrUserQuit = errors.New("user quit")

// humanizeServerUnavailableError collapses the zoo of transport-level
// failure strings into one readable message; anything else passes through.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unreachable"
	}

	return err.Error()
}
