// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned by the TUI loops when the operator exits the
// program instead of logging out.
var ErrUserQuit = errors.New("user quit")

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
		return "No network or the server is unavailable"
	}

	return err.Error()
}
