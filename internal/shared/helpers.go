// Package shared provides small helpers used across the tfgpu packages.
package shared

import (
	"fmt"
	"strings"
)

// NameToken returns the dependency name of a conda dependency string:
// everything before the first space, or the whole string.
func NameToken(dep string) string {
	if idx := strings.IndexByte(dep, ' '); idx >= 0 {
		return dep[:idx]
	}
	return dep
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	message := strings.TrimSpace(string(output))
	if message == "" {
		return err
	}
	return fmt.Errorf("%s: %w", message, err)
}
