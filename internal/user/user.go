// Package user resolves who is acting on boards from the CLI.
package user

import (
	"os"
	"os/user"

	"github.com/thenoetrevino/boardly/internal/types"
)

// Current returns the acting user. BOARDLY_USER wins, so scripts and tests
// can act as someone else; otherwise it is the system username.
func Current() types.UserID {
	if id := os.Getenv("BOARDLY_USER"); id != "" {
		return types.UserID(id)
	}
	return types.UserID(GetCurrentUsername())
}

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
