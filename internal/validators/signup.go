package validators

import (
	"regexp"
	"strings"
)

// Validation mirrors what the signup forms check before any state mutation:
// required fields, email shape, password length and confirmation. Errors are
// single human-readable messages; the first failing rule wins and nothing is
// partially applied.

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const MinPasswordLength = 6

func IsEmailValid(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// CheckPassword validates the password/confirmation pair. Returns an empty
// string when valid, otherwise the message to surface.
func CheckPassword(password, confirm string) string {
	if len(password) < MinPasswordLength {
		return "Password must be at least 6 characters"
	}
	if password != confirm {
		return "Passwords do not match"
	}
	return ""
}

// NormalizeEmail lowercases and trims, the canonical form used for the
// case-insensitive uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
