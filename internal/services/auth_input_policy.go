package services

import (
	"net/mail"
	"strings"
)

const minPasswordLength = 8

// NormalizeEmail produces the canonical form used for uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistrationInput returns an empty string when the input is
// acceptable, otherwise a caller-facing message.
func ValidateRegistrationInput(name string, email string, password string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "invalid email address"
	}
	if len(password) < minPasswordLength {
		return "password must be at least 8 characters"
	}
	return ""
}
