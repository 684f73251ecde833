package utils

import (
	"strings"
	"unicode/utf8"
)

const minContactLength = 3

// NormalizeContact trims and lowercases an email or phone contact.
// ok is false when the result is too short to be a contact or is a malformed email.
func NormalizeContact(contact string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(contact))
	if utf8.RuneCountInString(normalized) < minContactLength {
		return normalized, false
	}
	if IsEmailContact(normalized) && !IsValidEmail(normalized) {
		return normalized, false
	}
	return normalized, true
}

// IsEmailContact reports whether a normalized contact is an email
func IsEmailContact(contact string) bool {
	return strings.Contains(contact, "@")
}

// MaskContact hides most of a contact for logging
func MaskContact(contact string) string {
	if IsEmailContact(contact) {
		return MaskEmail(contact)
	}
	return MaskPhoneNumber(contact)
}

// DisplayNameFor picks an explicit name when it has at least 2 characters,
// else the email local part, else Player-<last 4 digits>.
func DisplayNameFor(explicit, contact string) string {
	if name := strings.TrimSpace(explicit); utf8.RuneCountInString(name) >= 2 {
		return name
	}
	if IsEmailContact(contact) {
		if local, _, _ := strings.Cut(contact, "@"); local != "" {
			return local
		}
	}
	digits := nonDigitRex.ReplaceAllString(contact, "")
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	if digits == "" {
		digits = "0000"
	}
	return "Player-" + digits
}
