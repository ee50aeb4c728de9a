package domain

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?\d{10,15}$`)
	digitRe = regexp.MustCompile(`^\d+$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// IsValidPhone reports whether s looks like a phone number
// (optional leading +, 10 to 15 digits).
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

// ContactKind classifies a free-text contact submission.
type ContactKind int

const (
	ContactInvalid ContactKind = iota
	ContactEmail
	ContactPhone
)

// ClassifyContact decides whether s is an email, a phone number, or neither.
func ClassifyContact(s string) ContactKind {
	switch {
	case IsValidEmail(s):
		return ContactEmail
	case IsValidPhone(s):
		return ContactPhone
	default:
		return ContactInvalid
	}
}

// IsSubstantiveAnswer reports whether a free-text answer carries enough
// content to be stored: at least 5 whitespace-separated tokens, at least
// 5 of which are not purely numeric. Guards against junk and placeholder
// answers like "1 2 3 4 5".
func IsSubstantiveAnswer(s string) bool {
	words := strings.Fields(s)
	if len(words) < 5 {
		return false
	}
	nonNumeric := 0
	for _, w := range words {
		if !digitRe.MatchString(w) {
			nonNumeric++
		}
	}
	return nonNumeric >= 5
}
