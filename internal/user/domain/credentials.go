package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"

	minPasswordLength = 8
	// MaxPasswordBytes is the longest input bcrypt hashes without truncation.
	MaxPasswordBytes = 72

	passwordSpecialCharacters = `!@#$%^&*(),.?":{}|<>`
	digits                    = "0123456789"
	lowercaseLetters          = "abcdefghijklmnopqrstuvwxyz"
	uppercaseLetters          = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrInvalidRole = errors.New("role must be either admin or user")

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

type Role string

func IsStrongPassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength &&
		len(password) <= MaxPasswordBytes &&
		strings.ContainsAny(password, digits) &&
		strings.ContainsAny(password, lowercaseLetters) &&
		strings.ContainsAny(password, uppercaseLetters) &&
		strings.ContainsAny(password, passwordSpecialCharacters)
}

func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}

// ParseRole defaults an empty role to user.
func ParseRole(role string) (Role, error) {
	if role == "" {
		return RoleUser, nil
	}

	switch r := Role(strings.ToLower(role)); r {
	case RoleAdmin, RoleUser:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}
