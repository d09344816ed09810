package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// minPasswordLength is the minimum number of characters a password must have.
const minPasswordLength = 8

// PolicyError is a password strength violation with a human-readable reason.
type PolicyError string

func (e PolicyError) Error() string { return string(e) }

// IsPolicyError reports whether err is a password policy violation.
func IsPolicyError(err error) bool {
	var pe PolicyError
	return errors.As(err, &pe)
}

// Password strength failures, one per requirement. Checks run in a fixed
// order (length, uppercase, lowercase, digit, special) and the first failing
// requirement is returned.
var (
	ErrPasswordEmpty     = PolicyError("password must not be empty")
	ErrPasswordTooShort  = PolicyError(fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	ErrPasswordUppercase = PolicyError("password must contain at least one uppercase letter")
	ErrPasswordLowercase = PolicyError("password must contain at least one lowercase letter")
	ErrPasswordDigit     = PolicyError("password must contain at least one digit")
	ErrPasswordSpecial   = PolicyError("password must contain at least one special character")
)

// Password checks the password strength policy and returns the first
// unmet requirement, or nil when the password is acceptable.
func Password(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordEmpty
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordUppercase
	case !hasLower:
		return ErrPasswordLowercase
	case !hasDigit:
		return ErrPasswordDigit
	case !hasSpecial:
		return ErrPasswordSpecial
	}
	return nil
}
