// Package validator provides pure validation helpers for user input.
package validator

import "regexp"

// emailPattern requires a local part without spaces or extra '@', followed by
// at least two non-empty domain labels. "user@.com" and "user@host" fail.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@.]+(\.[^\s@.]+)+$`)

// IsEmail reports whether s looks like a valid email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
