package user

import "regexp"

var loginPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{2,49}$`)

// ValidLogin expects an already normalized identifier: 3 to 50 chars of
// lowercase letters, digits, dots, dashes or underscores.
func ValidLogin(s string) bool {
	return loginPattern.MatchString(s)
}
