package validator

import "regexp"

// EmailRX is the W3C HTML5 email input pattern.
var EmailRX = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// ValidEmail reports whether email looks like a deliverable address.
func ValidEmail(email string) bool {
	return Matches(email, EmailRX)
}
