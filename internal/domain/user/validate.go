package user

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern only knows ASCII whitespace; Validate rejects any Unicode space
// before matching.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	MsgUserRequired  = "User data is required."
	MsgNameRequired  = "Name is required."
	MsgEmailRequired = "Email is required."
	MsgEmailInvalid  = "Valid email is required."
)

// ValidationError carries the first rule a payload violated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the rules in order and reports the first one that fails.
func Validate(u *User) (bool, string) {
	switch {
	case u == nil:
		return false, MsgUserRequired
	case strings.TrimSpace(u.Name) == "":
		return false, MsgNameRequired
	case strings.TrimSpace(u.Email) == "":
		return false, MsgEmailRequired
	case strings.IndexFunc(u.Email, unicode.IsSpace) >= 0, !emailPattern.MatchString(u.Email):
		return false, MsgEmailInvalid
	}
	return true, ""
}

// Check is Validate in error form.
func Check(u *User) error {
	if ok, msg := Validate(u); !ok {
		return &ValidationError{Message: msg}
	}
	return nil
}
