package user

import "strings"

// User is the single resource served by the API.
// JSON field names keep the capitalised shape existing clients already consume.
type User struct {
	ID    int    `json:"Id"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
}

// SameEmail compares emails the way uniqueness is enforced: case-insensitively.
func SameEmail(a, b string) bool {
	return strings.EqualFold(a, b)
}
