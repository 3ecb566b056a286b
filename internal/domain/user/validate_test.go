package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantOK  bool
		wantMsg string
	}{
		{name: "nil payload", user: nil, wantMsg: MsgUserRequired},
		{name: "blank name", user: &User{Name: "   ", Email: "a@b.co"}, wantMsg: MsgNameRequired},
		{name: "name checked before email", user: &User{Name: "", Email: ""}, wantMsg: MsgNameRequired},
		{name: "blank email", user: &User{Name: "Alice", Email: " \t"}, wantMsg: MsgEmailRequired},
		{name: "empty email", user: &User{Name: "Alice", Email: ""}, wantMsg: MsgEmailRequired},
		{name: "no dot segment", user: &User{Name: "Alice", Email: "a@b"}, wantMsg: MsgEmailInvalid},
		{name: "embedded space", user: &User{Name: "Alice", Email: "a b@c.com"}, wantMsg: MsgEmailInvalid},
		{name: "vertical tab", user: &User{Name: "Alice", Email: "a\vb@c.com"}, wantMsg: MsgEmailInvalid},
		{name: "no-break space", user: &User{Name: "Alice", Email: "a\u00a0b@c.com"}, wantMsg: MsgEmailInvalid},
		{name: "em space in domain", user: &User{Name: "Alice", Email: "a@b\u2003c.com"}, wantMsg: MsgEmailInvalid},
		{name: "next line", user: &User{Name: "Alice", Email: "a\u0085b@c.com"}, wantMsg: MsgEmailInvalid},
		{name: "double at", user: &User{Name: "Alice", Email: "a@@b.com"}, wantMsg: MsgEmailInvalid},
		{name: "missing local part", user: &User{Name: "Alice", Email: "@b.com"}, wantMsg: MsgEmailInvalid},
		{name: "shortest valid", user: &User{Name: "Alice", Email: "a@b.co"}, wantOK: true},
		{name: "subdomain", user: &User{Name: "Bob", Email: "bob@mail.techhive.com"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := Validate(tt.user)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(&User{Name: "Alice", Email: "alice@techhive.com"}))

	err := Check(&User{Name: "Alice", Email: "nope"})
	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, MsgEmailInvalid, vErr.Message)
	}
}

func TestSameEmail(t *testing.T) {
	assert.True(t, SameEmail("Alice@TechHive.com", "alice@techhive.com"))
	assert.False(t, SameEmail("alice@techhive.com", "bob@techhive.com"))
}
