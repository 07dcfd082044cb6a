package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the daemon for its REST API.
//
// It embeds [jwt.Token] for signing and claim inspection. SignedString holds
// the compact serialized form sent in the Authorization header. Subject is a
// parsed copy of the "sub" claim, identifying the operator the token was
// issued to.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	Subject      string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
