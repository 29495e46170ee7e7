package auth

import (
	"crypto/subtle"

	"github.com/iliyamo/villa-booking/internal/model"
)

// dummyHash keeps a failed username lookup as slow as a wrong password.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoO5pQ2E1dTn2bkC0qBqX2hKQ5Yj7D1rKa"

// Authenticator checks owner credentials against the configured Admin and
// hands out tokens.
type Authenticator struct {
	admin  model.Admin
	tokens *TokenService
}

func NewAuthenticator(admin model.Admin, tokens *TokenService) *Authenticator {
	if tokens == nil {
		panic("nil token service passed to NewAuthenticator")
	}
	return &Authenticator{admin: admin, tokens: tokens}
}

// Login returns a fresh token when username (case-sensitive) and password
// match the owner.  Any mismatch yields ErrInvalidCredentials.
func (a *Authenticator) Login(username, password string) (AccessToken, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) == 1
	hash := a.admin.PasswordHash
	if !userOK || hash == "" {
		hash = dummyHash
	}
	passOK := VerifyPassword(hash, password)
	if !userOK || !passOK || a.admin.PasswordHash == "" {
		return AccessToken{}, ErrInvalidCredentials
	}
	return a.tokens.Issue(a.admin.Username)
}

// Owner is the username every valid owner token must carry.
func (a *Authenticator) Owner() string { return a.admin.Username }

// Tokens exposes the token service for request authentication.
func (a *Authenticator) Tokens() *TokenService { return a.tokens }
