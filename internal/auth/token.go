// Package auth issues and checks owner session tokens.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an owner session lasts.
const DefaultTokenTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials is returned by Login for any username or
	// password mismatch.  It never says which one was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated covers missing, malformed and badly signed tokens.
	ErrUnauthenticated = errors.New("invalid token")
	// ErrExpired is returned for a well-signed token past its expiry.
	ErrExpired = errors.New("token expired")
)

// AccessToken is a signed JWT and the instant it stops being valid.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// TokenService signs HS256 tokens carrying the username as subject.  The
// secret is fixed for the lifetime of the service.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService.  A zero ttl means DefaultTokenTTL;
// a nil now means time.Now.
func NewTokenService(secret string, ttl time.Duration, now func() time.Time) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth: signing secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: now}, nil
}

// Issue signs a token for subject that expires ttl from now.
func (s *TokenService) Issue(subject string) (AccessToken, error) {
	if subject == "" {
		return AccessToken{}, errors.New("auth: empty subject")
	}
	issued := s.now().UTC()
	exp := issued.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign token: %w", err)
	}
	return AccessToken{Token: signed, Exp: exp.Truncate(time.Second)}, nil
}

// Validate checks signature and expiry and returns the subject.
func (s *TokenService) Validate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrUnauthenticated
	}
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrUnauthenticated
	}
	if !tok.Valid || claims.Subject == "" {
		return "", ErrUnauthenticated
	}
	return claims.Subject, nil
}
