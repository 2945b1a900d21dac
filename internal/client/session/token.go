// Package session holds the bearer token the console attaches to remote
// calls. Token acquisition (the login flow) happens outside the console;
// this package only loads what is already on disk and inspects its claims
// for display. The server stays the authority on whether a token is valid.
package session

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tripadmin/internal/logging"
)

type Store struct {
	token string
	log   logging.Logger
}

// Load reads the token file at path. A missing or unreadable file leaves the
// store empty: requests then go out unauthenticated and the remote store's
// 401 drives the user feedback.
func Load(path string, log logging.Logger) *Store {
	s := &Store{log: log}
	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn(context.Background(), "no session token loaded", "path", path, "error", err)
		return s
	}

	s.token = strings.TrimSpace(string(data))
	return s
}

// Token returns the raw bearer token, or "" when none is loaded.
func (s *Store) Token() string {
	return s.token
}

// Subject returns the token's subject claim for prompt display.
func (s *Store) Subject() string {
	claims := s.claims()
	if claims == nil {
		return ""
	}
	sub, _ := claims.GetSubject()
	return sub
}

// ExpiresSoon reports whether the token expires within the given window.
// Used to warn on startup; expired tokens are not refused locally.
func (s *Store) ExpiresSoon(within time.Duration) bool {
	claims := s.claims()
	if claims == nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Until(exp.Time) < within
}

// claims parses the token without verifying the signature. Display-only.
func (s *Store) claims() jwt.MapClaims {
	if s.token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return nil
	}
	return claims
}
