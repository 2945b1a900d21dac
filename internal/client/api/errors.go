package api

import "errors"

var (
	// ErrUnauthorized means the remote store rejected the call as
	// unauthenticated or unauthorized.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRemote covers every other gateway failure: network faults, server
	// errors, rejected payloads. Callers only branch on the unauthorized
	// case, so the rest collapses into this one kind.
	ErrRemote = errors.New("remote store error")
)
