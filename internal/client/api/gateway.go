// Package api is the boundary to the remote REST store. It issues CRUD
// calls, unwraps the response envelope, and collapses failures into a
// three-way outcome: success, unauthorized, or a generic remote error.
package api

import "context"

// Gateway issues CRUD calls for one entity type. Implementations are leaf
// components and hold no record state.
type Gateway[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// TokenSource supplies the bearer token attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}
