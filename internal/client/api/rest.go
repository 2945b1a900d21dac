package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// envelope matches the remote store's response wrapper: the payload always
// sits under "data".
type envelope[T any] struct {
	Data T `json:"data"`
}

// RESTGateway talks to one collection endpoint, e.g. {baseURL}/users.
type RESTGateway[T any] struct {
	base   string
	hc     *http.Client
	tokens TokenSource
}

// NewRESTGateway builds a gateway for the collection at base+path.
// The http.Client carries the request timeout; tokens may be nil for an
// unauthenticated gateway.
func NewRESTGateway[T any](hc *http.Client, baseURL, path string, tokens TokenSource) *RESTGateway[T] {
	return &RESTGateway[T]{
		base:   baseURL + path,
		hc:     hc,
		tokens: tokens,
	}
}

func (g *RESTGateway[T]) List(ctx context.Context) ([]T, error) {
	data, err := g.do(ctx, http.MethodGet, g.base, nil)
	if err != nil {
		return nil, err
	}

	var env envelope[[]T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding listing: %w", err)
	}
	return env.Data, nil
}

func (g *RESTGateway[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	data, err := g.do(ctx, http.MethodPost, g.base, rec)
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("decoding created record: %w", err)
	}
	return env.Data, nil
}

func (g *RESTGateway[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T

	data, err := g.do(ctx, http.MethodPut, g.itemURL(id), rec)
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("decoding updated record: %w", err)
	}
	return env.Data, nil
}

func (g *RESTGateway[T]) Delete(ctx context.Context, id string) error {
	_, err := g.do(ctx, http.MethodDelete, g.itemURL(id), nil)
	return err
}

func (g *RESTGateway[T]) itemURL(id string) string {
	return g.base + "/" + url.PathEscape(id)
}

func (g *RESTGateway[T]) do(ctx context.Context, method, u string, body any) ([]byte, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if g.tokens != nil {
		if tok := g.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemote, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrRemote, err)
	}

	if err := mapStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	return data, nil
}

// mapStatus collapses HTTP status codes into the gateway's error taxonomy.
func mapStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code >= 400:
		return fmt.Errorf("%w: status %d", ErrRemote, code)
	}
	return nil
}
