package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripadmin/internal/client/models"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newGateway(t *testing.T, handler http.Handler) (*RESTGateway[models.Account], *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	gw := NewRESTGateway[models.Account](srv.Client(), srv.URL, "/users", staticTokens("tok-123"))
	return gw, srv
}

func TestList_DecodesEnvelope(t *testing.T) {
	var gotPath, gotAuth, gotReqID string
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []models.Account{
				{ID: "u1", Name: "alice", Email: "a@example.com", Role: models.RoleAdmin},
				{ID: "u2", Name: "bob", Email: "b@example.com", Role: models.RoleUser},
			},
		})
	}))

	got, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestCreate_PostsRecordAndDecodesEnvelope(t *testing.T) {
	var gotMethod string
	var gotBody models.Account
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		created := gotBody
		created.ID = "u9"
		created.Password = ""
		created.PasswordConfirm = ""
		_ = json.NewEncoder(w).Encode(map[string]any{"data": created})
	}))

	rec := models.Account{Name: "carol", Email: "c@example.com", Role: models.RoleUser, Password: "pw", PasswordConfirm: "pw"}
	got, err := gw.Create(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "carol", gotBody.Name)
	assert.Equal(t, "pw", gotBody.Password)
	assert.Equal(t, "u9", got.ID)
}

func TestUpdate_PutsToItemURL(t *testing.T) {
	var gotMethod, gotPath string
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		var rec models.Account
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": rec})
	}))

	rec := models.Account{ID: "u1", Name: "alice", Email: "a@example.com", Role: models.RoleAdmin}
	got, err := gw.Update(context.Background(), rec.ID, rec)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/users/u1", gotPath)
	assert.Equal(t, "alice", got.Name)
}

func TestDelete_IssuesDelete(t *testing.T) {
	var gotMethod, gotPath string
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, gw.Delete(context.Background(), "u1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/users/u1", gotPath)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantUnauth  bool
		wantGeneric bool
	}{
		{name: "401 maps to unauthorized", status: http.StatusUnauthorized, wantUnauth: true},
		{name: "403 maps to unauthorized", status: http.StatusForbidden, wantUnauth: true},
		{name: "500 maps to generic remote error", status: http.StatusInternalServerError, wantGeneric: true},
		{name: "422 maps to generic remote error", status: http.StatusUnprocessableEntity, wantGeneric: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := gw.List(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantUnauth, errors.Is(err, ErrUnauthorized))
			assert.Equal(t, tt.wantGeneric, errors.Is(err, ErrRemote))
		})
	}
}

func TestDo_NetworkFailureIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	gw := NewRESTGateway[models.Account](srv.Client(), srv.URL, "/users", nil)
	srv.Close()

	_, err := gw.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemote))
}
