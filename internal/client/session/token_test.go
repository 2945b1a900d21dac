package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripadmin/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte(tok+"\n"), 0o600))
	return path
}

func TestLoad_MissingFileLeavesStoreEmpty(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope"), testLogger())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Subject())
	assert.False(t, s.ExpiresSoon(time.Hour))
}

func TestLoad_ReadsAndTrimsToken(t *testing.T) {
	path := writeToken(t, jwt.MapClaims{"sub": "admin@example.com"})
	s := Load(path, testLogger())

	assert.NotEmpty(t, s.Token())
	assert.NotContains(t, s.Token(), "\n")
	assert.Equal(t, "admin@example.com", s.Subject())
}

func TestExpiresSoon(t *testing.T) {
	t.Run("token expiring within window", func(t *testing.T) {
		path := writeToken(t, jwt.MapClaims{
			"sub": "admin@example.com",
			"exp": time.Now().Add(10 * time.Minute).Unix(),
		})
		s := Load(path, testLogger())
		assert.True(t, s.ExpiresSoon(time.Hour))
		assert.False(t, s.ExpiresSoon(time.Minute))
	})

	t.Run("token without exp claim never expires soon", func(t *testing.T) {
		path := writeToken(t, jwt.MapClaims{"sub": "admin@example.com"})
		s := Load(path, testLogger())
		assert.False(t, s.ExpiresSoon(time.Hour))
	})

	t.Run("garbage token is ignored", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("not-a-jwt"), 0o600))
		s := Load(path, testLogger())
		assert.False(t, s.ExpiresSoon(time.Hour))
		assert.Empty(t, s.Subject())
	})
}
