package notify

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tripadmin/internal/logging"
)

func TestNew_FillsIDAndDuration(t *testing.T) {
	a := New(SeveritySuccess, "Successful", "User Created")
	b := New(SeveritySuccess, "Successful", "User Created")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, DefaultDuration, a.Duration)
}

func TestLogNotifier_Show(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	n := NewLogNotifier(log, 5*time.Second)
	n.Show(New(SeverityError, "Unauthorized", "Please login to access this function"))

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=ERROR"), out)
	assert.True(t, strings.Contains(out, "summary=Unauthorized"), out)
	assert.True(t, strings.Contains(out, "duration=5s"), out)
}
