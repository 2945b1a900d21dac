// Package notify delivers transient user-facing outcome messages. Every
// completed or failed mutation and fetch produces exactly one toast.
package notify

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"tripadmin/internal/logging"
)

// Severity classifies a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarn    Severity = "warn"
)

// DefaultDuration is how long a toast stays visible unless overridden.
const DefaultDuration = 3 * time.Second

// Toast is one transient notification.
type Toast struct {
	ID       string
	Severity Severity
	Summary  string
	Detail   string
	Duration time.Duration
}

// New builds a toast with a fresh ID and the default duration.
func New(severity Severity, summary, detail string) Toast {
	return Toast{
		ID:       ulid.Make().String(),
		Severity: severity,
		Summary:  summary,
		Detail:   detail,
		Duration: DefaultDuration,
	}
}

// Notifier is the sink toasts are pushed into.
type Notifier interface {
	Show(t Toast)
}

// LogNotifier renders toasts through the structured logger, which is the
// console's display surface.
type LogNotifier struct {
	log      logging.Logger
	duration time.Duration
}

// NewLogNotifier builds a notifier. A zero duration keeps each toast's own
// duration.
func NewLogNotifier(log logging.Logger, duration time.Duration) *LogNotifier {
	return &LogNotifier{log: log, duration: duration}
}

func (n *LogNotifier) Show(t Toast) {
	if n.duration > 0 {
		t.Duration = n.duration
	}
	ctx := context.Background()
	args := []any{"id", t.ID, "summary", t.Summary, "detail", t.Detail, "duration", t.Duration}
	switch t.Severity {
	case SeverityError:
		n.log.Error(ctx, "toast", args...)
	case SeverityWarn:
		n.log.Warn(ctx, "toast", args...)
	default:
		n.log.Info(ctx, "toast", args...)
	}
}
