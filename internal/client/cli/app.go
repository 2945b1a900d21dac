package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"tripadmin/internal/client/api"
	"tripadmin/internal/client/config"
	"tripadmin/internal/client/models"
	"tripadmin/internal/client/notify"
	"tripadmin/internal/client/services"
	"tripadmin/internal/client/session"
	"tripadmin/internal/client/validation"
	"tripadmin/internal/logging"
)

// Collection identifies which entity listing the console is showing.
type Collection string

const (
	CollectionUsers Collection = "users"
	CollectionTrips Collection = "trips"
)

// App wires the console together: one coordinator per entity type, sharing a
// session token, a validation gate, and a toast sink.
type App struct {
	config     *config.Config
	log        logging.Logger
	session    *session.Store
	users      *services.Coordinator[models.Account]
	trips      *services.Coordinator[models.Trip]
	reader     *bufio.Reader
	out        io.Writer
	collection Collection
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	gate, err := validation.NewGate()
	if err != nil {
		return nil, err
	}

	sess := session.Load(c.TokenFile, log)
	hc := &http.Client{Timeout: c.RequestTimeout}
	notifier := notify.NewLogNotifier(log, c.ToastDuration)

	userGw := api.NewRESTGateway[models.Account](hc, c.BaseURL, "/users", sess)
	tripGw := api.NewRESTGateway[models.Trip](hc, c.BaseURL, "/trips", sess)

	return &App{
		config:     c,
		log:        log,
		session:    sess,
		users:      services.NewUserCoordinator(userGw, gate, notifier, log),
		trips:      services.NewTripCoordinator(tripGw, gate, notifier, log),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		collection: CollectionTrips,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if a.session.Token() == "" {
		a.log.Warn(ctx, "no session token; requests will go out unauthenticated")
	} else if a.session.ExpiresSoon(time.Minute) {
		a.log.Warn(ctx, "session token expires soon", "subject", a.session.Subject())
	}
	a.Root(ctx)
}
