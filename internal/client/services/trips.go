package services

import (
	"tripadmin/internal/client/api"
	"tripadmin/internal/client/models"
	"tripadmin/internal/client/notify"
	"tripadmin/internal/client/validation"
	"tripadmin/internal/logging"
)

// tripMessages reproduces the admin UI's toast texts for the trip pages,
// including its uniform "page" wording on mutations.
var tripMessages = Messages{
	Created:            "Trip Created",
	Updated:            "Trip Updated",
	Deleted:            "Trip Deleted",
	FetchFailed:        "An error occurred while fetching trips",
	SaveFailed:         "Error saving trip",
	DeleteFailed:       "Error deleting trip",
	UnauthorizedPage:   "Please login to access this page",
	UnauthorizedAction: "Please login to access this page",
}

// NewTripCoordinator wires the trip management flow.
func NewTripCoordinator(
	gw api.Gateway[models.Trip],
	gate *validation.Gate,
	notifier notify.Notifier,
	log logging.Logger,
) *Coordinator[models.Trip] {
	return NewCoordinator(
		"Trip", tripMessages, gw, models.EmptyTrip, gate.CheckTrip, notifier, log,
	)
}
