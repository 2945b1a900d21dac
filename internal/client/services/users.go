package services

import (
	"tripadmin/internal/client/api"
	"tripadmin/internal/client/models"
	"tripadmin/internal/client/notify"
	"tripadmin/internal/client/validation"
	"tripadmin/internal/logging"
)

// userMessages reproduces the admin UI's toast texts for the user pages.
var userMessages = Messages{
	Created:            "User Created",
	Updated:            "User Updated",
	Deleted:            "User Deleted",
	FetchFailed:        "An error occurred while attempting to fetch users",
	SaveFailed:         "An error occurred while attempting to save user",
	DeleteFailed:       "An error occurred while attempting to delete user",
	UnauthorizedPage:   "Please login to access this page",
	UnauthorizedAction: "Please login to access this function",
}

// NewUserCoordinator wires the account management flow.
func NewUserCoordinator(
	gw api.Gateway[models.Account],
	gate *validation.Gate,
	notifier notify.Notifier,
	log logging.Logger,
) *Coordinator[models.Account] {
	return NewCoordinator(
		"User", userMessages, gw, models.EmptyAccount, gate.CheckAccount, notifier, log,
	)
}
