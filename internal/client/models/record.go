// Package models defines the record types managed by the admin console.
package models

// Record is implemented by every entity the console manages. The identifier
// is assigned by the remote store; a record with an empty ID has not been
// created remotely yet.
type Record interface {
	GetID() string
	// Label is the human-readable name used in prompts and notifications.
	Label() string
}
