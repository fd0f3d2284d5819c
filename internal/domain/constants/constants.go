// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP event publisher, for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub event publisher.
	PubSubProviderGoogle = "google"
)

// AdminChannel is the logical recipient for notifications addressed to all
// platform administrators rather than a single user.
const AdminChannel = "admin"
