// Package constants holds enumerations read from configuration.
package constants

// Supported event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
