// Package constants holds shared provider name constants.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// GeoIndexProviderPostgres answers radius queries with PostGIS.
	GeoIndexProviderPostgres = "postgres"
	// GeoIndexProviderMemory answers radius queries with an in-process grid index.
	GeoIndexProviderMemory = "memory"
)
