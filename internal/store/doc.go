// Package store defines the persistence interfaces used by the services and
// the errors every implementation reports. Implementations live under
// internal/platform.
package store
