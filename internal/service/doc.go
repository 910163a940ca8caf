// Package service contains the application use cases: registering and
// authenticating users, and reading and writing forecasts.
//
// Services receive their collaborators (stores, hashers, token issuers)
// through constructors and never depend on a concrete storage backend.
// Expected failures are returned as sentinel errors that the API layer maps
// to status codes; anything else is wrapped in a ServiceError and surfaces
// as an internal error.
package service
