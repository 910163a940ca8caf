// Package domain contains the core business entities and errors of the
// forecast service: credentials and roles used by the gatekeeping
// pipeline, and the forecast resource it protects.
package domain
