// Package api handles incoming HTTP requests, request validation and
// response formatting. It acts as an adapter between external clients and
// the internal services, translating HTTP concerns to business operations.
// Gatekeeping (API key, rate limiting, token checks) happens earlier, in
// package middleware.
package api
