// Package middleware holds the request pipeline stages: panic recovery,
// tracing, request logging, the API-key gate, rate limiting, and token
// authentication and authorization. Each stage either rejects the request
// with its own status and message or passes it on unchanged.
package middleware
