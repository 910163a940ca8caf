// Package auth provides token issuance and verification, password hashing,
// and field-level encryption for the authentication flow.
package auth
