// Package postgres provides PostgreSQL implementations of the store
// interfaces, the SQL migrations that create their schema, and the mapping
// from PostgreSQL error codes to store errors.
package postgres
