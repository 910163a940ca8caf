// Package memory provides in-process implementations of the store
// interfaces. They are the default backend for development and for tests
// that exercise the full request pipeline without a database. Contents are
// lost on restart.
package memory
