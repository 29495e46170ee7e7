// Package repository holds the reservation and blocage stores.  Every
// store converts raw rows into model types at this boundary, so callers
// never see an unvalidated record.
package repository

import "errors"

// ErrNotFound is returned when no record matches the requested id.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
