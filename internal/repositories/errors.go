package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist. Lookups
// wrap it with the record kind and ID; callers test with errors.Is.
var ErrNotFound = errors.New("record not found")
