package repository

import "errors"

// ErrDuplicate is returned when a unique column (users.email) already holds
// the value being inserted.
var ErrDuplicate = errors.New("duplicate")

// ErrNotFound is returned by mutations whose target row does not exist.
// Lookups return nil, nil instead.
var ErrNotFound = errors.New("not found")
