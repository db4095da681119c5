package usecase

import "errors"

// ErrNotFound is returned, wrapped, when the room or booking an operation
// refers to does not exist.
var ErrNotFound = errors.New("not found")
