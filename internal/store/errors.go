package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already taken")
