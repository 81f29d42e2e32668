package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when a user insert violates the unique email constraint.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrUnsupportedDriver is returned by Open for a driver name it does not know.
var ErrUnsupportedDriver = errors.New("unsupported database driver")
