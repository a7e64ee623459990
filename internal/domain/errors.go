package domain

import "errors"

// ErrStoreNotFound indicates that the target database file does not exist.
var ErrStoreNotFound = errors.New("database file not found")

// ErrInvalidConfig indicates that configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")
