package csprng

import (
	"errors"
)

var (
	// ErrInvalidCount is returned when the requested byte count is not positive.
	ErrInvalidCount = errors.New("byte count must be positive")

	// ErrSourceUnavailable is returned when the OS random source can not be opened.
	ErrSourceUnavailable = errors.New("secure random source unavailable")

	// ErrReadFailed is returned when reading from the OS random source fails.
	ErrReadFailed = errors.New("secure random source read failed")
)
