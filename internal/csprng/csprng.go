package csprng

import (
	"github.com/pkg/errors"
)

// Source yields cryptographically secure random bytes from the operating
// system. Fill either fills buf completely or returns an error; it never
// reports success over a partially filled buffer.
type Source interface {
	Fill(buf []byte) error
}

// New returns the entropy source for the current platform.
func New() Source {
	return newPlatformSource()
}

// Bytes returns count random bytes drawn from the platform source.
func Bytes(count int) ([]byte, error) {
	if count < 1 {
		return nil, errors.Wrapf(ErrInvalidCount, "requested %d bytes", count)
	}

	buf := make([]byte, count)
	if err := New().Fill(buf); err != nil {
		return nil, err
	}

	return buf, nil
}
