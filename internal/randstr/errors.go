package randstr

import (
	"errors"
)

var (
	// ErrLengthOutOfRange is returned when the requested length is not in
	// [1, MaxLength]. The upper bound guards against excessive allocation.
	ErrLengthOutOfRange = errors.New("length out of range")

	// ErrEmptyCharset is returned when a charset has no characters to draw
	// from, such as the zero value.
	ErrEmptyCharset = errors.New("charset is empty")
)
