//go:build !linux

package csprng

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// apiSource reads from the OS-native secure random API through
// crypto/rand.Reader (ProcessPrng on Windows, getentropy and friends on the
// BSD family and macOS). There is no non-cryptographic fallback.
type apiSource struct{}

func newPlatformSource() Source {
	return apiSource{}
}

// Fill implements Source.
func (apiSource) Fill(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return errors.Wrapf(ErrReadFailed, "crypto/rand: %v", err)
	}

	return nil
}
