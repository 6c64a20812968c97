//go:build linux

package csprng

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// devicePath is the secure random device used when the getrandom syscall is
// not usable.
const devicePath = "/dev/urandom"

// kernelSource reads from the kernel CSPRNG, preferring the non-blocking
// getrandom syscall and falling back to the random device.
type kernelSource struct{}

func newPlatformSource() Source {
	return kernelSource{}
}

// Fill implements Source.
func (kernelSource) Fill(buf []byte) error {
	if err := getrandom(buf); err == nil {
		return nil
	}

	// getrandom needs Linux 3.17+, older kernels land here.
	return readDevice(buf)
}

// getrandom loops until buf is full, retrying interrupted and short reads.
func getrandom(buf []byte) error {
	for filled := 0; filled < len(buf); {
		n, err := unix.Getrandom(buf[filled:], 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}

			return errors.Wrap(err, "getrandom")
		}

		filled += n
	}

	return nil
}

// readDevice fills buf from the secure random device. io.ReadFull covers
// short reads; the runtime restarts file reads interrupted by signals.
func readDevice(buf []byte) error {
	f, err := os.Open(devicePath)
	if err != nil {
		return errors.Wrapf(ErrSourceUnavailable, "open %s: %v", devicePath, err)
	}
	defer f.Close() //nolint: errcheck

	if _, err := io.ReadFull(f, buf); err != nil {
		return errors.Wrapf(ErrReadFailed, "read %s: %v", devicePath, err)
	}

	return nil
}
