package randstr

import (
	"math"

	"github.com/pkg/errors"

	"github.com/randstr-cli/randstr/internal/charset"
	"github.com/randstr-cli/randstr/internal/csprng"
)

// MaxLength is the safety ceiling for a single generated string. It bounds
// buffer allocation and carries no other meaning.
const MaxLength = 1_000_000

// Generate returns a random string of length characters drawn from cs.
//
// Each output character is cs.Byte(b mod cs.Size()) for one random byte b.
// Whenever cs.Size() does not divide 256 evenly, the first 256 mod cs.Size()
// characters of the set are very slightly more likely than the rest. That
// modulo bias is accepted and left measurable through the entropy report;
// GenerateUniform removes it at the cost of a redraw loop.
func Generate(length int, cs charset.Charset) (string, error) {
	if length < 1 || length > MaxLength {
		return "", errors.Wrapf(ErrLengthOutOfRange, "length %d", length)
	}

	if cs.Size() < 1 {
		return "", ErrEmptyCharset
	}

	buf, err := csprng.Bytes(length)
	if err != nil {
		return "", err
	}

	size := cs.Size()
	for i, b := range buf {
		buf[i] = cs.Byte(int(b) % size)
	}

	return string(buf), nil
}

const (
	// maxBufLen caps a single draw from the entropy source.
	maxBufLen = 2048

	// minRegenBufLen is the smallest top-up request after a pass that
	// rejected some bytes. If the initial buffer is smaller, it is ignored.
	minRegenBufLen = 16

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// estimatedBufLen returns the estimated number of random bytes to request
// given that byte values greater than maxByte will be rejected.
func estimatedBufLen(need, maxByte int) int {
	return int(math.Ceil(float64(need) * (maxByteValue / float64(maxByte))))
}

// GenerateUniform returns a random string of length characters drawn from cs
// with an exactly uniform per-character distribution. Random bytes that fall
// in the truncated remainder range at the top of the byte space are redrawn
// instead of wrapped, which removes the modulo bias of Generate.
func GenerateUniform(length int, cs charset.Charset) (string, error) {
	if length < 1 || length > MaxLength {
		return "", errors.Wrapf(ErrLengthOutOfRange, "length %d", length)
	}

	if cs.Size() < 1 {
		return "", ErrEmptyCharset
	}

	size := cs.Size()
	maxRb := maxByteValue - byteRange%size

	bufLen := estimatedBufLen(length, maxRb)
	if bufLen < length {
		bufLen = length
	}

	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	src := csprng.New()
	buf := make([]byte, bufLen) // storage for random bytes
	out := make([]byte, length) // storage for result

	var i int // index in out
	for {
		if err := src.Fill(buf[:bufLen]); err != nil {
			return "", err
		}

		for _, rb := range buf[:bufLen] {
			c := int(rb)
			if c > maxRb {
				// Skip this number to avoid modulo bias.
				continue
			}
			out[i] = cs.Byte(c % size)
			i++
			if i == length {
				return string(out), nil
			}
		}

		// Adjust new requested length, but no smaller than minRegenBufLen.
		bufLen = estimatedBufLen(length-i, maxRb)
		if bufLen < minRegenBufLen && minRegenBufLen < cap(buf) {
			bufLen = minRegenBufLen
		}
		if bufLen > maxBufLen {
			bufLen = maxBufLen
		}
	}
}
