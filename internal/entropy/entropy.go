// Package entropy computes descriptive Shannon entropy statistics over a
// generated string. The numbers describe the realized output, not the
// generation algorithm: short strings diverge from the charset maximum even
// with a perfect uniform source.
package entropy

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/randstr-cli/randstr/internal/charset"
)

// Report summarizes the entropy of one generated string.
type Report struct {
	Mode        string   // long mode name, e.g. "alphanumeric"
	CharsetSize int      // number of characters in the selected charset
	Length      int      // length of the analyzed string
	Freq        [256]int // occurrence count per byte value
	Observed    float64  // observed Shannon entropy in bits per character
	Maximum     float64  // log2 of the charset size
}

// Analyze tallies the byte frequencies of s and returns its entropy report
// relative to cs. Analyze is pure: the same input always yields the same
// report.
func Analyze(s string, cs charset.Charset) Report {
	r := Report{
		Mode:        cs.DisplayName(),
		CharsetSize: cs.Size(),
		Length:      len(s),
	}

	for i := 0; i < len(s); i++ {
		r.Freq[s[i]]++
	}

	length := float64(len(s))
	for _, n := range r.Freq {
		if n == 0 {
			continue
		}
		p := float64(n) / length
		r.Observed -= p * math.Log2(p)
	}

	r.Maximum = math.Log2(float64(cs.Size()))

	return r
}

// TotalBits returns the observed entropy of the whole string.
func (r Report) TotalBits() float64 {
	return r.Observed * float64(r.Length)
}

// Efficiency returns the observed entropy as a percentage of the maximum.
// It is 0 for a degenerate single-character charset rather than NaN.
func (r Report) Efficiency() float64 {
	if r.Maximum == 0 {
		return 0
	}

	return r.Observed / r.Maximum * 100
}

// WriteTo renders the human readable report block to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	b.WriteString("\n--- Entropy Information ---\n")
	fmt.Fprintf(&b, "Mode: %s (%d characters)\n", r.Mode, r.CharsetSize)
	fmt.Fprintf(&b, "String length: %d\n", r.Length)
	fmt.Fprintf(&b, "Shannon entropy: %.2f bits/char\n", r.Observed)
	fmt.Fprintf(&b, "Maximum possible: %.2f bits/char\n", r.Maximum)
	fmt.Fprintf(&b, "Total entropy: %.2f bits\n", r.TotalBits())
	fmt.Fprintf(&b, "Efficiency: %.1f%%\n", r.Efficiency())

	n, err := io.WriteString(w, b.String())

	return int64(n), err //nolint: wrapcheck
}
