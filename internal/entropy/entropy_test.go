package entropy_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randstr-cli/randstr/internal/charset"
	"github.com/randstr-cli/randstr/internal/entropy"
	"github.com/randstr-cli/randstr/internal/randstr"
)

func TestAnalyzeKnownDistributions(t *testing.T) {
	// A single repeated character carries no information.
	r := entropy.Analyze("aaaa", charset.Alnum)
	assert.InDelta(t, 0, r.Observed, 1e-12)

	// Two equally likely characters carry exactly one bit each.
	r = entropy.Analyze("ab", charset.Alnum)
	assert.InDelta(t, 1, r.Observed, 1e-12)

	r = entropy.Analyze("abab", charset.Alnum)
	assert.InDelta(t, 1, r.Observed, 1e-12)
}

func TestAnalyzeFrequencies(t *testing.T) {
	r := entropy.Analyze("aab", charset.Alnum)

	assert.Equal(t, 3, r.Length)
	assert.Equal(t, 2, r.Freq['a'])
	assert.Equal(t, 1, r.Freq['b'])
	assert.Equal(t, 0, r.Freq['c'])
}

func TestAnalyzeMaximumFollowsCharset(t *testing.T) {
	assert.InDelta(t, math.Log2(float64(charset.Full.Size())),
		entropy.Analyze("x", charset.Full).Maximum, 1e-12)
	assert.InDelta(t, math.Log2(float64(charset.Num.Size())),
		entropy.Analyze("x", charset.Num).Maximum, 1e-12)
}

func TestObservedNeverExceedsMaximum(t *testing.T) {
	for _, cs := range []charset.Charset{charset.Full, charset.Alnum, charset.Num} {
		s, err := randstr.Generate(10000, cs)
		require.NoError(t, err)

		r := entropy.Analyze(s, cs)
		assert.LessOrEqualf(t, r.Observed, r.Maximum+1e-9,
			"observed entropy above maximum for charset %s", cs.Name())
	}
}

func TestAnalyzeIsPure(t *testing.T) {
	s, err := randstr.Generate(64, charset.Full)
	require.NoError(t, err)

	assert.Equal(t, entropy.Analyze(s, charset.Full), entropy.Analyze(s, charset.Full))
}

func TestEfficiencyWithDegenerateMaximum(t *testing.T) {
	r := entropy.Report{Observed: 0, Maximum: 0}

	assert.Equal(t, 0.0, r.Efficiency())
}

func TestReportWriteTo(t *testing.T) {
	r := entropy.Report{
		Mode:        "numeric",
		CharsetSize: 10,
		Length:      4,
		Observed:    2,
		Maximum:     math.Log2(10),
	}

	var b strings.Builder
	n, err := r.WriteTo(&b)
	require.NoError(t, err)

	expected := "\n--- Entropy Information ---\n" +
		"Mode: numeric (10 characters)\n" +
		"String length: 4\n" +
		"Shannon entropy: 2.00 bits/char\n" +
		"Maximum possible: 3.32 bits/char\n" +
		"Total entropy: 8.00 bits\n" +
		"Efficiency: 60.2%\n"

	assert.Equal(t, expected, b.String())
	assert.Equal(t, int64(len(expected)), n)
}
