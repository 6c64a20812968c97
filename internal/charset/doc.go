// Package charset defines the fixed character sets random strings are drawn
// from. The sets are immutable data selected by a mode token at invocation.
package charset
