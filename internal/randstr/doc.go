// Package randstr maps cryptographically secure random bytes onto a charset
// to produce random strings with configurable length and character set.
package randstr
