// Package main provides the entry point for the randstr command line tool.
// It generates cryptographically secure random strings from an OS-provided
// CSPRNG, maps them onto a selectable character set, and reports the Shannon
// entropy of the result on the standard error stream so the generated string
// can be piped cleanly from standard output.
package main
