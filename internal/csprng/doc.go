// Package csprng obtains cryptographically secure random bytes from the
// operating system. Exactly one source implementation is compiled per
// platform family; callers never branch on the platform themselves.
package csprng
