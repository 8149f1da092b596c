// Package cache: sentinel error set.
package cache

import "errors"

var (
	// ErrKeyMissing is returned by Get and Delete when the queried
	// Configuration has no stored Outcome. Callers should guard with
	// Contains before calling Get if they cannot tolerate the error.
	ErrKeyMissing = errors.New("cache: configuration not found")

	// ErrInputMismatch is returned by Get, Put and Delete when a
	// Configuration bound to a different Input than the cache has already
	// seen is used to query or mutate the cache. Contains reports false
	// for such a Configuration.
	ErrInputMismatch = errors.New("cache: configuration input does not match cache input")
)
