// Package store persists named JSON records under fixed string keys. It is
// the demo-mode stand-in for browser local storage: reads treat absent or
// malformed records as "not there", writes are best effort and never surface
// an error to the caller.
package store

import "context"

// Store đọc/ghi một bản ghi JSON theo key.
type Store interface {
	// Read unmarshals the record stored under key into target and reports
	// whether a usable record was found. On absence or malformed content the
	// target keeps whatever fallback value the caller pre-filled.
	Read(ctx context.Context, key string, target interface{}) bool

	// Write serializes value under key. Failures (quota, connectivity) are
	// logged and swallowed; demo persistence is not critical data.
	Write(ctx context.Context, key string, value interface{})

	// Delete removes the record under key, if any.
	Delete(ctx context.Context, key string)
}
