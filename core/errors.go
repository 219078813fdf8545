package core

import "errors"

var (
	// ErrKeyNotFound is returned by Remove when the key has no live entry.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptLog is returned when a log record fails to decode, either
	// during replay at open time or on a positional read.
	ErrCorruptLog = errors.New("corrupt log record")

	// ErrStoreClosed is returned by any operation on a closed store.
	ErrStoreClosed = errors.New("store is closed")
)
