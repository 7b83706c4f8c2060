package chainmap

import "errors"

var (
	ErrKeyNotFound = errors.New("chainmap: key not found")

	// Returned as a panic value when a cursor is used after the table it
	// was taken from was rehashed or cleared, or after its entry was erased.
	ErrCursorInvalidated = errors.New("chainmap: cursor invalidated")
	ErrCursorAtEnd       = errors.New("chainmap: cursor is at end")

	ErrInvalidPolicy = errors.New("chainmap: invalid resize policy")
)
