package alloc

import "errors"

var (
	// ErrArenaExhausted indicates the arena provider could not grow the
	// arena. The allocation had no side effects; the caller may free memory
	// and retry.
	ErrArenaExhausted = errors.New("alloc: arena exhausted")

	// ErrBadRef indicates a block reference outside the managed arena.
	ErrBadRef = errors.New("alloc: bad block reference")
)
