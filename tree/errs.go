package tree

import "errors"

var (
	// ErrAlloc reports that a children slice or the index could not grow
	// within the configured limits.
	ErrAlloc = errors.New("allocation failed")

	// ErrIndex reports a numeric key which cannot address a slot.
	ErrIndex = errors.New("index out of range")

	// ErrSlotTaken reports that the slot for a new node is held by a
	// sibling with a different key.
	ErrSlotTaken = errors.New("slot taken")
)
