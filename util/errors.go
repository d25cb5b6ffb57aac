// Package util carries the shared error taxonomy, the DisjointSets
// structure used by the mapping layer, and trace logging helpers.
package util

import "github.com/pkg/errors"

// The error taxonomy of the mapping core. These are programming errors:
// they surface to the caller immediately and are never caught inside
// the core. A mapper declining an instruction is not an error; it is
// expressed as an empty mapping slice or a nil mapping.
var (
	// ErrOutOfRange marks a numeric argument outside its declared
	// domain (negative counts, element IDs beyond the element count,
	// latency below 1).
	ErrOutOfRange = errors.New("argument out of range")

	// ErrInvalidConfiguration marks a width or lifecycle precondition
	// violation detected during pre-initialization.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
