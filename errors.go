package bitfield

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFieldShape is returned by New when the requested
// (width, type tag) combination cannot be realized by any codec —
// for example a floating-point tag at a width other than 32 or 64
// bits, or a width above 64 bits.
var ErrUnsupportedFieldShape = errors.New("bitfield: unsupported field shape")

// ErrBufferTooSmall would be returned by a checked-precondition
// implementation of the buffer-size invariant. This package instead
// enforces that invariant via Go's native slice-bounds panic (see
// DESIGN.md); the sentinel is kept exported so callers that wrap
// buffer access in their own recover()-based boundary can still test
// against a stable name, and so the error taxonomy described by this
// package matches its two-error shape exactly.
var ErrBufferTooSmall = errors.New("bitfield: buffer too small for field")

func errorShape(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrUnsupportedFieldShape, args)...)
}

func prepend(first interface{}, rest []interface{}) []interface{} {
	out := make([]interface{}, 0, len(rest)+1)
	out = append(out, first)
	out = append(out, rest...)
	return out
}
