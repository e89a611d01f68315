// Package emit defines the byte-sink contract the amd64 encoder writes
// through, together with two reference sinks: a growable Buffer and a
// Cursor over a caller-supplied fixed byte slice.
//
// A sink knows nothing about instructions. It can append a small run of
// bytes, report the current write offset, and hand back a mutable view of
// a past range so that branch fixups can be patched in place.
package emit

import "errors"

var (
	// ErrOutOfRange - the requested range lies outside the written region.
	ErrOutOfRange = errors.New("range is outside the written region")
	// ErrBufferFull - an append would overflow a fixed-size sink.
	ErrBufferFull = errors.New("buffer is full")
)

// Emitter - the byte sink consumed by the encoder. Append is called once
// per instruction with the fully staged byte sequence; MutableRange is
// called only at label-bind time to patch displacement holes.
type Emitter interface {
	// Append - appends p atomically. p never exceeds a single
	// instruction (15 bytes).
	Append(p []byte) error
	// Position - returns the current write offset.
	Position() uint64
	// MutableRange - returns a mutable view of exactly n bytes starting
	// at a past offset. It fails when any part of the range has not been
	// written yet.
	MutableRange(offset uint64, n int) ([]byte, error)
}
