package amd64

import "encoding/binary"

// buffer - the per-instruction staging area. AMD64 instructions are at
// most 15 bytes, so a fixed 32-byte array leaves room to spare and keeps
// encoding free of heap allocation. The staged bytes are handed to the
// sink in a single Append once the instruction is complete.
type buffer struct {
	buf [32]byte
	n   int
}

func (b *buffer) u8(v byte) {
	b.buf[b.n] = v
	b.n++
}

func (b *buffer) u16(v uint16) {
	binary.LittleEndian.PutUint16(b.buf[b.n:], v)
	b.n += 2
}

func (b *buffer) u32(v uint32) {
	binary.LittleEndian.PutUint32(b.buf[b.n:], v)
	b.n += 4
}

func (b *buffer) u64(v uint64) {
	binary.LittleEndian.PutUint64(b.buf[b.n:], v)
	b.n += 8
}

func (b *buffer) bytes() []byte {
	return b.buf[:b.n]
}

// immArg - an immediate staged after the addressing bytes. size selects
// the writer; 0 means no immediate.
type immArg struct {
	size uint8
	val  uint64
}

var noImm = immArg{}

func imm8(v uint8) immArg   { return immArg{size: 1, val: uint64(v)} }
func imm16(v uint16) immArg { return immArg{size: 2, val: uint64(v)} }
func imm32(v uint32) immArg { return immArg{size: 4, val: uint64(v)} }
func imm64(v uint64) immArg { return immArg{size: 8, val: v} }

func (b *buffer) imm(im immArg) {
	switch im.size {
	case 1:
		b.u8(byte(im.val))
	case 2:
		b.u16(uint16(im.val))
	case 4:
		b.u32(uint32(im.val))
	case 8:
		b.u64(im.val)
	}
}
