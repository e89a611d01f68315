package amd64

// Scale - the index multiplier of a scaled-index memory operand, stored
// in SIB encoding (0..3 for x1, x2, x4, x8).
type Scale uint8

const (
	Scale1 Scale = 0
	Scale2 Scale = 1
	Scale4 Scale = 2
	Scale8 Scale = 3
)

// ptrKind - selects one of the eleven addressing shapes a Ptr can take.
type ptrKind uint8

const (
	ptrDisp8 ptrKind = iota
	ptrDisp32
	ptrBase
	ptrBaseDisp8
	ptrBaseDisp32
	ptrIndex
	ptrIndexDisp8
	ptrIndexDisp32
	ptrBaseIndex
	ptrBaseIndexDisp8
	ptrBaseIndexDisp32
)

// Ptr - an unsized memory operand: an optional 64-bit base register, an
// optional scaled 64-bit index register and an optional 8- or 32-bit
// signed displacement. Values are built with Base, Index, Disp8 and
// Disp32 and composed with the methods of the same names; a negative
// displacement expresses base - disp.
type Ptr struct {
	kind  ptrKind
	base  Reg64
	index Reg64
	scale Scale
	disp  int32
}

// Disp8 - an absolute 8-bit displacement, [disp8].
func Disp8(disp int8) Ptr {
	return Ptr{kind: ptrDisp8, disp: int32(disp)}
}

// Disp32 - an absolute 32-bit displacement, [disp32].
func Disp32(disp int32) Ptr {
	return Ptr{kind: ptrDisp32, disp: disp}
}

// Base - a plain base register, [base].
func Base(base Reg64) Ptr {
	return Ptr{kind: ptrBase, base: base}
}

// Index - a scaled index without a base, [index*scale].
func Index(index Reg64, scale Scale) Ptr {
	return Ptr{kind: ptrIndex, index: index, scale: scale}
}

// Index - attaches a scaled index to a base, [base + index*scale]. Any
// displacement already present is kept.
func (p Ptr) Index(index Reg64, scale Scale) Ptr {
	p.index = index
	p.scale = scale
	switch p.kind {
	case ptrBase:
		p.kind = ptrBaseIndex
	case ptrBaseDisp8:
		p.kind = ptrBaseIndexDisp8
	case ptrBaseDisp32:
		p.kind = ptrBaseIndexDisp32
	}
	return p
}

// Disp8 - attaches an 8-bit displacement, [... + disp8] (negative values
// subtract).
func (p Ptr) Disp8(disp int8) Ptr {
	p.disp = int32(disp)
	switch p.kind {
	case ptrBase:
		p.kind = ptrBaseDisp8
	case ptrIndex:
		p.kind = ptrIndexDisp8
	case ptrBaseIndex:
		p.kind = ptrBaseIndexDisp8
	}
	return p
}

// Disp32 - attaches a 32-bit displacement, [... + disp32] (negative
// values subtract).
func (p Ptr) Disp32(disp int32) Ptr {
	p.disp = disp
	switch p.kind {
	case ptrBase, ptrBaseDisp8:
		p.kind = ptrBaseDisp32
	case ptrIndex, ptrIndexDisp8:
		p.kind = ptrIndexDisp32
	case ptrBaseIndex, ptrBaseIndexDisp8:
		p.kind = ptrBaseIndexDisp32
	}
	return p
}

// hasBase - whether the shape includes a base register.
func (p Ptr) hasBase() bool {
	switch p.kind {
	case ptrBase, ptrBaseDisp8, ptrBaseDisp32,
		ptrBaseIndex, ptrBaseIndexDisp8, ptrBaseIndexDisp32:
		return true
	}
	return false
}

// hasIndex - whether the shape includes a scaled index register.
func (p Ptr) hasIndex() bool {
	switch p.kind {
	case ptrIndex, ptrIndexDisp8, ptrIndexDisp32,
		ptrBaseIndex, ptrBaseIndexDisp8, ptrBaseIndexDisp32:
		return true
	}
	return false
}

// Mem8 - a Ptr accessed with byte width.
type Mem8 struct {
	Ptr
}

// Mem16 - a Ptr accessed with word width.
type Mem16 struct {
	Ptr
}

// Mem32 - a Ptr accessed with dword width.
type Mem32 struct {
	Ptr
}

// Mem64 - a Ptr accessed with qword width.
type Mem64 struct {
	Ptr
}

// BytePtr - wraps p as a byte-sized memory operand.
func BytePtr(p Ptr) Mem8 {
	return Mem8{p}
}

// WordPtr - wraps p as a word-sized memory operand.
func WordPtr(p Ptr) Mem16 {
	return Mem16{p}
}

// DWordPtr - wraps p as a dword-sized memory operand.
func DWordPtr(p Ptr) Mem32 {
	return Mem32{p}
}

// QWordPtr - wraps p as a qword-sized memory operand.
func QWordPtr(p Ptr) Mem64 {
	return Mem64{p}
}

// BytePointer - like BytePtr, but typed as a dynamic Operand.
func BytePointer(p Ptr) Operand {
	return BytePtr(p)
}

// WordPointer - like WordPtr, but typed as a dynamic Operand.
func WordPointer(p Ptr) Operand {
	return WordPtr(p)
}

// DWordPointer - like DWordPtr, but typed as a dynamic Operand.
func DWordPointer(p Ptr) Operand {
	return DWordPtr(p)
}

// QWordPointer - like QWordPtr, but typed as a dynamic Operand.
func QWordPointer(p Ptr) Operand {
	return QWordPtr(p)
}
