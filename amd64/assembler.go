package amd64

import (
	"github.com/bytwise/mitte-amd64/emit"
)

// Assembler - encodes AMD64 instructions into a byte sink. One method per
// mnemonic; each stages the full byte sequence of the instruction
// ([legacy-prefix] [REX] opcode [ModR/M] [SIB] [disp] [imm]) in a small
// fixed buffer and hands it to the sink in a single append.
//
// An Assembler owns its sink for the duration of the encoding session;
// nothing else may write to the sink between instruction calls. Errors
// are returned, never panicked, and are local to the failed instruction:
// the sink may be left mid-instruction and the caller decides whether to
// roll back or abort.
type Assembler struct {
	sink emit.Emitter
}

// New - returns an Assembler writing through sink.
func New(sink emit.Emitter) *Assembler {
	return &Assembler{sink: sink}
}

// Position - the sink's current write offset.
func (a *Assembler) Position() uint64 {
	return a.sink.Position()
}

// encodeOp - a form with no ModR/M byte: plain opcode plus an optional
// immediate (ret, cdq, accumulator short forms, push imm, relative
// branches with a literal displacement).
func (a *Assembler) encodeOp(prefix byte, w bool, op []byte, im immArg) error {
	var b buffer
	if prefix != 0 {
		b.u8(prefix)
	}
	if w {
		b.u8(prefixREX | rexW)
	}
	for _, o := range op {
		b.u8(o)
	}
	b.imm(im)
	return a.sink.Append(b.bytes())
}

// encodeOpReg - a form with the register embedded in the opcode byte
// (push/pop reg, mov reg imm, the xchg accumulator short form).
func (a *Assembler) encodeOpReg(prefix byte, w bool, op byte, reg register, im immArg) error {
	rex, hasRex, err := rexReg(w, reg)
	if err != nil {
		return err
	}
	var b buffer
	if prefix != 0 {
		b.u8(prefix)
	}
	if hasRex {
		b.u8(rex)
	}
	b.u8(op | reg.rm())
	b.imm(im)
	return a.sink.Append(b.bytes())
}

// encodeExtReg - a register-direct form with an opcode extension in the
// ModR/M reg field (the group-opcode instructions).
func (a *Assembler) encodeExtReg(prefix byte, w bool, op []byte, ext byte, rm register, im immArg) error {
	rex, hasRex, err := rexReg(w, rm)
	if err != nil {
		return err
	}
	var b buffer
	if prefix != 0 {
		b.u8(prefix)
	}
	if hasRex {
		b.u8(rex)
	}
	for _, o := range op {
		b.u8(o)
	}
	b.u8(modRM(3, ext, rm.rm()))
	b.imm(im)
	return a.sink.Append(b.bytes())
}

// encodeRegReg - a register-direct form with one register in the ModR/M
// reg field and another in the rm field.
func (a *Assembler) encodeRegReg(prefix byte, w bool, op []byte, reg, rm register, im immArg) error {
	rex, hasRex, err := rexRegReg(w, reg, rm)
	if err != nil {
		return err
	}
	var b buffer
	if prefix != 0 {
		b.u8(prefix)
	}
	if hasRex {
		b.u8(rex)
	}
	for _, o := range op {
		b.u8(o)
	}
	b.u8(modRM(3, reg.rm(), rm.rm()))
	b.imm(im)
	return a.sink.Append(b.bytes())
}

// encodeExtMem - a memory form with an opcode extension in the ModR/M
// reg field.
func (a *Assembler) encodeExtMem(prefix byte, w bool, op []byte, ext byte, p Ptr, im immArg) error {
	rex, hasRex, err := rexMem(w, nil, p)
	if err != nil {
		return err
	}
	var b buffer
	if prefix != 0 {
		b.u8(prefix)
	}
	if hasRex {
		b.u8(rex)
	}
	for _, o := range op {
		b.u8(o)
	}
	if err := writeMem(&b, ext, p); err != nil {
		return err
	}
	b.imm(im)
	return a.sink.Append(b.bytes())
}

// encodeRegMem - a memory form with a register in the ModR/M reg field.
func (a *Assembler) encodeRegMem(prefix byte, w bool, op []byte, reg register, p Ptr, im immArg) error {
	rex, hasRex, err := rexMem(w, reg, p)
	if err != nil {
		return err
	}
	var b buffer
	if prefix != 0 {
		b.u8(prefix)
	}
	if hasRex {
		b.u8(rex)
	}
	for _, o := range op {
		b.u8(o)
	}
	if err := writeMem(&b, reg.rm(), p); err != nil {
		return err
	}
	b.imm(im)
	return a.sink.Append(b.bytes())
}
