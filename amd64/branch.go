package amd64

import "math"

// Call - emits a call to a literal rel32 displacement or through a
// 64-bit register.
func (a *Assembler) Call(target Operand) error {
	switch t := target.(type) {
	case Rel32:
		return a.encodeOp(0, false, []byte{0xe8}, imm32(uint32(t)))
	case Reg64:
		return a.encodeExtReg(0, false, []byte{0xff}, 2, t, noImm)
	}
	return ErrInvalidOperands
}

// Jmp - emits an unconditional jump to a literal rel8/rel32
// displacement, through a 64-bit register, or to a label.
func (a *Assembler) Jmp(target Operand) error {
	switch t := target.(type) {
	case Rel8:
		return a.encodeOp(0, false, []byte{0xeb}, imm8(uint8(t)))
	case Rel32:
		return a.encodeOp(0, false, []byte{0xe9}, imm32(uint32(t)))
	case Reg64:
		return a.encodeExtReg(0, false, []byte{0xff}, 4, t, noImm)
	case *Label:
		return a.branchLabel([]byte{0xe9}, t)
	}
	return ErrInvalidOperands
}

// Ret - emits a near return.
func (a *Assembler) Ret() error {
	return a.encodeOp(0, false, []byte{0xc3}, noImm)
}

// Ud2 - emits the guaranteed-undefined instruction.
func (a *Assembler) Ud2() error {
	return a.encodeOp(0, false, []byte{0x0f, 0x0b}, noImm)
}

// branchLabel - emits a label-targeted branch whose opcode bytes are op.
// A bound label resolves immediately to the rel32 form; an unbound one
// gets a four-byte hole recorded on the label for patching at bind time.
// The rel8 form is never used for labels, so no second pass over emitted
// branches is ever needed.
func (a *Assembler) branchLabel(op []byte, l *Label) error {
	if l.bound {
		end := int64(a.Position()) + int64(len(op)) + 4
		disp := int64(l.addr) - end
		if disp < math.MinInt32 || disp > math.MaxInt32 {
			return ErrLabelTooFarAway
		}
		var b buffer
		for _, o := range op {
			b.u8(o)
		}
		b.u32(uint32(int32(disp)))
		return a.sink.Append(b.bytes())
	}

	var b buffer
	for _, o := range op {
		b.u8(o)
	}
	b.u32(0)
	if err := a.sink.Append(b.bytes()); err != nil {
		return err
	}
	l.pending = append(l.pending, hole{offset: a.Position() - 4, kind: holeRel32})
	return nil
}
