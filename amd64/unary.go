package amd64

// The unary arithmetic group lives in the F6/F7 opcode with the
// operation in the ModR/M extension; inc and dec have their own FE/FF
// group with extensions 0 and 1.

// Not - emits a one's-complement negation.
func (a *Assembler) Not(arg Operand) error { return a.unary([]byte{0xf6}, []byte{0xf7}, 2, arg) }

// Neg - emits a two's-complement negation.
func (a *Assembler) Neg(arg Operand) error { return a.unary([]byte{0xf6}, []byte{0xf7}, 3, arg) }

// Mul - emits an unsigned multiply by the accumulator.
func (a *Assembler) Mul(arg Operand) error { return a.unary([]byte{0xf6}, []byte{0xf7}, 4, arg) }

// Imul - emits a signed multiply by the accumulator.
func (a *Assembler) Imul(arg Operand) error { return a.unary([]byte{0xf6}, []byte{0xf7}, 5, arg) }

// Div - emits an unsigned divide of the accumulator.
func (a *Assembler) Div(arg Operand) error { return a.unary([]byte{0xf6}, []byte{0xf7}, 6, arg) }

// Idiv - emits a signed divide of the accumulator.
func (a *Assembler) Idiv(arg Operand) error { return a.unary([]byte{0xf6}, []byte{0xf7}, 7, arg) }

// Inc - emits an increment.
func (a *Assembler) Inc(arg Operand) error { return a.unary([]byte{0xfe}, []byte{0xff}, 0, arg) }

// Dec - emits a decrement.
func (a *Assembler) Dec(arg Operand) error { return a.unary([]byte{0xfe}, []byte{0xff}, 1, arg) }

// unary - dispatches a single-operand group instruction; op8 is the
// 8-bit opcode, op the opcode of the wider widths.
func (a *Assembler) unary(op8, op []byte, ext byte, arg Operand) error {
	switch v := arg.(type) {
	case Reg8:
		return a.encodeExtReg(0, false, op8, ext, v, noImm)
	case Reg16:
		return a.encodeExtReg(prefixOperandSize, false, op, ext, v, noImm)
	case Reg32:
		return a.encodeExtReg(0, false, op, ext, v, noImm)
	case Reg64:
		return a.encodeExtReg(0, true, op, ext, v, noImm)
	case Mem8:
		return a.encodeExtMem(0, false, op8, ext, v.Ptr, noImm)
	case Mem16:
		return a.encodeExtMem(prefixOperandSize, false, op, ext, v.Ptr, noImm)
	case Mem32:
		return a.encodeExtMem(0, false, op, ext, v.Ptr, noImm)
	case Mem64:
		return a.encodeExtMem(0, true, op, ext, v.Ptr, noImm)
	}
	return ErrInvalidOperands
}
