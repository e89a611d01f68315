package amd64

// Bsf - emits a forward bit scan of a 16/32/64-bit register or memory
// source into a register of the same width.
func (a *Assembler) Bsf(dst, src Operand) error {
	return a.bitscan(0xbc, dst, src)
}

// Bsr - emits a reverse bit scan of a 16/32/64-bit register or memory
// source into a register of the same width.
func (a *Assembler) Bsr(dst, src Operand) error {
	return a.bitscan(0xbd, dst, src)
}

func (a *Assembler) bitscan(op byte, dst, src Operand) error {
	switch d := dst.(type) {
	case Reg16:
		switch s := src.(type) {
		case Reg16:
			return a.encodeRegReg(prefixOperandSize, false, []byte{0x0f, op}, d, s, noImm)
		case Mem16:
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x0f, op}, d, s.Ptr, noImm)
		}
	case Reg32:
		switch s := src.(type) {
		case Reg32:
			return a.encodeRegReg(0, false, []byte{0x0f, op}, d, s, noImm)
		case Mem32:
			return a.encodeRegMem(0, false, []byte{0x0f, op}, d, s.Ptr, noImm)
		}
	case Reg64:
		switch s := src.(type) {
		case Reg64:
			return a.encodeRegReg(0, true, []byte{0x0f, op}, d, s, noImm)
		case Mem64:
			return a.encodeRegMem(0, true, []byte{0x0f, op}, d, s.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}
