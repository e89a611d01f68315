package amd64

// The shift group shares its opcodes and differs only in the ModR/M
// extension: shl=4, shr=5, sar=7. Three opcode families exist and are
// picked from the literal count at emit time: D0/D1 shift by one (no
// immediate byte), C0/C1 shift by imm8, D2/D3 shift by the cl register.

// Shl - emits a shift-left instruction. src is an Imm8 count or the cl
// register.
func (a *Assembler) Shl(dst, src Operand) error { return a.shift(4, dst, src) }

// Shr - emits a logical shift-right instruction. src is an Imm8 count or
// the cl register.
func (a *Assembler) Shr(dst, src Operand) error { return a.shift(5, dst, src) }

// Sar - emits an arithmetic shift-right instruction. src is an Imm8
// count or the cl register.
func (a *Assembler) Sar(dst, src Operand) error { return a.shift(7, dst, src) }

func (a *Assembler) shift(ext byte, dst, src Operand) error {
	switch d := dst.(type) {
	case Reg8:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtReg(0, false, []byte{0xd0}, ext, d, noImm)
			}
			return a.encodeExtReg(0, false, []byte{0xc0}, ext, d, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtReg(0, false, []byte{0xd2}, ext, d, noImm)
		}

	case Reg16:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtReg(prefixOperandSize, false, []byte{0xd1}, ext, d, noImm)
			}
			return a.encodeExtReg(prefixOperandSize, false, []byte{0xc1}, ext, d, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtReg(prefixOperandSize, false, []byte{0xd3}, ext, d, noImm)
		}

	case Reg32:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtReg(0, false, []byte{0xd1}, ext, d, noImm)
			}
			return a.encodeExtReg(0, false, []byte{0xc1}, ext, d, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtReg(0, false, []byte{0xd3}, ext, d, noImm)
		}

	case Reg64:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtReg(0, true, []byte{0xd1}, ext, d, noImm)
			}
			return a.encodeExtReg(0, true, []byte{0xc1}, ext, d, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtReg(0, true, []byte{0xd3}, ext, d, noImm)
		}

	case Mem8:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtMem(0, false, []byte{0xd0}, ext, d.Ptr, noImm)
			}
			return a.encodeExtMem(0, false, []byte{0xc0}, ext, d.Ptr, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtMem(0, false, []byte{0xd2}, ext, d.Ptr, noImm)
		}

	case Mem16:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtMem(prefixOperandSize, false, []byte{0xd1}, ext, d.Ptr, noImm)
			}
			return a.encodeExtMem(prefixOperandSize, false, []byte{0xc1}, ext, d.Ptr, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtMem(prefixOperandSize, false, []byte{0xd3}, ext, d.Ptr, noImm)
		}

	case Mem32:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtMem(0, false, []byte{0xd1}, ext, d.Ptr, noImm)
			}
			return a.encodeExtMem(0, false, []byte{0xc1}, ext, d.Ptr, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtMem(0, false, []byte{0xd3}, ext, d.Ptr, noImm)
		}

	case Mem64:
		switch s := src.(type) {
		case Imm8:
			if s == 1 {
				return a.encodeExtMem(0, true, []byte{0xd1}, ext, d.Ptr, noImm)
			}
			return a.encodeExtMem(0, true, []byte{0xc1}, ext, d.Ptr, imm8(uint8(s)))
		case Reg8:
			if s != Cl {
				return ErrInvalidOperands
			}
			return a.encodeExtMem(0, true, []byte{0xd3}, ext, d.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}
