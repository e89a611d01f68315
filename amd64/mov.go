package amd64

import "math"

// Mov - emits a mov instruction. Register-immediate forms use the
// B0+r/B8+r short encodings without a ModR/M byte; a 64-bit immediate
// that is representable as a sign-extended 32-bit value is emitted in the
// shorter C7 /0 form instead of the 10-byte B8+r imm64 encoding.
func (a *Assembler) Mov(dst, src Operand) error {
	switch d := dst.(type) {
	case Reg8:
		switch s := src.(type) {
		case Imm8:
			return a.encodeOpReg(0, false, 0xb0, d, imm8(uint8(s)))
		case Reg8:
			return a.encodeRegReg(0, false, []byte{0x88}, s, d, noImm)
		case Mem8:
			return a.encodeRegMem(0, false, []byte{0x8a}, d, s.Ptr, noImm)
		}

	case Reg16:
		switch s := src.(type) {
		case Imm16:
			return a.encodeOpReg(prefixOperandSize, false, 0xb8, d, imm16(uint16(s)))
		case Reg16:
			return a.encodeRegReg(prefixOperandSize, false, []byte{0x89}, s, d, noImm)
		case Mem16:
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x8b}, d, s.Ptr, noImm)
		}

	case Reg32:
		switch s := src.(type) {
		case Imm32:
			return a.encodeOpReg(0, false, 0xb8, d, imm32(uint32(s)))
		case Reg32:
			return a.encodeRegReg(0, false, []byte{0x89}, s, d, noImm)
		case Mem32:
			return a.encodeRegMem(0, false, []byte{0x8b}, d, s.Ptr, noImm)
		}

	case Reg64:
		switch s := src.(type) {
		case Imm64:
			if v := int64(s); v >= math.MinInt32 && v <= math.MaxInt32 {
				return a.encodeExtReg(0, true, []byte{0xc7}, 0, d, imm32(uint32(v)))
			}
			return a.encodeOpReg(0, true, 0xb8, d, imm64(uint64(s)))
		case Imm32:
			return a.encodeExtReg(0, true, []byte{0xc7}, 0, d, imm32(uint32(s)))
		case Reg64:
			return a.encodeRegReg(0, true, []byte{0x89}, s, d, noImm)
		case Mem64:
			return a.encodeRegMem(0, true, []byte{0x8b}, d, s.Ptr, noImm)
		}

	case Mem8:
		switch s := src.(type) {
		case Imm8:
			return a.encodeExtMem(0, false, []byte{0xc6}, 0, d.Ptr, imm8(uint8(s)))
		case Reg8:
			return a.encodeRegMem(0, false, []byte{0x88}, s, d.Ptr, noImm)
		}

	case Mem16:
		switch s := src.(type) {
		case Imm16:
			return a.encodeExtMem(prefixOperandSize, false, []byte{0xc7}, 0, d.Ptr, imm16(uint16(s)))
		case Reg16:
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x89}, s, d.Ptr, noImm)
		}

	case Mem32:
		switch s := src.(type) {
		case Imm32:
			return a.encodeExtMem(0, false, []byte{0xc7}, 0, d.Ptr, imm32(uint32(s)))
		case Reg32:
			return a.encodeRegMem(0, false, []byte{0x89}, s, d.Ptr, noImm)
		}

	case Mem64:
		switch s := src.(type) {
		case Imm32:
			return a.encodeExtMem(0, true, []byte{0xc7}, 0, d.Ptr, imm32(uint32(s)))
		case Reg64:
			return a.encodeRegMem(0, true, []byte{0x89}, s, d.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}

// Movzx - emits a zero-extending move from an 8- or 16-bit source into a
// wider destination register.
func (a *Assembler) Movzx(dst, src Operand) error {
	return a.extendMov(0xb6, 0xb7, dst, src)
}

// Movsx - emits a sign-extending move from an 8- or 16-bit source into a
// wider destination register.
func (a *Assembler) Movsx(dst, src Operand) error {
	return a.extendMov(0xbe, 0xbf, dst, src)
}

// extendMov - the shared shape of movzx and movsx; op8 handles byte
// sources and op16 word sources.
func (a *Assembler) extendMov(op8, op16 byte, dst, src Operand) error {
	switch d := dst.(type) {
	case Reg16:
		switch s := src.(type) {
		case Reg8:
			return a.encodeRegReg(prefixOperandSize, false, []byte{0x0f, op8}, d, s, noImm)
		case Mem8:
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x0f, op8}, d, s.Ptr, noImm)
		}
	case Reg32:
		switch s := src.(type) {
		case Reg8:
			return a.encodeRegReg(0, false, []byte{0x0f, op8}, d, s, noImm)
		case Reg16:
			return a.encodeRegReg(0, false, []byte{0x0f, op16}, d, s, noImm)
		case Mem8:
			return a.encodeRegMem(0, false, []byte{0x0f, op8}, d, s.Ptr, noImm)
		case Mem16:
			return a.encodeRegMem(0, false, []byte{0x0f, op16}, d, s.Ptr, noImm)
		}
	case Reg64:
		switch s := src.(type) {
		case Reg8:
			return a.encodeRegReg(0, true, []byte{0x0f, op8}, d, s, noImm)
		case Reg16:
			return a.encodeRegReg(0, true, []byte{0x0f, op16}, d, s, noImm)
		case Mem8:
			return a.encodeRegMem(0, true, []byte{0x0f, op8}, d, s.Ptr, noImm)
		case Mem16:
			return a.encodeRegMem(0, true, []byte{0x0f, op16}, d, s.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}

// Lea - emits a load-effective-address of a sized memory operand into a
// register of the same width.
func (a *Assembler) Lea(dst, src Operand) error {
	switch d := dst.(type) {
	case Reg16:
		if s, ok := src.(Mem16); ok {
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x8d}, d, s.Ptr, noImm)
		}
	case Reg32:
		if s, ok := src.(Mem32); ok {
			return a.encodeRegMem(0, false, []byte{0x8d}, d, s.Ptr, noImm)
		}
	case Reg64:
		if s, ok := src.(Mem64); ok {
			return a.encodeRegMem(0, true, []byte{0x8d}, d, s.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}

// Xchg - emits an exchange. For 16/32/64-bit register pairs where one
// side is the accumulator, the one-byte 90+r short form is used; 8-bit
// register pairs always use the 86 /r encoding.
func (a *Assembler) Xchg(dst, src Operand) error {
	switch d := dst.(type) {
	case Reg8:
		switch s := src.(type) {
		case Reg8:
			return a.encodeRegReg(0, false, []byte{0x86}, s, d, noImm)
		case Mem8:
			return a.encodeRegMem(0, false, []byte{0x86}, d, s.Ptr, noImm)
		}

	case Reg16:
		switch s := src.(type) {
		case Reg16:
			if d == Ax {
				return a.encodeOpReg(prefixOperandSize, false, 0x90, s, noImm)
			}
			if s == Ax {
				return a.encodeOpReg(prefixOperandSize, false, 0x90, d, noImm)
			}
			return a.encodeRegReg(prefixOperandSize, false, []byte{0x87}, s, d, noImm)
		case Mem16:
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x87}, d, s.Ptr, noImm)
		}

	case Reg32:
		switch s := src.(type) {
		case Reg32:
			if d == Eax {
				return a.encodeOpReg(0, false, 0x90, s, noImm)
			}
			if s == Eax {
				return a.encodeOpReg(0, false, 0x90, d, noImm)
			}
			return a.encodeRegReg(0, false, []byte{0x87}, s, d, noImm)
		case Mem32:
			return a.encodeRegMem(0, false, []byte{0x87}, d, s.Ptr, noImm)
		}

	case Reg64:
		switch s := src.(type) {
		case Reg64:
			if d == Rax {
				return a.encodeOpReg(0, true, 0x90, s, noImm)
			}
			if s == Rax {
				return a.encodeOpReg(0, true, 0x90, d, noImm)
			}
			return a.encodeRegReg(0, true, []byte{0x87}, s, d, noImm)
		case Mem64:
			return a.encodeRegMem(0, true, []byte{0x87}, d, s.Ptr, noImm)
		}

	case Mem8:
		if s, ok := src.(Reg8); ok {
			return a.encodeRegMem(0, false, []byte{0x86}, s, d.Ptr, noImm)
		}
	case Mem16:
		if s, ok := src.(Reg16); ok {
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x87}, s, d.Ptr, noImm)
		}
	case Mem32:
		if s, ok := src.(Reg32); ok {
			return a.encodeRegMem(0, false, []byte{0x87}, s, d.Ptr, noImm)
		}
	case Mem64:
		if s, ok := src.(Reg64); ok {
			return a.encodeRegMem(0, true, []byte{0x87}, s, d.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}

// Cdq - emits a cdq (sign-extend eax into edx:eax).
func (a *Assembler) Cdq() error {
	return a.encodeOp(0, false, []byte{0x99}, noImm)
}
