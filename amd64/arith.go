package amd64

// arithOpcodes - the opcode assignments of one instruction of the binary
// arithmetic group (add, or, adc, sbb, and, sub, xor, cmp). The group
// shares its layout: reg8/reg32 are the r/m <- reg forms, mem8/mem32 the
// reg <- r/m forms, al/eax the accumulator-immediate short forms, and
// imm8/imm32/sextImm8 the 80/81/83 group forms selected by the index
// extension.
type arithOpcodes struct {
	index    byte
	reg8     byte
	reg32    byte
	mem8     byte
	mem32    byte
	al       byte
	eax      byte
	imm8     byte
	imm32    byte
	sextImm8 byte
}

var (
	arithAdd = arithOpcodes{index: 0, reg8: 0x00, reg32: 0x01, mem8: 0x02, mem32: 0x03, al: 0x04, eax: 0x05, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
	arithOr  = arithOpcodes{index: 1, reg8: 0x08, reg32: 0x09, mem8: 0x0a, mem32: 0x0b, al: 0x0c, eax: 0x0d, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
	arithAdc = arithOpcodes{index: 2, reg8: 0x10, reg32: 0x11, mem8: 0x12, mem32: 0x13, al: 0x14, eax: 0x15, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
	arithSbb = arithOpcodes{index: 3, reg8: 0x18, reg32: 0x19, mem8: 0x1a, mem32: 0x1b, al: 0x1c, eax: 0x1d, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
	arithAnd = arithOpcodes{index: 4, reg8: 0x20, reg32: 0x21, mem8: 0x22, mem32: 0x23, al: 0x24, eax: 0x25, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
	arithSub = arithOpcodes{index: 5, reg8: 0x28, reg32: 0x29, mem8: 0x2a, mem32: 0x2b, al: 0x2c, eax: 0x2d, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
	arithXor = arithOpcodes{index: 6, reg8: 0x30, reg32: 0x31, mem8: 0x32, mem32: 0x33, al: 0x34, eax: 0x35, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
	arithCmp = arithOpcodes{index: 7, reg8: 0x38, reg32: 0x39, mem8: 0x3a, mem32: 0x3b, al: 0x3c, eax: 0x3d, imm8: 0x80, imm32: 0x81, sextImm8: 0x83}
)

// Add - emits an add instruction.
func (a *Assembler) Add(dst, src Operand) error { return a.arith(arithAdd, dst, src) }

// Or - emits an or instruction.
func (a *Assembler) Or(dst, src Operand) error { return a.arith(arithOr, dst, src) }

// Adc - emits an add-with-carry instruction.
func (a *Assembler) Adc(dst, src Operand) error { return a.arith(arithAdc, dst, src) }

// Sbb - emits a subtract-with-borrow instruction.
func (a *Assembler) Sbb(dst, src Operand) error { return a.arith(arithSbb, dst, src) }

// And - emits an and instruction.
func (a *Assembler) And(dst, src Operand) error { return a.arith(arithAnd, dst, src) }

// Sub - emits a sub instruction.
func (a *Assembler) Sub(dst, src Operand) error { return a.arith(arithSub, dst, src) }

// Xor - emits an xor instruction.
func (a *Assembler) Xor(dst, src Operand) error { return a.arith(arithXor, dst, src) }

// Cmp - emits a cmp instruction.
func (a *Assembler) Cmp(dst, src Operand) error { return a.arith(arithCmp, dst, src) }

// arith - dispatches one binary arithmetic instruction over the operand
// kinds the group accepts. An 8-bit immediate against a wider register
// selects the sign-extending 83 form; an immediate against the
// accumulator selects the short form without ModR/M.
func (a *Assembler) arith(op arithOpcodes, dst, src Operand) error {
	switch d := dst.(type) {
	case Reg8:
		switch s := src.(type) {
		case Imm8:
			if d == Al {
				return a.encodeOp(0, false, []byte{op.al}, imm8(uint8(s)))
			}
			return a.encodeExtReg(0, false, []byte{op.imm8}, op.index, d, imm8(uint8(s)))
		case Reg8:
			return a.encodeRegReg(0, false, []byte{op.reg8}, s, d, noImm)
		case Mem8:
			return a.encodeRegMem(0, false, []byte{op.mem8}, d, s.Ptr, noImm)
		}

	case Reg16:
		switch s := src.(type) {
		case Imm8:
			return a.encodeExtReg(prefixOperandSize, false, []byte{op.sextImm8}, op.index, d, imm8(uint8(s)))
		case Imm16:
			if d == Ax {
				return a.encodeOp(prefixOperandSize, false, []byte{op.eax}, imm16(uint16(s)))
			}
			return a.encodeExtReg(prefixOperandSize, false, []byte{op.imm32}, op.index, d, imm16(uint16(s)))
		case Reg16:
			return a.encodeRegReg(prefixOperandSize, false, []byte{op.reg32}, s, d, noImm)
		case Mem16:
			return a.encodeRegMem(prefixOperandSize, false, []byte{op.mem32}, d, s.Ptr, noImm)
		}

	case Reg32:
		switch s := src.(type) {
		case Imm8:
			return a.encodeExtReg(0, false, []byte{op.sextImm8}, op.index, d, imm8(uint8(s)))
		case Imm32:
			if d == Eax {
				return a.encodeOp(0, false, []byte{op.eax}, imm32(uint32(s)))
			}
			return a.encodeExtReg(0, false, []byte{op.imm32}, op.index, d, imm32(uint32(s)))
		case Reg32:
			return a.encodeRegReg(0, false, []byte{op.reg32}, s, d, noImm)
		case Mem32:
			return a.encodeRegMem(0, false, []byte{op.mem32}, d, s.Ptr, noImm)
		}

	case Reg64:
		switch s := src.(type) {
		case Imm8:
			return a.encodeExtReg(0, true, []byte{op.sextImm8}, op.index, d, imm8(uint8(s)))
		case Imm32:
			if d == Rax {
				return a.encodeOp(0, true, []byte{op.eax}, imm32(uint32(s)))
			}
			return a.encodeExtReg(0, true, []byte{op.imm32}, op.index, d, imm32(uint32(s)))
		case Reg64:
			return a.encodeRegReg(0, true, []byte{op.reg32}, s, d, noImm)
		case Mem64:
			return a.encodeRegMem(0, true, []byte{op.mem32}, d, s.Ptr, noImm)
		}

	case Mem8:
		switch s := src.(type) {
		case Imm8:
			return a.encodeExtMem(0, false, []byte{op.imm8}, op.index, d.Ptr, imm8(uint8(s)))
		case Reg8:
			return a.encodeRegMem(0, false, []byte{op.reg8}, s, d.Ptr, noImm)
		}

	case Mem16:
		switch s := src.(type) {
		case Imm16:
			return a.encodeExtMem(prefixOperandSize, false, []byte{op.imm32}, op.index, d.Ptr, imm16(uint16(s)))
		case Reg16:
			return a.encodeRegMem(prefixOperandSize, false, []byte{op.reg32}, s, d.Ptr, noImm)
		}

	case Mem32:
		switch s := src.(type) {
		case Imm32:
			return a.encodeExtMem(0, false, []byte{op.imm32}, op.index, d.Ptr, imm32(uint32(s)))
		case Reg32:
			return a.encodeRegMem(0, false, []byte{op.reg32}, s, d.Ptr, noImm)
		}

	case Mem64:
		switch s := src.(type) {
		case Imm32:
			return a.encodeExtMem(0, true, []byte{op.imm32}, op.index, d.Ptr, imm32(uint32(s)))
		case Reg64:
			return a.encodeRegMem(0, true, []byte{op.reg32}, s, d.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}

// Test - emits a test instruction. Unlike the arithmetic group, test has
// no reg <- r/m form and no sign-extending immediate form.
func (a *Assembler) Test(dst, src Operand) error {
	switch d := dst.(type) {
	case Reg8:
		switch s := src.(type) {
		case Imm8:
			if d == Al {
				return a.encodeOp(0, false, []byte{0xa8}, imm8(uint8(s)))
			}
			return a.encodeExtReg(0, false, []byte{0xf6}, 0, d, imm8(uint8(s)))
		case Reg8:
			return a.encodeRegReg(0, false, []byte{0x84}, s, d, noImm)
		}

	case Reg16:
		switch s := src.(type) {
		case Imm16:
			if d == Ax {
				return a.encodeOp(prefixOperandSize, false, []byte{0xa9}, imm16(uint16(s)))
			}
			return a.encodeExtReg(prefixOperandSize, false, []byte{0xf7}, 0, d, imm16(uint16(s)))
		case Reg16:
			return a.encodeRegReg(prefixOperandSize, false, []byte{0x85}, s, d, noImm)
		}

	case Reg32:
		switch s := src.(type) {
		case Imm32:
			if d == Eax {
				return a.encodeOp(0, false, []byte{0xa9}, imm32(uint32(s)))
			}
			return a.encodeExtReg(0, false, []byte{0xf7}, 0, d, imm32(uint32(s)))
		case Reg32:
			return a.encodeRegReg(0, false, []byte{0x85}, s, d, noImm)
		}

	case Reg64:
		switch s := src.(type) {
		case Imm32:
			if d == Rax {
				return a.encodeOp(0, true, []byte{0xa9}, imm32(uint32(s)))
			}
			return a.encodeExtReg(0, true, []byte{0xf7}, 0, d, imm32(uint32(s)))
		case Reg64:
			return a.encodeRegReg(0, true, []byte{0x85}, s, d, noImm)
		}

	case Mem8:
		switch s := src.(type) {
		case Imm8:
			return a.encodeExtMem(0, false, []byte{0xf6}, 0, d.Ptr, imm8(uint8(s)))
		case Reg8:
			return a.encodeRegMem(0, false, []byte{0x84}, s, d.Ptr, noImm)
		}

	case Mem16:
		switch s := src.(type) {
		case Imm16:
			return a.encodeExtMem(prefixOperandSize, false, []byte{0xf7}, 0, d.Ptr, imm16(uint16(s)))
		case Reg16:
			return a.encodeRegMem(prefixOperandSize, false, []byte{0x85}, s, d.Ptr, noImm)
		}

	case Mem32:
		switch s := src.(type) {
		case Imm32:
			return a.encodeExtMem(0, false, []byte{0xf7}, 0, d.Ptr, imm32(uint32(s)))
		case Reg32:
			return a.encodeRegMem(0, false, []byte{0x85}, s, d.Ptr, noImm)
		}

	case Mem64:
		switch s := src.(type) {
		case Imm32:
			return a.encodeExtMem(0, true, []byte{0xf7}, 0, d.Ptr, imm32(uint32(s)))
		case Reg64:
			return a.encodeRegMem(0, true, []byte{0x85}, s, d.Ptr, noImm)
		}
	}
	return ErrInvalidOperands
}
