package amd64

// writeMem - writes the ModR/M byte, the SIB byte when the shape demands
// one, and the displacement for a memory operand. reg is the 3-bit value
// of the ModR/M reg field (a register number or an opcode extension).
//
// The shape-to-bytes mapping follows the AMD64 addressing rules:
//
//   - An absolute displacement has no register, so rm=4 routes through a
//     SIB byte with index=4 (none) and base=5 (disp32 only).
//   - A bare RBP or R13 base cannot use mod=0 (that slot means
//     rip/disp32), so it is upgraded to a zero disp8.
//   - An RSP or R12 base always needs a SIB byte, because rm=4 means
//     "consult SIB" in every non-register mode.
//   - A scaled index without a base uses the SIB base=5, mod=0 slot,
//     which carries a mandatory disp32.
//   - RSP and R12 can never be the index; index=4 encodes "no index".
func writeMem(b *buffer, reg byte, p Ptr) error {
	if p.hasIndex() && p.index.rm() == 4 {
		return InvalidIndexRegisterError{Reg: p.index}
	}

	switch p.kind {
	case ptrDisp8, ptrDisp32:
		b.u8(modRM(0, reg, 4))
		b.u8(sib(0, 4, 5))
		b.u32(uint32(p.disp))

	case ptrBase:
		switch {
		case p.base.rm() == 5: // rbp, r13
			b.u8(modRM(1, reg, p.base.rm()))
			b.u8(0)
		case p.base.rm() == 4: // rsp, r12
			b.u8(modRM(0, reg, 4))
			b.u8(sib(0, 4, 4))
		default:
			b.u8(modRM(0, reg, p.base.rm()))
		}

	case ptrBaseDisp8:
		b.u8(modRM(1, reg, p.base.rm()))
		if p.base.rm() == 4 { // rsp, r12
			b.u8(sib(0, 4, 4))
		}
		b.u8(byte(p.disp))

	case ptrBaseDisp32:
		b.u8(modRM(2, reg, p.base.rm()))
		if p.base.rm() == 4 { // rsp, r12
			b.u8(sib(0, 4, 4))
		}
		b.u32(uint32(p.disp))

	case ptrIndex:
		b.u8(modRM(0, reg, 4))
		b.u8(sib(byte(p.scale), p.index.rm(), 5))
		b.u32(0)

	case ptrIndexDisp8, ptrIndexDisp32:
		b.u8(modRM(0, reg, 4))
		b.u8(sib(byte(p.scale), p.index.rm(), 5))
		b.u32(uint32(p.disp))

	case ptrBaseIndex:
		if p.base.rm() == 5 { // rbp, r13
			b.u8(modRM(1, reg, 4))
			b.u8(sib(byte(p.scale), p.index.rm(), p.base.rm()))
			b.u8(0)
		} else {
			b.u8(modRM(0, reg, 4))
			b.u8(sib(byte(p.scale), p.index.rm(), p.base.rm()))
		}

	case ptrBaseIndexDisp8:
		b.u8(modRM(1, reg, 4))
		b.u8(sib(byte(p.scale), p.index.rm(), p.base.rm()))
		b.u8(byte(p.disp))

	case ptrBaseIndexDisp32:
		b.u8(modRM(2, reg, 4))
		b.u8(sib(byte(p.scale), p.index.rm(), p.base.rm()))
		b.u32(uint32(p.disp))
	}
	return nil
}
