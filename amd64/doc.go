// Package amd64 encodes AMD64 instructions into a byte sink.
//
// The Assembler exposes one method per mnemonic. Operands are typed
// values: the register constants (Al, Ax, Eax, Rax, ...), the immediate
// widths (Imm8..Imm64), literal branch displacements (Rel8, Rel32),
// sized memory operands built from the pointer algebra (BytePtr(Base(Rax)
// .Disp8(-8))), and labels for symbolic branch targets. A combination
// the AMD64 instruction reference does not list is rejected with
// ErrInvalidOperands.
//
// Short encodings are chosen at emit time from the literal argument
// values: the accumulator-immediate forms, the sign-extending imm8
// forms of the arithmetic group, the shift-by-one opcodes, the xchg
// accumulator form and the narrow mov for 64-bit immediates that fit a
// sign-extended 32-bit field. There is no optimisation pass.
//
// Forward branches to unbound labels always reserve a 32-bit
// displacement, so code is laid out in one pass and holes are patched
// when the label binds.
package amd64
