package amd64

// Operand - the dynamic operand form accepted by the instruction methods.
// It is a sealed interface: the implementations are the four register
// widths, the immediates, the branch offsets, the four sized memory
// pointers and *Label. Instruction methods reject combinations the AMD64
// reference does not list with ErrInvalidOperands.
type Operand interface {
	isOperand()
}

// Imm8 - an 8-bit immediate.
type Imm8 uint8

// Imm16 - a 16-bit immediate.
type Imm16 uint16

// Imm32 - a 32-bit immediate.
type Imm32 uint32

// Imm64 - a 64-bit immediate.
type Imm64 uint64

// Rel8 - a signed 8-bit branch displacement, relative to the end of the
// branch instruction.
type Rel8 int8

// Rel16 - a signed 16-bit branch displacement. No long-mode instruction
// accepts it; it exists so runtime-built operands can round-trip.
type Rel16 int16

// Rel32 - a signed 32-bit branch displacement, relative to the end of the
// branch instruction.
type Rel32 int32

// Rel64 - a signed 64-bit branch displacement. No long-mode instruction
// accepts it; it exists so runtime-built operands can round-trip.
type Rel64 int64

func (Reg8) isOperand()  {}
func (Reg16) isOperand() {}
func (Reg32) isOperand() {}
func (Reg64) isOperand() {}

func (Imm8) isOperand()  {}
func (Imm16) isOperand() {}
func (Imm32) isOperand() {}
func (Imm64) isOperand() {}

func (Rel8) isOperand()  {}
func (Rel16) isOperand() {}
func (Rel32) isOperand() {}
func (Rel64) isOperand() {}

func (Mem8) isOperand()  {}
func (Mem16) isOperand() {}
func (Mem32) isOperand() {}
func (Mem64) isOperand() {}

func (*Label) isOperand() {}
