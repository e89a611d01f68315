package amd64

// The general-purpose register file, split into one distinct type per
// operand width so that instruction dispatch can tell the widths apart.
// Constant values carry the hardware encoding: the low 3 bits are the
// ModR/M rm value and bit 3 marks the extended (r8-r15) file. The 8-bit
// legacy high-byte registers AH/CH/DH/BH share hardware indices 4..7 with
// SPL/BPL/SIL/DIL, so the REX-requiring low-byte group is offset by 0x10
// to keep the two distinguishable while preserving value&7 as the rm bits.

// Reg8 - an 8-bit general-purpose register.
type Reg8 uint8

// General Purpose Registers - 8-bit
const (
	Al Reg8 = 0
	Cl Reg8 = 1
	Dl Reg8 = 2
	Bl Reg8 = 3
	Ah Reg8 = 4
	Ch Reg8 = 5
	Dh Reg8 = 6
	Bh Reg8 = 7

	R8b  Reg8 = 8
	R9b  Reg8 = 9
	R10b Reg8 = 10
	R11b Reg8 = 11
	R12b Reg8 = 12
	R13b Reg8 = 13
	R14b Reg8 = 14
	R15b Reg8 = 15

	Spl Reg8 = 0x14
	Bpl Reg8 = 0x15
	Sil Reg8 = 0x16
	Dil Reg8 = 0x17
)

// Reg16 - a 16-bit general-purpose register.
type Reg16 uint8

// General Purpose Registers - 16-bit
const (
	Ax Reg16 = iota
	Cx
	Dx
	Bx
	Sp
	Bp
	Si
	Di
	R8w
	R9w
	R10w
	R11w
	R12w
	R13w
	R14w
	R15w
)

// Reg32 - a 32-bit general-purpose register.
type Reg32 uint8

// General Purpose Registers - 32-bit
const (
	Eax Reg32 = iota
	Ecx
	Edx
	Ebx
	Esp
	Ebp
	Esi
	Edi
	R8d
	R9d
	R10d
	R11d
	R12d
	R13d
	R14d
	R15d
)

// Reg64 - a 64-bit general-purpose register.
type Reg64 uint8

// General Purpose Registers - 64-bit
const (
	Rax Reg64 = iota
	Rcx
	Rdx
	Rbx
	Rsp
	Rbp
	Rsi
	Rdi
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// register - the encoding-relevant view shared by all four widths. The
// methods are unexported; the register types are the only implementations.
type register interface {
	Operand
	// Size - the register size in bytes.
	Size() int
	// rm - the low 3 bits of the hardware index.
	rm() byte
	// extended - whether the hardware index is 8 or above (REX.R/X/B).
	extended() bool
	// is64Bit - whether the register is a 64-bit variant.
	is64Bit() bool
	// forcesREX - whether referencing the register requires a REX prefix
	// even when no extension bit is set (SPL/BPL/SIL/DIL, r8b-r15b).
	forcesREX() bool
	// rexEncodable - whether the register may appear in an instruction
	// that carries a REX prefix. False only for AH/CH/DH/BH.
	rexEncodable() bool
}

func (r Reg8) Size() int          { return 1 }
func (r Reg8) rm() byte           { return byte(r) & 7 }
func (r Reg8) extended() bool     { return r&8 != 0 && r < Spl }
func (r Reg8) is64Bit() bool      { return false }
func (r Reg8) forcesREX() bool    { return r >= R8b }
func (r Reg8) rexEncodable() bool { return r < Ah || r >= R8b }

func (r Reg16) Size() int          { return 2 }
func (r Reg16) rm() byte           { return byte(r) & 7 }
func (r Reg16) extended() bool     { return r&8 != 0 }
func (r Reg16) is64Bit() bool      { return false }
func (r Reg16) forcesREX() bool    { return r.extended() }
func (r Reg16) rexEncodable() bool { return true }

func (r Reg32) Size() int          { return 4 }
func (r Reg32) rm() byte           { return byte(r) & 7 }
func (r Reg32) extended() bool     { return r&8 != 0 }
func (r Reg32) is64Bit() bool      { return false }
func (r Reg32) forcesREX() bool    { return r.extended() }
func (r Reg32) rexEncodable() bool { return true }

func (r Reg64) Size() int          { return 8 }
func (r Reg64) rm() byte           { return byte(r) & 7 }
func (r Reg64) extended() bool     { return r&8 != 0 }
func (r Reg64) is64Bit() bool      { return true }
func (r Reg64) forcesREX() bool    { return r.extended() }
func (r Reg64) rexEncodable() bool { return true }

// To32 - returns the 32-bit variant sharing the hardware index. Memory
// forms use it for the base and index registers of a pointer, which
// contribute only their REX.X/REX.B bits and never REX.W.
func (r Reg64) To32() Reg32 {
	return Reg32(r)
}

var reg8Names = map[Reg8]string{
	Al: "al", Cl: "cl", Dl: "dl", Bl: "bl",
	Ah: "ah", Ch: "ch", Dh: "dh", Bh: "bh",
	R8b: "r8b", R9b: "r9b", R10b: "r10b", R11b: "r11b",
	R12b: "r12b", R13b: "r13b", R14b: "r14b", R15b: "r15b",
	Spl: "spl", Bpl: "bpl", Sil: "sil", Dil: "dil",
}

var reg16Names = [16]string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
}

var reg32Names = [16]string{
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
}

var reg64Names = [16]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

func (r Reg8) String() string {
	if name, ok := reg8Names[r]; ok {
		return name
	}
	return "reg8(invalid)"
}

func (r Reg16) String() string {
	if int(r) < len(reg16Names) {
		return reg16Names[r]
	}
	return "reg16(invalid)"
}

func (r Reg32) String() string {
	if int(r) < len(reg32Names) {
		return reg32Names[r]
	}
	return "reg32(invalid)"
}

func (r Reg64) String() string {
	if int(r) < len(reg64Names) {
		return reg64Names[r]
	}
	return "reg64(invalid)"
}
