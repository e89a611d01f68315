package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytwise/mitte-amd64/amd64"
	"github.com/bytwise/mitte-amd64/emit"
)

var (
	brainfuckOutput string
	brainfuckHex    bool
)

var brainfuckCmd = &cobra.Command{
	Use:     "brainfuck <program-file>",
	GroupID: "examples",
	Short:   "Compile a Brainfuck program into AMD64 machine code.",
	Long: `Compile a Brainfuck program into the machine code of a callable
routine. On entry rcx holds the tape base (16-bit cells) and rdx an I/O
table of two function pointers: putchar(table, char) at offset 0 and
getchar(table) at offset 8.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read program: %w", err)
		}

		code, err := compileBrainfuck(program)
		if err != nil {
			return fmt.Errorf("compilation failed: %w", err)
		}

		if brainfuckHex {
			dumpHex(cmd, code)
			return nil
		}
		if brainfuckOutput != "" {
			if err := os.WriteFile(brainfuckOutput, code, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		}
		_, err = cmd.OutOrStdout().Write(code)
		return err
	},
}

func init() {
	brainfuckCmd.Flags().StringVarP(&brainfuckOutput, "output", "o", "", "write machine code to a file instead of stdout")
	brainfuckCmd.Flags().BoolVar(&brainfuckHex, "hex", false, "print a hex listing instead of raw bytes")
}

// dumpHex prints the code bytes sixteen per line with offsets.
func dumpHex(cmd *cobra.Command, code []byte) {
	for i := 0; i < len(code); i += 16 {
		end := i + 16
		if end > len(code) {
			end = len(code)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%08x: % x\n", i, code[i:end])
	}
}

// generator threads the first emission error through a codegen sequence
// so each opcode line stays a single call.
type generator struct {
	asm *amd64.Assembler
	err error
}

func (g *generator) do(err error) {
	if g.err == nil {
		g.err = err
	}
}

// loop tracks one open bracket: the head of the loop body and the label
// that skips the loop entirely.
type loop struct {
	start *amd64.Label
	end   *amd64.Label
}

// compileBrainfuck emits the routine described in the command help. The
// tape index lives in ax so it wraps after 65536 cells (128 KiB of tape);
// the current cell is word ptr [rcx + rax*2].
func compileBrainfuck(program []byte) ([]byte, error) {
	var sink emit.Buffer
	g := &generator{asm: amd64.New(&sink)}

	cell := amd64.WordPtr(amd64.Base(amd64.Rcx).Index(amd64.Rax, amd64.Scale2))

	// function prologue
	g.do(g.asm.Push(amd64.Rbp))
	g.do(g.asm.Mov(amd64.Rbp, amd64.Rsp))
	g.do(g.asm.Sub(amd64.Rsp, amd64.Imm8(32)))

	// rax is the tape index, rcx the tape base, rdx the I/O table
	g.do(g.asm.Xor(amd64.Eax, amd64.Eax))

	var brackets []loop
	for _, b := range program {
		switch b {
		case '>':
			g.do(g.asm.Inc(amd64.Ax))
		case '<':
			g.do(g.asm.Dec(amd64.Ax))
		case '+':
			g.do(g.asm.Inc(cell))
		case '-':
			g.do(g.asm.Dec(cell))
		case '.':
			g.spill()
			// putchar(table, cell); the table address was just
			// spilled from rdx, whose low word now carries the char
			g.do(g.asm.Mov(amd64.Dx, cell))
			g.do(g.asm.Mov(amd64.Rcx, amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-24))))
			g.do(g.asm.Mov(amd64.Rax, amd64.QWordPtr(amd64.Base(amd64.Rcx))))
			g.do(g.asm.Call(amd64.Rax))
			g.reload()
		case ',':
			g.spill()
			// al = getchar(table)
			g.do(g.asm.Mov(amd64.Rcx, amd64.Rdx))
			g.do(g.asm.Mov(amd64.Rax, amd64.QWordPtr(amd64.Base(amd64.Rcx).Disp8(8))))
			g.do(g.asm.Call(amd64.Rax))
			g.do(g.asm.Movzx(amd64.Dx, amd64.Al))
			g.do(g.asm.Mov(amd64.Rax, amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-8))))
			g.do(g.asm.Mov(amd64.Rcx, amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-16))))
			g.do(g.asm.Mov(cell, amd64.Dx))
			g.do(g.asm.Mov(amd64.Rdx, amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-24))))
		case '[':
			start, end := amd64.NewLabel(), amd64.NewLabel()
			g.do(g.asm.Cmp(cell, amd64.Imm16(0)))
			g.do(g.asm.Jz(end))
			g.do(g.asm.Bind(start))
			brackets = append(brackets, loop{start: start, end: end})
		case ']':
			if len(brackets) == 0 {
				return nil, fmt.Errorf("unmatched ']'")
			}
			l := brackets[len(brackets)-1]
			brackets = brackets[:len(brackets)-1]
			g.do(g.asm.Cmp(cell, amd64.Imm16(0)))
			g.do(g.asm.Jnz(l.start))
			g.do(g.asm.Bind(l.end))
		}
	}
	if len(brackets) != 0 {
		return nil, fmt.Errorf("unmatched '['")
	}

	// function epilogue
	g.do(g.asm.Add(amd64.Rsp, amd64.Imm8(32)))
	g.do(g.asm.Pop(amd64.Rbp))
	g.do(g.asm.Ret())

	if g.err != nil {
		return nil, g.err
	}
	return sink.Bytes(), nil
}

// spill saves rax, rcx and rdx to the stack frame before a call.
func (g *generator) spill() {
	g.do(g.asm.Mov(amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-8)), amd64.Rax))
	g.do(g.asm.Mov(amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-16)), amd64.Rcx))
	g.do(g.asm.Mov(amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-24)), amd64.Rdx))
}

// reload restores rax, rcx and rdx after a call.
func (g *generator) reload() {
	g.do(g.asm.Mov(amd64.Rax, amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-8))))
	g.do(g.asm.Mov(amd64.Rcx, amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-16))))
	g.do(g.asm.Mov(amd64.Rdx, amd64.QWordPtr(amd64.Base(amd64.Rbp).Disp8(-24))))
}
