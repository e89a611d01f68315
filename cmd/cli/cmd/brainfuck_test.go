package cmd

import (
	"bytes"
	"testing"
)

func TestCompileBrainfuckStraightLine(t *testing.T) {
	code, err := compileBrainfuck([]byte("+"))
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0x55,                   // push rbp
		0x48, 0x89, 0xe5,       // mov rbp, rsp
		0x48, 0x83, 0xec, 0x20, // sub rsp, 32
		0x31, 0xc0, // xor eax, eax
		0x66, 0xff, 0x04, 0x41, // inc word [rcx+rax*2]
		0x48, 0x83, 0xc4, 0x20, // add rsp, 32
		0x5d, // pop rbp
		0xc3, // ret
	}
	if !bytes.Equal(code, want) {
		t.Errorf("compiled\n% x, want\n% x", code, want)
	}
}

func TestCompileBrainfuckLoop(t *testing.T) {
	code, err := compileBrainfuck([]byte("[]"))
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0x55,                   // push rbp
		0x48, 0x89, 0xe5,       // mov rbp, rsp
		0x48, 0x83, 0xec, 0x20, // sub rsp, 32
		0x31, 0xc0, // xor eax, eax
		0x66, 0x81, 0x3c, 0x41, 0x00, 0x00, // cmp word [rcx+rax*2], 0
		0x0f, 0x84, 0x0c, 0x00, 0x00, 0x00, // jz past the loop
		0x66, 0x81, 0x3c, 0x41, 0x00, 0x00, // cmp word [rcx+rax*2], 0
		0x0f, 0x85, 0xf4, 0xff, 0xff, 0xff, // jnz back to the loop head
		0x48, 0x83, 0xc4, 0x20, // add rsp, 32
		0x5d, // pop rbp
		0xc3, // ret
	}
	if !bytes.Equal(code, want) {
		t.Errorf("compiled\n% x, want\n% x", code, want)
	}
}

func TestCompileBrainfuckUnmatchedBrackets(t *testing.T) {
	if _, err := compileBrainfuck([]byte("[")); err == nil {
		t.Error("unmatched '[' accepted")
	}
	if _, err := compileBrainfuck([]byte("]")); err == nil {
		t.Error("unmatched ']' accepted")
	}
}

func TestCompileBrainfuckIgnoresComments(t *testing.T) {
	plain, err := compileBrainfuck([]byte("+-"))
	if err != nil {
		t.Fatal(err)
	}
	commented, err := compileBrainfuck([]byte("+ comment\n-"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plain, commented) {
		t.Error("non-command bytes must not affect the generated code")
	}
}
