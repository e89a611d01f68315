package amd64_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bytwise/mitte-amd64/amd64"
	"github.com/bytwise/mitte-amd64/emit"
)

// TestLabelForwardAndBackward drives the fixup machinery through two
// loop-shaped blocks: a forward branch over the block and a backward
// branch to its head.
func TestLabelForwardAndBackward(t *testing.T) {
	var sink emit.Buffer
	a := amd64.New(&sink)

	if err := a.Add(amd64.BytePtr(amd64.Base(amd64.Rax)), amd64.Al); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		head := amd64.NewLabel()
		tail := amd64.NewLabel()

		if err := a.Jg(tail); err != nil {
			t.Fatal(err)
		}
		if err := a.Bind(head); err != nil {
			t.Fatal(err)
		}
		if err := a.Add(amd64.BytePtr(amd64.Base(amd64.Rax)), amd64.Al); err != nil {
			t.Fatal(err)
		}
		if err := a.Jg(head); err != nil {
			t.Fatal(err)
		}
		if err := a.Bind(tail); err != nil {
			t.Fatal(err)
		}

		if tail.Pending() != 0 {
			t.Errorf("tail has %d pending fixups after bind", tail.Pending())
		}
	}

	want := []byte{
		0x00, 0x00, // add [rax], al
		0x0f, 0x8f, 0x08, 0x00, 0x00, 0x00, // jg +8
		0x00, 0x00, // add [rax], al
		0x0f, 0x8f, 0xf8, 0xff, 0xff, 0xff, // jg -8
		0x0f, 0x8f, 0x08, 0x00, 0x00, 0x00, // jg +8
		0x00, 0x00, // add [rax], al
		0x0f, 0x8f, 0xf8, 0xff, 0xff, 0xff, // jg -8
	}
	if !bytes.Equal(sink.Bytes(), want) {
		t.Errorf("encoded\n% x, want\n% x", sink.Bytes(), want)
	}
}

// TestLabelMultipleForwardReferences binds one label after three forward
// branches and expects every hole patched relative to its own site.
func TestLabelMultipleForwardReferences(t *testing.T) {
	var sink emit.Buffer
	a := amd64.New(&sink)

	target := amd64.NewLabel()
	if err := a.Jmp(target); err != nil { // site 0, hole at 1
		t.Fatal(err)
	}
	if err := a.Jz(target); err != nil { // site 5, hole at 7
		t.Fatal(err)
	}
	if err := a.Jnz(target); err != nil { // site 11, hole at 13
		t.Fatal(err)
	}
	if target.Pending() != 3 {
		t.Fatalf("pending = %d, want 3", target.Pending())
	}
	if err := a.Bind(target); err != nil { // position 17
		t.Fatal(err)
	}

	want := []byte{
		0xe9, 0x0c, 0x00, 0x00, 0x00, // jmp +12
		0x0f, 0x84, 0x06, 0x00, 0x00, 0x00, // jz +6
		0x0f, 0x85, 0x00, 0x00, 0x00, 0x00, // jnz +0
	}
	if !bytes.Equal(sink.Bytes(), want) {
		t.Errorf("encoded\n% x, want\n% x", sink.Bytes(), want)
	}
}

// farSink fakes the write offset so label distances beyond the rel32
// range can be exercised without a multi-gigabyte buffer.
type farSink struct {
	pos uint64
}

func (s *farSink) Append(p []byte) error {
	s.pos += uint64(len(p))
	return nil
}

func (s *farSink) Position() uint64 {
	return s.pos
}

func (s *farSink) MutableRange(offset uint64, n int) ([]byte, error) {
	return make([]byte, n), nil
}

func TestLabelTooFarAway(t *testing.T) {
	sink := &farSink{}
	a := amd64.New(sink)

	l := amd64.NewLabel()
	if err := a.Bind(l); err != nil {
		t.Fatal(err)
	}

	sink.pos = 0x9000_0000
	if err := a.Jmp(l); !errors.Is(err, amd64.ErrLabelTooFarAway) {
		t.Errorf("jmp err = %v, want ErrLabelTooFarAway", err)
	}
	if err := a.Jg(l); !errors.Is(err, amd64.ErrLabelTooFarAway) {
		t.Errorf("jg err = %v, want ErrLabelTooFarAway", err)
	}

	// A distance that still fits is accepted.
	sink.pos = 0x7fff_0000
	if err := a.Jmp(l); err != nil {
		t.Errorf("jmp err = %v, want success", err)
	}
}

// failSink returns a fixed error from Append so host-error passthrough
// can be observed.
type failSink struct {
	err error
}

func (s *failSink) Append(p []byte) error {
	return s.err
}

func (s *failSink) Position() uint64 {
	return 0
}

func (s *failSink) MutableRange(offset uint64, n int) ([]byte, error) {
	return nil, s.err
}

func TestHostErrorPassthrough(t *testing.T) {
	hostErr := errors.New("page is sealed")
	a := amd64.New(&failSink{err: hostErr})

	if err := a.Ret(); !errors.Is(err, hostErr) {
		t.Errorf("err = %v, want the host error", err)
	}
	if err := a.Mov(amd64.Rax, amd64.Rcx); !errors.Is(err, hostErr) {
		t.Errorf("err = %v, want the host error", err)
	}
}

func TestLabelRedefined(t *testing.T) {
	var sink emit.Buffer
	a := amd64.New(&sink)

	l := amd64.NewLabel()
	if err := a.Bind(l); err != nil {
		t.Fatal(err)
	}
	if !l.Bound() {
		t.Error("label not bound after Bind")
	}
	if err := a.Bind(l); !errors.Is(err, amd64.ErrRedefinedLabel) {
		t.Errorf("second bind err = %v, want ErrRedefinedLabel", err)
	}
}

// TestLabelBoundTarget emits a branch to an already-bound label and
// expects an immediately resolved displacement.
func TestLabelBoundTarget(t *testing.T) {
	var sink emit.Buffer
	a := amd64.New(&sink)

	l := amd64.NewLabel()
	if err := a.Bind(l); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(amd64.BytePtr(amd64.Base(amd64.Rax)), amd64.Al); err != nil {
		t.Fatal(err)
	}
	if err := a.Jmp(l); err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0x00, 0x00,
		0xe9, 0xf9, 0xff, 0xff, 0xff, // jmp -7, back to offset 0
	}
	if !bytes.Equal(sink.Bytes(), want) {
		t.Errorf("encoded % x, want % x", sink.Bytes(), want)
	}
}
