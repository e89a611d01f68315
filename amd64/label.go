package amd64

import "encoding/binary"

// holeKind - the width of a displacement hole left by a forward branch.
// Label branches always reserve rel32 holes and Bind patches every hole
// as four bytes; holeRel8 is declared but no emitter creates it.
type holeKind uint8

const (
	holeRel8 holeKind = iota
	holeRel32
)

// hole - an unresolved branch site: the sink offset of the displacement
// field and its width.
type hole struct {
	offset uint64
	kind   holeKind
}

// Label - a symbolic branch target. A label starts unbound; any number
// of branches may name it before Bind fixes its address, each leaving a
// four-byte hole behind. The label holds the hole list and the sink
// holds the bytes; neither refers to the other, so labels can be passed
// around freely.
//
// Discarding a label that still has pending holes leaves the placeholder
// zero displacements in the sink; the library does not track live labels
// and cannot diagnose this. Callers that want the guarantee can assert
// Pending() == 0 before dropping a label.
type Label struct {
	addr    uint64
	bound   bool
	pending []hole
}

// NewLabel - returns a fresh unbound label. The zero value is also
// ready to use.
func NewLabel() *Label {
	return &Label{}
}

// Bound - whether the label has been bound to a position.
func (l *Label) Bound() bool {
	return l.bound
}

// Pending - the number of forward branches still waiting for the label
// to bind.
func (l *Label) Pending() int {
	return len(l.pending)
}

// Bind - fixes the label to the current sink position and patches every
// pending branch site with the now-known rel32 displacement. Binding a
// label twice fails with ErrRedefinedLabel.
func (a *Assembler) Bind(l *Label) error {
	if l.bound {
		return ErrRedefinedLabel
	}

	pos := a.Position()
	for _, h := range l.pending {
		buf, err := a.sink.MutableRange(h.offset, 4)
		if err != nil {
			return err
		}
		disp := int64(pos) - (int64(h.offset) + 4)
		binary.LittleEndian.PutUint32(buf, uint32(int32(disp)))
	}
	l.pending = nil
	l.addr = pos
	l.bound = true
	return nil
}
