package amd64

import "testing"

func TestPointerShapes(t *testing.T) {
	scenarios := []struct {
		name string
		ptr  Ptr
		kind ptrKind
	}{
		{"disp8", Disp8(1), ptrDisp8},
		{"disp32", Disp32(1), ptrDisp32},
		{"base", Base(Rax), ptrBase},
		{"base+disp8", Base(Rax).Disp8(1), ptrBaseDisp8},
		{"base-disp8", Base(Rbp).Disp8(-8), ptrBaseDisp8},
		{"base+disp32", Base(Rax).Disp32(1), ptrBaseDisp32},
		{"index", Index(Rcx, Scale2), ptrIndex},
		{"index+disp8", Index(Rcx, Scale2).Disp8(1), ptrIndexDisp8},
		{"index+disp32", Index(Rcx, Scale2).Disp32(1), ptrIndexDisp32},
		{"base+index", Base(Rax).Index(Rcx, Scale2), ptrBaseIndex},
		{"base+index+disp8", Base(Rax).Index(Rcx, Scale2).Disp8(1), ptrBaseIndexDisp8},
		{"base+index+disp32", Base(Rax).Index(Rcx, Scale2).Disp32(1), ptrBaseIndexDisp32},
		{"index after disp8", Base(Rax).Disp8(1).Index(Rcx, Scale2), ptrBaseIndexDisp8},
		{"index after disp32", Base(Rax).Disp32(1).Index(Rcx, Scale2), ptrBaseIndexDisp32},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			if scenario.ptr.kind != scenario.kind {
				t.Errorf("kind = %d, want %d", scenario.ptr.kind, scenario.kind)
			}
		})
	}
}

func TestPointerNegativeDisplacement(t *testing.T) {
	p := Base(Rbp).Disp8(-8)
	if p.disp != -8 {
		t.Errorf("disp = %d, want -8", p.disp)
	}
	q := Base(Rbp).Disp32(-0x1000)
	if q.disp != -0x1000 {
		t.Errorf("disp = %d, want %d", q.disp, -0x1000)
	}
}

func TestSizedPointers(t *testing.T) {
	p := Base(Rax)
	if BytePtr(p).Ptr != p || WordPtr(p).Ptr != p || DWordPtr(p).Ptr != p || QWordPtr(p).Ptr != p {
		t.Error("sized wrappers must carry the wrapped pointer unchanged")
	}

	// The dynamic family produces the same values as Operand.
	if op, ok := BytePointer(p).(Mem8); !ok || op.Ptr != p {
		t.Error("BytePointer should produce a Mem8 operand")
	}
	if op, ok := QWordPointer(p).(Mem64); !ok || op.Ptr != p {
		t.Error("QWordPointer should produce a Mem64 operand")
	}
}
