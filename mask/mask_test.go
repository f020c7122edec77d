package mask

import "testing"

func TestInitializeDefaultRoundtrip(t *testing.T) {
	m, err := New(10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			want := x >= 1 && x <= 8
			if got := m.IsInside(x, y); got != want {
				t.Errorf("IsInside(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestInitializeInvalidDimensions(t *testing.T) {
	if _, err := New(0, 4); err != ErrInvalidDimensions {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := New(4, -1); err != ErrInvalidDimensions {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestOuterEllipseShrink(t *testing.T) {
	m, err := New(10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 3, B: 2}, true)

	row0 := m.RowBoundary(0)
	if row0.LeftOuter != 0 || row0.RightOuter != 0 {
		t.Errorf("row 0: got lo=%d ro=%d, want cleared", row0.LeftOuter, row0.RightOuter)
	}
	row1 := m.RowBoundary(1)
	if row1.LeftOuter != 3 || row1.RightOuter != 7 {
		t.Errorf("row 1: got lo=%d ro=%d, want lo=3 ro=7", row1.LeftOuter, row1.RightOuter)
	}
	row2 := m.RowBoundary(2)
	if row2.LeftOuter != 2 || row2.RightOuter != 8 {
		t.Errorf("row 2: got lo=%d ro=%d, want lo=2 ro=8", row2.LeftOuter, row2.RightOuter)
	}
}

func TestInnerHoleContainment(t *testing.T) {
	m, err := New(10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 3, B: 2}, true)
	m.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 2, B: 1}, false)

	row2 := m.RowBoundary(2)
	if row2.LeftInner != 3 || row2.RightInner != 7 {
		t.Errorf("row 2: got li=%d ri=%d, want li=3 ri=7", row2.LeftInner, row2.RightInner)
	}

	if m.IsInside(5, 2) {
		t.Error("IsInside(5,2) should be false (inside hole)")
	}
	if !m.IsInside(2, 2) {
		t.Error("IsInside(2,2) should be true")
	}
	if !m.IsInside(8, 2) {
		t.Error("IsInside(8,2) should be true")
	}
}

func TestOuterMonotoneShrinking(t *testing.T) {
	m, _ := New(40, 40)
	m.SetEllipse(EllipseParams{CX: 20, CY: 20, A: 15, B: 15}, true)
	before := make([]RowBoundary, 40)
	for y := 0; y < 40; y++ {
		before[y] = m.RowBoundary(y)
	}
	m.SetEllipse(EllipseParams{CX: 20, CY: 20, A: 10, B: 10}, true)
	for y := 0; y < 40; y++ {
		after := m.RowBoundary(y)
		b := before[y]
		if !b.hasOuter() {
			continue
		}
		if !after.hasOuter() {
			continue // shrunk to nothing is still a subset
		}
		if after.LeftOuter < b.LeftOuter || after.RightOuter > b.RightOuter {
			t.Errorf("row %d: outer band grew: before=[%d,%d] after=[%d,%d]",
				y, b.LeftOuter, b.RightOuter, after.LeftOuter, after.RightOuter)
		}
	}
}

func TestResetAllThenInitialize(t *testing.T) {
	m, _ := New(10, 4)
	m.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 3, B: 2}, true)
	m.ResetAll()
	if err := m.Initialize(10, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			want := x >= 1 && x <= 8
			if got := m.IsInside(x, y); got != want {
				t.Errorf("IsInside(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCopyFromIsDeep(t *testing.T) {
	src, _ := New(10, 4)
	src.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 3, B: 2}, true)

	dst := &Mask{}
	dst.CopyFrom(src)

	src.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 1, B: 1}, true)

	dstRow := dst.RowBoundary(2)
	if dstRow.LeftOuter != 2 || dstRow.RightOuter != 8 {
		t.Errorf("copy mutated by later source edits: got lo=%d ro=%d", dstRow.LeftOuter, dstRow.RightOuter)
	}
}

func TestValidateAfterEllipses(t *testing.T) {
	m, _ := New(20, 20)
	m.SetEllipse(EllipseParams{CX: 10, CY: 10, A: 8, B: 8}, true)
	m.SetEllipse(EllipseParams{CX: 10, CY: 10, A: 3, B: 3}, false)
	if !m.Validate() {
		t.Error("expected mask to validate after outer+inner ellipses")
	}
}

func TestSetEllipseInvalidParamsNoOp(t *testing.T) {
	m, _ := New(10, 4)
	before := m.RowBoundary(2)
	m.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 0, B: 2}, true)
	after := m.RowBoundary(2)
	if before != after {
		t.Errorf("invalid ellipse should be a no-op: before=%+v after=%+v", before, after)
	}
}

func TestResetOuterAndInner(t *testing.T) {
	m, _ := New(10, 4)
	m.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 3, B: 2}, true)
	m.SetEllipse(EllipseParams{CX: 5, CY: 2, A: 2, B: 1}, false)

	m.ResetInner()
	row2 := m.RowBoundary(2)
	if row2.LeftInner != 0 || row2.RightInner != 0 {
		t.Errorf("ResetInner left li=%d ri=%d", row2.LeftInner, row2.RightInner)
	}
	if row2.LeftOuter != 2 || row2.RightOuter != 8 {
		t.Errorf("ResetInner disturbed outer band: lo=%d ro=%d", row2.LeftOuter, row2.RightOuter)
	}

	m.ResetOuter()
	row2 = m.RowBoundary(2)
	if row2.LeftOuter != 0 || row2.RightOuter != 0 {
		t.Errorf("ResetOuter left lo=%d ro=%d", row2.LeftOuter, row2.RightOuter)
	}
}

func TestRowBoundaryOutOfRange(t *testing.T) {
	m, _ := New(10, 4)
	got := m.RowBoundary(100)
	if got != (RowBoundary{}) {
		t.Errorf("RowBoundary(100) = %+v, want empty record", got)
	}
	got = m.RowBoundary(-1)
	if got != (RowBoundary{}) {
		t.Errorf("RowBoundary(-1) = %+v, want empty record", got)
	}
}
