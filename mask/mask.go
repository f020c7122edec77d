package mask

import "fmt"

// RowBoundary is the four-coordinate admissibility record for one scanline:
// the admissible band is [LeftOuter, RightOuter] with the sub-interval
// [LeftInner, RightInner] excluded as a hole. LeftOuter == RightOuter == 0
// means the outer boundary is unset for this row; LeftInner == RightInner
// == 0 means the row has no inner hole.
type RowBoundary struct {
	LeftOuter  int
	LeftInner  int
	RightInner int
	RightOuter int
}

func (b RowBoundary) hasOuter() bool { return b.LeftOuter != 0 || b.RightOuter != 0 }
func (b RowBoundary) hasInner() bool { return b.LeftInner != 0 || b.RightInner != 0 }

// Mask is the per-row annular working-area boundary over an image of fixed
// (Width, Height). It is a plain value type: mutations on one holder never
// propagate to a CopyFrom destination or source.
type Mask struct {
	width, height int
	rows          []RowBoundary
	outerImposed  bool
}

// New constructs a Mask for an image of the given size, seeded with the
// default full-frame-minus-border region (see Initialize).
func New(width, height int) (*Mask, error) {
	m := &Mask{}
	if err := m.Initialize(width, height); err != nil {
		return nil, err
	}
	return m, nil
}

// Initialize resets every row to the default admissible band
// (LeftOuter=1, RightOuter=Width-2, no inner hole). Fails only on
// non-positive dimensions.
func (m *Mask) Initialize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	m.width = width
	m.height = height
	m.rows = make([]RowBoundary, height)
	for i := range m.rows {
		m.rows[i] = RowBoundary{LeftOuter: 1, RightOuter: width - 2}
	}
	m.outerImposed = false
	return nil
}

// Clear sets every row to the all-zero record (no region established).
func (m *Mask) Clear() {
	for i := range m.rows {
		m.rows[i] = RowBoundary{}
	}
	m.outerImposed = false
}

// Width returns the mask's image width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask's image height.
func (m *Mask) Height() int { return m.height }

// SetEllipse imposes the ellipse as either the outer constraint
// (outer=true) or the inner hole constraint (outer=false). Invalid
// ellipse parameters (non-positive semi-axes) are silently ignored.
func (m *Mask) SetEllipse(p EllipseParams, outer bool) {
	if !p.IsValid() {
		return
	}
	if outer {
		m.imposeOuter(p)
		m.outerImposed = true
	} else {
		m.imposeInner(p)
	}
}

// RowBoundary returns the boundary record for row y, or the zero-value
// empty record if y is out of range. This deliberately returns a by-value
// record rather than a pointer into shared state: there is no mutable
// sentinel to alias (spec.md §9 design note).
func (m *Mask) RowBoundary(y int) RowBoundary {
	if y < 0 || y >= len(m.rows) {
		return RowBoundary{}
	}
	return m.rows[y]
}

// IsInsideOuter reports whether x falls within row y's outer band. If the
// row's outer boundary is unset, the result depends on whether any outer
// ellipse has ever been imposed on this mask: if none ever has, the row is
// open (fully admissible); if one has (and this row was excluded by it),
// the row is closed.
func (m *Mask) IsInsideOuter(x, y int) bool {
	row := m.RowBoundary(y)
	if !row.hasOuter() {
		return !m.outerImposed
	}
	return x >= row.LeftOuter && x <= row.RightOuter
}

// IsInsideInner reports whether x falls within row y's inner hole. Absence
// of an inner hole is vacuously false.
func (m *Mask) IsInsideInner(x, y int) bool {
	row := m.RowBoundary(y)
	if !row.hasInner() {
		return false
	}
	return x >= row.LeftInner && x <= row.RightInner
}

// IsInside reports whether (x, y) is in the admissible region: inside the
// outer band and not inside the inner hole.
func (m *Mask) IsInside(x, y int) bool {
	return m.IsInsideOuter(x, y) && !m.IsInsideInner(x, y)
}

// ResetOuter clears the outer boundary on every row.
func (m *Mask) ResetOuter() {
	for i := range m.rows {
		m.rows[i].LeftOuter = 0
		m.rows[i].RightOuter = 0
	}
	m.outerImposed = false
}

// ResetInner clears the inner hole on every row.
func (m *Mask) ResetInner() {
	for i := range m.rows {
		m.rows[i].LeftInner = 0
		m.rows[i].RightInner = 0
	}
}

// ResetAll clears both the outer boundary and inner hole on every row.
func (m *Mask) ResetAll() {
	m.ResetOuter()
	m.ResetInner()
}

// CopyFrom deep-copies dimensions and all row boundaries from other.
// Mutating other afterward does not affect the receiver.
func (m *Mask) CopyFrom(other *Mask) {
	if other == nil {
		return
	}
	m.width = other.width
	m.height = other.height
	m.outerImposed = other.outerImposed
	m.rows = make([]RowBoundary, len(other.rows))
	copy(m.rows, other.rows)
}

// Validate verifies the §3 row invariants hold for every row whose outer
// boundary is set: 0 <= LeftOuter <= LeftInner < RightInner <= RightOuter <
// Width, degenerating to LeftOuter < RightOuter when no inner hole is set.
// Rows with no outer boundary are not checked, even if they carry a hole.
func (m *Mask) Validate() bool {
	for _, row := range m.rows {
		if !row.hasOuter() {
			continue
		}
		if row.LeftOuter < 0 || row.RightOuter >= m.width {
			return false
		}
		if row.hasInner() {
			if !(row.LeftOuter <= row.LeftInner && row.LeftInner < row.RightInner && row.RightInner <= row.RightOuter) {
				return false
			}
		} else if row.LeftOuter >= row.RightOuter {
			return false
		}
	}
	return true
}

// String renders a compact per-row debug dump, one line per row.
func (m *Mask) String() string {
	s := fmt.Sprintf("mask %dx%d (outerImposed=%v)\n", m.width, m.height, m.outerImposed)
	for y, row := range m.rows {
		s += fmt.Sprintf("  y=%3d lo=%4d li=%4d ri=%4d ro=%4d\n", y, row.LeftOuter, row.LeftInner, row.RightInner, row.RightOuter)
	}
	return s
}
