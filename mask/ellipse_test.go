package mask

import "testing"

func TestEllipseParamsIsValid(t *testing.T) {
	cases := []struct {
		p    EllipseParams
		want bool
	}{
		{EllipseParams{CX: 5, CY: 5, A: 3, B: 2}, true},
		{EllipseParams{CX: 5, CY: 5, A: 0, B: 2}, false},
		{EllipseParams{CX: 5, CY: 5, A: 3, B: 0}, false},
		{EllipseParams{CX: 5, CY: 5, A: -1, B: 2}, false},
	}
	for _, c := range cases {
		if got := c.p.IsValid(); got != c.want {
			t.Errorf("IsValid(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}
