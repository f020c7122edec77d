package mask

// EllipseParams is an axis-aligned ellipse used to impose a row boundary.
// Rotation is not modelled.
type EllipseParams struct {
	CX int `yaml:"cx"`
	CY int `yaml:"cy"`
	A  int `yaml:"a"`
	B  int `yaml:"b"`
}

// IsValid reports whether the ellipse has positive semi-axes.
func (e EllipseParams) IsValid() bool {
	return e.A > 0 && e.B > 0
}
