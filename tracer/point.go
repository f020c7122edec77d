package tracer

// Point is one sample along a traced ridge: integer pixel position plus
// the locally measured fringe width (minimum diameter in pixels across the
// four cardinal/diagonal directions) and 9-neighbour mean intensity.
type Point struct {
	X, Y      int
	Width     float64
	Intensity float64
}
