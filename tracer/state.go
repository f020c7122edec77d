package tracer

// walkState is the mutable recurrence carried between steps of a single
// walk (forward or backward). It is a local, not a Tracer field: every
// TraceLine call constructs its own forward and backward walkState values,
// which is what makes cloned tracers safe to drive concurrently over a
// shared read-only image (spec.md §9 "unscoped mutable recurrence state").
type walkState struct {
	curWidth     float64
	curAverage   float64
	curDirection Direction
	// wideLine mirrors the source's raw pre-clamp width measurement. It is
	// recorded for parity with the original recurrence but never consulted
	// by the walk itself.
	wideLine float64
}
