// Package mask maintains the per-row annular admissibility region used to
// bound an interferogram's working area: an outer ellipse that constrains
// the region from outside and an optional inner ellipse that cuts a hole
// in it (e.g. a telescope's central obstruction). All operations are total
// except Validate; invalid input is silently ignored rather than reported,
// matching spec.md §4.1's failure semantics.
package mask

import "errors"

// ErrInvalidDimensions is returned by New/Initialize for non-positive W or H.
var ErrInvalidDimensions = errors.New("mask: width and height must be positive")
