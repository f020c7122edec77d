package tracer

import (
	"math"

	"github.com/cocosip/go-fringe/raster"
)

const (
	coeffWide   = 1.5
	widthFloor  = 5.0
	widthMin    = 5.0
	widthMax    = 80.0
	closeGuard  = 5
)

// firstStep implements spec.md §4.2.2: from a seed pixel, produce the first
// two points of a walk (point1, point2) and the walkState to continue main
// stepping from, or a fatal *TraceError.
func firstStep(img raster.Image, seedX, seedY int, params Params) (point1, point2 Point, st walkState, err error) {
	if !inBounds(img, seedX, seedY) {
		return Point{}, Point{}, walkState{}, &TraceError{Kind: ErrInvalidSeed, X: seedX, Y: seedY}
	}

	w, dir, ok := measureWidth(img, seedX, seedY, params.InitialWidth)
	if !ok {
		return Point{}, Point{}, walkState{}, &TraceError{Kind: ErrWidthUnmeasurable, X: seedX, Y: seedY}
	}
	st.curWidth = math.Max(widthFloor, math.Floor(w))
	st.curDirection = dir
	st.curAverage = avgIntensity(img, seedX, seedY)
	st.wideLine = w

	dx, dy := st.curDirection.ToVector()
	searchDist := st.curWidth * params.MaxWidthChange
	p1x, p1y, ok := findMaxAlong(img, seedX, seedY, dx, dy, searchDist, st.curAverage, params.IntensityThreshold)
	if !ok {
		return Point{}, Point{}, walkState{}, &TraceError{Kind: ErrLowContrastStart, X: seedX, Y: seedY}
	}

	w, dir, ok = measureWidth(img, p1x, p1y, 0)
	if !ok {
		return Point{}, Point{}, walkState{}, &TraceError{Kind: ErrWidthUnmeasurable, X: p1x, Y: p1y}
	}
	st.curWidth = w
	st.curDirection = dir
	st.wideLine = w

	point1 = Point{X: p1x, Y: p1y, Width: st.curWidth, Intensity: avgIntensity(img, p1x, p1y)}

	pdx, pdy := st.curDirection.ToVector()
	perpDx, perpDy := -pdy, pdx
	magnitude := st.curWidth
	if pdx != 0 && pdy != 0 {
		magnitude = 0.707 * st.curWidth
	}
	offX := roundHalfAway(float64(perpDx) * magnitude)
	offY := roundHalfAway(float64(perpDy) * magnitude)
	p2x, p2y := seedX+offX, seedY+offY
	if !inBounds(img, p2x, p2y) {
		return Point{}, Point{}, walkState{}, &TraceError{Kind: ErrOutOfBoundsSecondPoint, X: p2x, Y: p2y}
	}
	p2x, p2y = centerPerpendicular(img, p2x, p2y, pdx, pdy, st.curWidth)

	point2 = Point{X: p2x, Y: p2y, Width: st.curWidth, Intensity: avgIntensity(img, p2x, p2y)}
	return point1, point2, st, nil
}

// mainStep implements spec.md §4.2.3: given the walk so far (at least two
// points) and its current state, it returns the next point with status
// None, or the final point with a terminal status (Boundary for the
// linStepToBoundary exit point, Closed for the point that came back near
// the start), or a fatal *TraceError. It never returns
// StepBudgetExhausted; the caller tracks the step budget.
func mainStep(img raster.Image, points []Point, st *walkState) (next Point, status TerminalStatus, err error) {
	if st.curWidth < 2.0 {
		pn := points[len(points)-1]
		return Point{}, None, &TraceError{Kind: ErrWidthCollapsed, X: pn.X, Y: pn.Y}
	}

	pn := points[len(points)-1]
	pnm1 := points[len(points)-2]

	w, _, ok := measureWidth(img, pn.X, pn.Y, 0)
	if !ok {
		return Point{}, None, &TraceError{Kind: ErrWidthUnmeasurable, X: pn.X, Y: pn.Y}
	}
	st.wideLine = w
	w = clampFloat(w, widthMin, widthMax)
	w = clampFloat(w, st.curWidth/coeffWide, st.curWidth*coeffWide)
	st.curWidth = w

	dx := pn.X - pnm1.X
	dy := pn.Y - pnm1.Y
	if absInt(dx) < 2 && absInt(dy) < 2 {
		if len(points) < 3 {
			return Point{}, None, &TraceError{Kind: ErrDirectionDegenerate, X: pn.X, Y: pn.Y}
		}
		pnm2 := points[len(points)-3]
		dx = pn.X - pnm2.X
		dy = pn.Y - pnm2.Y
		if absInt(dx) < 1 && absInt(dy) < 1 {
			return Point{}, None, &TraceError{Kind: ErrDirectionDegenerate, X: pn.X, Y: pn.Y}
		}
	}

	scale := stepScale(st.curWidth)
	mag := math.Hypot(float64(dx), float64(dy))
	target := st.curWidth * scale
	sx := roundHalfAway(float64(dx) / mag * target)
	sy := roundHalfAway(float64(dy) / mag * target)

	qx, qy := pn.X+sx, pn.Y+sy
	if !inBounds(img, qx, qy) {
		bx, by := linStepToBoundary(img, pn.X, pn.Y, qx, qy)
		return Point{X: bx, Y: by, Width: st.curWidth, Intensity: avgIntensity(img, bx, by)}, Boundary, nil
	}

	qx2, qy2 := centerPerpendicular(img, qx, qy, sign(sx), sign(sy), st.curWidth)
	if st.curWidth > 20 {
		rdx, rdy := qx2-qx, qy2-qy
		qx2, qy2 = centerPerpendicular(img, qx2, qy2, rdx, rdy, st.curWidth)
	}

	result := Point{X: qx2, Y: qy2, Width: st.curWidth, Intensity: avgIntensity(img, qx2, qy2)}

	if len(points) > closeGuard {
		first := points[0]
		d := math.Hypot(float64(qx2-first.X), float64(qy2-first.Y))
		if d < st.curWidth {
			return result, Closed, nil
		}
	}
	return result, None, nil
}

func stepScale(w float64) float64 {
	switch {
	case w <= 5:
		return 1.0
	case w <= 10:
		return 0.8
	case w <= 20:
		return 0.6
	default:
		return 0.4
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// roundHalfAway rounds to the nearest integer, ties away from zero —
// equivalent to the ceil/floor-around-half rule of spec.md §4.2.3 step 4.
func roundHalfAway(v float64) int {
	if v >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return -int(math.Floor(-v + 0.5))
}
