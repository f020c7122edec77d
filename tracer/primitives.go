package tracer

import (
	"math"

	"github.com/cocosip/go-fringe/internal/numeric"
	"github.com/cocosip/go-fringe/raster"
)

// avgIntensity is the fundamental sample used everywhere in the tracer: the
// arithmetic mean of the pixel at (x, y) and its up-to-eight in-bounds
// 8-neighbours. If (x, y) itself is out of bounds the result is 0.
func avgIntensity(img raster.Image, x, y int) float64 {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0
	}
	sum := float64(img.At(x, y))
	count := 1
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && ny >= 0 && nx < img.Width && ny < img.Height {
				sum += float64(img.At(nx, ny))
				count++
			}
		}
	}
	return sum / float64(count)
}

// measureWidth walks outward from (x, y) in each of the four compass
// directions, both ways, counting pixels (1.0 per cardinal step, 1.42 per
// diagonal step) while avgIntensity stays above 0.8*avgIntensity(x,y) and
// the step count stays within the search bound. It returns the minimum
// summed width over the four directions and the direction that achieved
// it.
//
// searchBound caps the per-direction step count at min(img.Width/2,
// searchBound) when searchBound is positive; a non-positive searchBound
// leaves the cap at img.Width/2. Callers that have no measured curWidth
// yet pass Params.InitialWidth as searchBound, bounding the very first
// search before any real measurement exists; subsequent calls, which
// already have a measured curWidth to reason about, pass 0.
//
// Fails (ok=false) if that minimum is below 2 pixels — the point is not
// inside a defined ridge. A half-walk that reaches the step cap or leaves
// the image without dropping below threshold counts as saturated (it found
// no falling edge). On a perfectly flat image every direction's walk
// saturates that way, so the "minimum" is a saturated walk, not an edge-to-
// edge fringe width: measureWidth
// treats a walk that never found a falling edge in any direction as
// unmeasurable too, rather than reporting a several-hundred-pixel width
// (spec.md §8 scenario 4's chosen behavior).
func measureWidth(img raster.Image, x, y int, searchBound float64) (width float64, dir Direction, ok bool) {
	center := avgIntensity(img, x, y)
	threshold := 0.8 * center
	maxStep := img.Width / 2
	if searchBound > 0 && int(searchBound) < maxStep {
		maxStep = int(searchBound)
	}

	best := math.Inf(1)
	bestDir := Vertical
	bestSaturated := true
	for _, d := range directions {
		dx, dy := d.ToVector()
		stepCost := 1.0
		if dx != 0 && dy != 0 {
			stepCost = 1.42
		}
		w, saturated := walkWidth(img, x, y, dx, dy, threshold, maxStep, stepCost)
		if w < best {
			best = w
			bestDir = d
			bestSaturated = saturated
		}
	}
	if best < 2 || bestSaturated {
		return 0, 0, false
	}
	return best, bestDir, true
}

func walkWidth(img raster.Image, x, y, dx, dy int, threshold float64, maxStep int, stepCost float64) (total float64, saturated bool) {
	s1, sat1 := walkHalf(img, x, y, dx, dy, threshold, maxStep, stepCost)
	s2, sat2 := walkHalf(img, x, y, -dx, -dy, threshold, maxStep, stepCost)
	return s1 + s2, sat1 && sat2
}

func walkHalf(img raster.Image, x, y, dx, dy int, threshold float64, maxStep int, stepCost float64) (sum float64, saturated bool) {
	cx, cy := x, y
	for steps := 0; steps < maxStep; steps++ {
		cx += dx
		cy += dy
		if !inBounds(img, cx, cy) {
			return sum, true
		}
		if avgIntensity(img, cx, cy) <= threshold {
			return sum, false
		}
		sum += stepCost
	}
	return sum, true
}

// findMaxAlong walks floor(searchDist+0.5) integer steps in (dx, dy) from
// (x, y) (not counting the starting point as a step), tracking the
// position of maximum avgIntensity seen, including the start. It fails if
// that maximum is below curAverage*intensityThreshold; on success it
// returns the position of the maximum.
func findMaxAlong(img raster.Image, x, y, dx, dy int, searchDist, curAverage, intensityThreshold float64) (nx, ny int, ok bool) {
	steps := int(math.Floor(searchDist + 0.5))
	bestVal := avgIntensity(img, x, y)
	bestX, bestY := x, y
	cx, cy := x, y
	for i := 1; i <= steps; i++ {
		cx += dx
		cy += dy
		v := avgIntensity(img, cx, cy)
		if v > bestVal {
			bestVal = v
			bestX, bestY = cx, cy
		}
	}
	if bestVal < curAverage*intensityThreshold {
		return x, y, false
	}
	return bestX, bestY, true
}

// centerPerpendicular snaps (x, y) sideways onto the local intensity
// maximum transverse to (dx, dy): the perpendicular to the sign-normalized
// (dx, dy) is (-dy, dx). It scans i in [1, ceil(curWidth)] on both sides
// and moves to the global argmax over the scanned window (start included).
// Always succeeds.
func centerPerpendicular(img raster.Image, x, y, dx, dy int, curWidth float64) (nx, ny int) {
	px, py := -sign(dy), sign(dx)
	best := avgIntensity(img, x, y)
	bestX, bestY := x, y
	n := int(math.Ceil(curWidth))
	for i := 1; i <= n; i++ {
		for _, s := range [2]int{1, -1} {
			cx := x + s*i*px
			cy := y + s*i*py
			v := avgIntensity(img, cx, cy)
			if v > best {
				best = v
				bestX, bestY = cx, cy
			}
		}
	}
	return bestX, bestY
}

// linStepToBoundary walks from (x1, y1) toward (x2, y2) one grid step per
// iteration and returns the first position that falls outside the image.
// If (x2, y2) is itself in-bounds, it is returned unchanged.
func linStepToBoundary(img raster.Image, x1, y1, x2, y2 int) (int, int) {
	if inBounds(img, x2, y2) {
		return x2, y2
	}
	dx, dy := x2-x1, y2-y1
	steps := numeric.Max(numeric.Abs(dx), numeric.Abs(dy))
	if steps == 0 {
		return x1, y1
	}
	sx := float64(dx) / float64(steps)
	sy := float64(dy) / float64(steps)
	cx, cy := float64(x1), float64(y1)
	px, py := x1, y1
	for i := 1; i <= steps; i++ {
		cx += sx
		cy += sy
		px, py = int(math.Round(cx)), int(math.Round(cy))
		if !inBounds(img, px, py) {
			return px, py
		}
	}
	return px, py
}

func inBounds(img raster.Image, x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Width && y < img.Height
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
