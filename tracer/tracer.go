// Package tracer implements the Fringe Tracer: given a grayscale raster and
// a seed pixel at which a fringe passes, it produces an ordered pixel
// sequence along the ridge of that fringe (spec.md §4.2).
package tracer

import (
	"errors"

	"github.com/google/uuid"

	"github.com/cocosip/go-fringe/raster"
)

// ErrNoImage is returned by TraceLine when no image has been set.
var ErrNoImage = errors.New("tracer: no image set")

// Result is the outcome of a single TraceLine call: the assembled point
// sequence plus the terminal status each direction ended on. ID is a fresh
// correlation identifier, useful for tying a trace to a log line or a
// diagnostics report when many seeds are traced in a batch.
type Result struct {
	Points         []Point
	ForwardStatus  TerminalStatus
	BackwardStatus TerminalStatus
	ID             uuid.UUID
}

// Tracer holds a non-owning view of a raster and a configuration; it is
// otherwise stateless between TraceLine calls; all recurrence state lives
// in a local walkState for the duration of one call (spec.md §5, §9).
type Tracer struct {
	img       raster.Image
	hasImage  bool
	params    Params
	lastError error
}

// New returns a Tracer configured with DefaultParams.
func New() *Tracer {
	return &Tracer{params: DefaultParams()}
}

// SetImage installs a non-owning view of the raster to trace against. The
// caller must keep the backing buffer alive and unmodified for the
// duration of any TraceLine call that borrows it.
func (t *Tracer) SetImage(img raster.Image) {
	t.img = img
	t.hasImage = true
}

// SetParams replaces the tracer's configuration wholesale.
func (t *Tracer) SetParams(p Params) {
	t.params = p
}

// Params returns the tracer's current configuration by value; mutate the
// returned copy and pass it back to SetParams to change it.
func (t *Tracer) Params() Params {
	return t.params
}

// LastError returns the error from the most recent failed TraceLine call,
// or nil if the most recent call succeeded (or none has been made).
func (t *Tracer) LastError() error {
	return t.lastError
}

// Clone returns a new Tracer sharing this one's image view and a copy of
// its parameters, suitable for driving a concurrent trace over the same
// read-only image from another goroutine.
func (t *Tracer) Clone() *Tracer {
	return &Tracer{img: t.img, hasImage: t.hasImage, params: t.params}
}

// TraceLine runs the ridge-following walk from (seedX, seedY) per
// spec.md §4.2.2-§4.2.4. The backward walk runs only when
// Params.Bidirectional is set and the forward walk produced points. A
// forward walk that fails in its first step produces none, so no backward
// walk is attempted and the call fails with that error. A fatal error later
// in either walk keeps the points collected so far; the overall call only
// fails if the combined result has fewer than 2 points.
func (t *Tracer) TraceLine(seedX, seedY int) (Result, error) {
	if !t.hasImage {
		t.lastError = ErrNoImage
		return Result{}, ErrNoImage
	}

	result := Result{ID: newTraceID()}

	forward, forwardStatus, ferr := t.walk(seedX, seedY, nil)
	result.ForwardStatus = forwardStatus

	var backward []Point
	backwardStatus := None
	if t.params.Bidirectional {
		var seedPoint0 Point
		var reflected Point
		if len(forward) > 0 {
			seedPoint0 = Point{X: seedX, Y: seedY, Width: forward[0].Width, Intensity: avgIntensity(t.img, seedX, seedY)}
			reflected = Point{
				X:         2*seedX - forward[0].X,
				Y:         2*seedY - forward[0].Y,
				Width:     forward[0].Width,
				Intensity: avgIntensity(t.img, 2*seedX-forward[0].X, 2*seedY-forward[0].Y),
			}
			backward, backwardStatus, _ = t.walk(0, 0, &restart{first: seedPoint0, second: reflected, width: forward[0].Width})
		}
	}
	result.BackwardStatus = backwardStatus

	points := make([]Point, 0, len(forward)+len(backward))
	for i := len(backward) - 1; i >= 0; i-- {
		points = append(points, backward[i])
	}
	points = append(points, forward...)
	result.Points = points

	if len(points) < 2 {
		err := ferr
		if err == nil {
			err = &TraceError{Kind: ErrNoTrace, X: seedX, Y: seedY}
		}
		t.lastError = err
		return Result{}, err
	}

	t.lastError = nil
	return result, nil
}

// restart carries the two seed points a backward walk begins from, since
// it does not re-run firstStep's width measurement at the image seed.
type restart struct {
	first, second Point
	width         float64
}

// walk runs firstStep (unless r is non-nil, in which case the walk is
// restarted from r's two points) followed by mainStep until a terminal
// condition, the step budget, or a fatal error.
func (t *Tracer) walk(seedX, seedY int, r *restart) ([]Point, TerminalStatus, error) {
	var points []Point
	var st walkState

	if r == nil {
		p1, p2, state, err := firstStep(t.img, seedX, seedY, t.params)
		if err != nil {
			return nil, Fatal, err
		}
		points = []Point{p1, p2}
		st = state
	} else {
		points = []Point{r.first, r.second}
		w, dir, ok := measureWidth(t.img, r.second.X, r.second.Y, t.params.InitialWidth)
		if !ok {
			w = r.width
			dir = Vertical
		}
		st = walkState{curWidth: w, curDirection: dir, curAverage: avgIntensity(t.img, r.first.X, r.first.Y)}
	}

	status := None
	for len(points) < t.params.MaxSteps {
		next, s, err := mainStep(t.img, points, &st)
		if err != nil {
			return points, Fatal, err
		}
		if s == Boundary || s == Closed {
			points = append(points, next)
			status = s
			break
		}
		points = append(points, next)
		if len(points) >= t.params.MaxSteps {
			status = StepBudgetExhausted
		}
	}
	return points, status, nil
}

func newTraceID() uuid.UUID {
	return uuid.New()
}
