package picker

import (
	"math"
	"time"
)

// Fling physics constants, in pixels per second.
const (
	minFlingVelocity = 50
	maxFlingVelocity = 8000

	// flingDecay is the drag coefficient k in x''(t) = k*x'(t).
	flingDecay = -4.2

	// restVelocity is the speed below which a fling is considered done.
	restVelocity = 1
)

// flinger simulates a decelerating free scroll after a high-velocity
// release. The point mass decelerates under a drag force proportional
// to velocity:
//
//	x''(t) = k*x'(t)
//
// which with x(0) = 0 and x'(0) = v0 integrates to
//
//	x(t) = v0*e^(k*t)/k - v0/k
type flinger struct {
	x  float64 // displacement emitted so far
	t0 time.Time
	v0 float64 // initial velocity, pixels per second
}

// start begins a fling with the given initial velocity, clamped to the
// maximum. Velocities below the minimum are ignored.
func (f *flinger) start(now time.Time, v0 float64) {
	if math.Abs(v0) < minFlingVelocity {
		return
	}
	if v0 > maxFlingVelocity {
		v0 = maxFlingVelocity
	} else if v0 < -maxFlingVelocity {
		v0 = -maxFlingVelocity
	}
	f.t0 = now
	f.v0 = v0
	f.x = 0
}

func (f *flinger) active() bool {
	return f.v0 != 0
}

func (f *flinger) stop() {
	*f = flinger{}
}

// tick returns the displacement since the previous tick. Once the
// instantaneous velocity decays below restVelocity the fling deactivates.
func (f *flinger) tick(now time.Time) float64 {
	if !f.active() {
		return 0
	}
	t := now.Sub(f.t0).Seconds()
	if t < 0 {
		t = 0
	}
	ekt := math.Exp(flingDecay * t)
	x := f.v0*ekt/flingDecay - f.v0/flingDecay
	d := x - f.x
	f.x = x
	if v := f.v0 * ekt; v < restVelocity && v > -restVelocity {
		f.v0 = 0
	}
	return d
}

// adjuster animates a fixed displacement over a fixed duration with
// ease-out cubic interpolation. Used for snapping the wheel to the
// nearest rest offset and for single-step increments.
type adjuster struct {
	target   float64
	emitted  float64
	t0       time.Time
	duration time.Duration
	running  bool
}

// start begins an adjustment of target pixels over the given duration.
// A zero target is a no-op.
func (a *adjuster) start(now time.Time, target float64, duration time.Duration) {
	if target == 0 || duration <= 0 {
		return
	}
	a.target = target
	a.emitted = 0
	a.t0 = now
	a.duration = duration
	a.running = true
}

func (a *adjuster) active() bool {
	return a.running
}

func (a *adjuster) stop() {
	*a = adjuster{}
}

// remaining returns the displacement not yet emitted.
func (a *adjuster) remaining() float64 {
	if !a.running {
		return 0
	}
	return a.target - a.emitted
}

// tick returns the displacement since the previous tick. On reaching the
// duration the full remaining displacement is emitted and the adjuster
// deactivates, so the sum of all deltas is exactly the target.
func (a *adjuster) tick(now time.Time) float64 {
	if !a.running {
		return 0
	}
	u := now.Sub(a.t0).Seconds() / a.duration.Seconds()
	if u >= 1 {
		d := a.target - a.emitted
		a.stop()
		return d
	}
	if u < 0 {
		u = 0
	}
	inv := 1 - u
	x := a.target * (1 - inv*inv*inv)
	d := x - a.emitted
	a.emitted = x
	return d
}
