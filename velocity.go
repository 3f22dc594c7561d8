package picker

import "time"

// velocityWindow is how far back samples count toward the velocity
// estimate. Old samples describe a different part of the gesture and
// would drag the estimate toward stale motion.
const velocityWindow = 100 * time.Millisecond

const velocitySamples = 16

type velocitySample struct {
	t time.Time
	y float64
}

// velocityTracker estimates pointer velocity from recent position
// samples using a least-squares fit over a short trailing window.
type velocityTracker struct {
	samples [velocitySamples]velocitySample
	head    int
	count   int
}

func (v *velocityTracker) reset() {
	v.head = 0
	v.count = 0
}

// sample records a pointer position at the given time.
func (v *velocityTracker) sample(t time.Time, y float64) {
	v.samples[v.head] = velocitySample{t: t, y: y}
	v.head = (v.head + 1) % velocitySamples
	if v.count < velocitySamples {
		v.count++
	}
}

// velocity returns the estimated velocity in pixels per second.
// Returns 0 when there are fewer than two usable samples.
func (v *velocityTracker) velocity() float64 {
	if v.count < 2 {
		return 0
	}
	newest := v.samples[(v.head+velocitySamples-1)%velocitySamples]
	cutoff := newest.t.Add(-velocityWindow)

	// Least-squares slope of y over t for samples inside the window,
	// with time measured in seconds relative to the newest sample.
	var n float64
	var sumT, sumY, sumTT, sumTY float64
	for i := 0; i < v.count; i++ {
		s := v.samples[(v.head+velocitySamples-1-i)%velocitySamples]
		if s.t.Before(cutoff) {
			break
		}
		dt := s.t.Sub(newest.t).Seconds()
		n++
		sumT += dt
		sumY += s.y
		sumTT += dt * dt
		sumTY += dt * s.y
	}
	if n < 2 {
		return 0
	}
	denom := n*sumTT - sumT*sumT
	if denom == 0 {
		return 0
	}
	return (n*sumTY - sumT*sumY) / denom
}
