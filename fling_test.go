package picker

import (
	"math"
	"testing"
	"time"
)

func TestFlinger(t *testing.T) {
	base := time.Unix(0, 0)

	t.Run("IgnoresSlowVelocity", func(t *testing.T) {
		var f flinger
		f.start(base, minFlingVelocity-1)
		if f.active() {
			t.Error("fling started below the minimum velocity")
		}
	})

	t.Run("ClampsFastVelocity", func(t *testing.T) {
		var f flinger
		f.start(base, 20000)
		if f.v0 != maxFlingVelocity {
			t.Errorf("expected clamp to %d, got %v", maxFlingVelocity, f.v0)
		}
		f.start(base, -20000)
		if f.v0 != -maxFlingVelocity {
			t.Errorf("expected clamp to %d, got %v", -maxFlingVelocity, f.v0)
		}
	})

	t.Run("DecaysToRest", func(t *testing.T) {
		var f flinger
		f.start(base, 500)

		var total float64
		now := base
		for i := 0; f.active(); i++ {
			if i > 1000 {
				t.Fatal("fling never came to rest")
			}
			now = now.Add(16 * time.Millisecond)
			total += f.tick(now)
		}
		// Total travel converges on -v0/k.
		want := 500 / -flingDecay
		if math.Abs(total-want) > 1 {
			t.Errorf("expected total travel near %.1f, got %.1f", want, total)
		}
	})

	t.Run("DeltasMonotonicallyShrink", func(t *testing.T) {
		var f flinger
		f.start(base, 1000)
		prev := math.Inf(1)
		for i := 1; i <= 20; i++ {
			d := f.tick(base.Add(time.Duration(i) * 50 * time.Millisecond))
			if d < 0 || d > prev {
				t.Fatalf("tick %d: delta %v not shrinking from %v", i, d, prev)
			}
			prev = d
		}
	})
}

func TestAdjuster(t *testing.T) {
	base := time.Unix(0, 0)

	t.Run("ZeroTargetNoop", func(t *testing.T) {
		var a adjuster
		a.start(base, 0, 300*time.Millisecond)
		if a.active() {
			t.Error("zero-target adjustment should not start")
		}
	})

	t.Run("EaseOutFrontLoaded", func(t *testing.T) {
		var a adjuster
		a.start(base, -30, 300*time.Millisecond)
		half := a.tick(base.Add(150 * time.Millisecond))
		// Ease-out covers 87.5% of the distance in the first half.
		want := -30 * 0.875
		if math.Abs(half-want) > 1e-9 {
			t.Errorf("expected %.4f at the midpoint, got %.4f", want, half)
		}
	})

	t.Run("SumsExactlyToTarget", func(t *testing.T) {
		var a adjuster
		a.start(base, 30, 300*time.Millisecond)
		var total float64
		for i := 1; i <= 10; i++ {
			total += a.tick(base.Add(time.Duration(i) * 33 * time.Millisecond))
		}
		if total != 30 {
			t.Errorf("expected exact total 30, got %v", total)
		}
		if a.active() {
			t.Error("adjuster still active past its duration")
		}
	})

	t.Run("Remaining", func(t *testing.T) {
		var a adjuster
		a.start(base, 30, 300*time.Millisecond)
		a.tick(base.Add(150 * time.Millisecond))
		if got := a.remaining(); math.Abs(got-30*0.125) > 1e-9 {
			t.Errorf("expected remaining %.4f, got %.4f", 30*0.125, got)
		}
		a.stop()
		if a.remaining() != 0 {
			t.Errorf("expected 0 after stop, got %v", a.remaining())
		}
	})
}

func TestVelocityTracker(t *testing.T) {
	base := time.Unix(0, 0)

	t.Run("ConstantVelocity", func(t *testing.T) {
		var v velocityTracker
		v.reset()
		for i := 0; i < 5; i++ {
			v.sample(base.Add(time.Duration(i)*20*time.Millisecond), float64(i)*-5)
		}
		// -5 px every 20ms is -250 px/s.
		if got := v.velocity(); math.Abs(got-(-250)) > 1e-6 {
			t.Errorf("expected -250 px/s, got %v", got)
		}
	})

	t.Run("StaleSamplesDropped", func(t *testing.T) {
		var v velocityTracker
		v.reset()
		v.sample(base, 1000)
		for i := 0; i < 4; i++ {
			v.sample(base.Add(500*time.Millisecond+time.Duration(i)*20*time.Millisecond), float64(i)*2)
		}
		// The old outlier is outside the window; only the 100 px/s
		// tail should count.
		if got := v.velocity(); math.Abs(got-100) > 1e-6 {
			t.Errorf("expected 100 px/s, got %v", got)
		}
	})

	t.Run("TooFewSamples", func(t *testing.T) {
		var v velocityTracker
		v.reset()
		v.sample(base, 10)
		if got := v.velocity(); got != 0 {
			t.Errorf("expected 0 with a single sample, got %v", got)
		}
	})
}
