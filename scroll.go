package picker

import (
	"math"
	"time"
)

// scrollBy applies a pixel delta to the wheel. Every time the offset
// drifts more than half an element from rest, the window shifts one
// entry and the middle value is committed with notification; fast drags
// crossing several thresholds in one delta shift repeatedly. With wrap
// disabled the offset snaps back to rest at the range edges, a hard
// stop.
//
// Positive dy moves the wheel content downward, toward lower values.
func (p *NumberPicker) scrollBy(dy float64) {
	if dy == 0 || !p.layoutValid() {
		return
	}
	if !p.rng.wrapEnabled() {
		if dy > 0 && p.wheel.middle() <= p.rng.min {
			p.offset = p.initialOffset
			return
		}
		if dy < 0 && p.wheel.middle() >= p.rng.max {
			p.offset = p.initialOffset
			return
		}
	}
	p.offset += dy
	half := p.elementHeight / 2
	for p.offset-p.initialOffset > half {
		p.offset -= p.elementHeight
		p.wheel.shiftDown()
		p.rng.set(p.wheel.middle(), true)
		if !p.rng.wrapEnabled() && p.wheel.middle() <= p.rng.min {
			p.offset = p.initialOffset
		}
	}
	for p.offset-p.initialOffset < -half {
		p.offset += p.elementHeight
		p.wheel.shiftUp()
		p.rng.set(p.wheel.middle(), true)
		if !p.rng.wrapEnabled() && p.wheel.middle() >= p.rng.max {
			p.offset = p.initialOffset
		}
	}
}

// Tick advances pending commands and the active animation. The host
// calls it at its frame rate; each tick applies the animation's
// incremental displacement through the same scrollBy logic as a drag.
func (p *NumberPicker) Tick(now time.Time) {
	p.sched.Advance(now)
	if p.fling.active() {
		p.scrollBy(p.fling.tick(now))
		if !p.fling.active() {
			p.setScrollState(ScrollStateIdle)
			p.adjustToRest(now)
		}
		return
	}
	if p.adjust.active() {
		p.scrollBy(p.adjust.tick(now))
		if !p.adjust.active() {
			p.snapResidual()
		}
	}
}

// Increment animates one step toward the next value.
func (p *NumberPicker) Increment(now time.Time) {
	p.step(+1, now)
}

// Decrement animates one step toward the previous value.
func (p *NumberPicker) Decrement(now time.Time) {
	p.step(-1, now)
}

// step changes the value by one discrete step with a short snap
// animation. Before layout the change applies instantly.
func (p *NumberPicker) step(dir int, now time.Time) {
	if dir == 0 {
		return
	}
	if !p.layoutValid() {
		if p.rng.set(p.rng.value+dir, true) {
			p.wheel.rebuild()
		}
		return
	}
	if p.fling.active() {
		p.forceFinishScroll()
	}
	if p.adjust.active() {
		// Resolve the in-flight step before stacking another.
		p.scrollBy(p.adjust.remaining())
		p.adjust.stop()
		p.snapResidual()
	}
	p.adjust.start(now, float64(-dir)*p.elementHeight, stepDuration)
}

// adjustToRest starts the snap animation correcting the offset to the
// nearest rest position. Returns false if already at rest.
func (p *NumberPicker) adjustToRest(now time.Time) bool {
	delta := p.initialOffset - p.offset
	if delta == 0 {
		return false
	}
	if math.Abs(delta) > p.elementHeight/2 {
		if delta > 0 {
			delta -= p.elementHeight
		} else {
			delta += p.elementHeight
		}
	}
	p.adjust.start(now, delta, adjustDuration)
	return true
}

// forceFinishScroll stops any in-flight animation and synchronously
// resolves the wheel to its nearest rest value, committing whatever
// threshold crossings the jump implies. No two animations ever overlap:
// a new gesture always lands here first.
func (p *NumberPicker) forceFinishScroll() {
	p.fling.stop()
	p.adjust.stop()
	if !p.layoutValid() {
		return
	}
	delta := p.initialOffset - p.offset
	if delta == 0 {
		return
	}
	if math.Abs(delta) > p.elementHeight/2 {
		if delta > 0 {
			delta -= p.elementHeight
		} else {
			delta += p.elementHeight
		}
	}
	p.scrollBy(delta)
	p.snapResidual()
}

// snapResidual forgives sub-pixel drift after an animation completes so
// rendering lands exactly on rest rows.
func (p *NumberPicker) snapResidual() {
	if math.Abs(p.offset-p.initialOffset) < 0.5 {
		p.offset = p.initialOffset
	}
}

// setScrollState transitions the scroll state, notifying the listener
// only on an actual change.
func (p *NumberPicker) setScrollState(s ScrollState) {
	if s == p.scrollState {
		return
	}
	p.scrollState = s
	if p.onScroll != nil {
		p.onScroll(s)
	}
}
