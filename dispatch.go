package picker

import (
	"math"
	"time"
)

// Pointer feeds one pointer event into the gesture state machine.
// Events are ignored until the widget has a valid layout.
func (p *NumberPicker) Pointer(ev PointerEvent) {
	if !p.layoutValid() {
		return
	}
	switch ev.Type {
	case PointerPress:
		p.pointerPress(ev)
	case PointerMove:
		p.pointerMove(ev)
	case PointerRelease:
		p.pointerRelease(ev)
	case PointerCancel:
		p.pointerCancel()
	}
}

// pointerPress starts a gesture. Any pending command is cancelled and
// any in-flight animation is finalized before the new gesture begins,
// so two animations never run concurrently. Pressing an inert zone arms
// the long-press repeat; pressing the middle row arms deferred text
// entry.
func (p *NumberPicker) pointerPress(ev PointerEvent) {
	p.sched.CancelAll()
	if p.ed.active {
		// Touching the wheel takes focus from the text field.
		p.Blur()
	}
	p.tracker.reset()
	p.tracker.sample(ev.Time, ev.Y)
	p.phase = gesturePressed
	p.pressY = ev.Y
	p.lastY = ev.Y
	p.pressTime = ev.Time
	p.pressedZone = zoneNone

	switch {
	case p.fling.active():
		p.forceFinishScroll()
		p.setScrollState(ScrollStateIdle)
	case p.adjust.active():
		p.forceFinishScroll()
	default:
		switch p.zoneAt(ev.Y) {
		case zoneDecrement:
			p.pressedZone = zoneDecrement
			p.armLongPress(-1, ev.Time)
		case zoneIncrement:
			p.pressedZone = zoneIncrement
			p.armLongPress(+1, ev.Time)
		case zoneMiddle:
			p.sched.Post(CommandSoftInput, ev.Time, longPressTimeout, func(time.Time) {
				p.BeginEdit()
			})
		}
	}
}

// armLongPress schedules the first long-press step; each step re-posts
// itself at the configured update interval until release.
func (p *NumberPicker) armLongPress(dir int, now time.Time) {
	var fire func(now time.Time)
	fire = func(now time.Time) {
		p.step(dir, now)
		p.sched.Post(CommandLongPress, now, p.longPressInterval, fire)
	}
	p.sched.Post(CommandLongPress, now, longPressTimeout, fire)
}

// pointerMove either waits out the touch slop or drags the wheel. The
// slop-crossing move only transitions state; scrolling starts with the
// next delta.
func (p *NumberPicker) pointerMove(ev PointerEvent) {
	p.tracker.sample(ev.Time, ev.Y)
	switch p.phase {
	case gesturePressed:
		if math.Abs(ev.Y-p.pressY) > touchSlop {
			p.sched.CancelAll()
			p.pressedZone = zoneNone
			p.phase = gestureDragging
			p.setScrollState(ScrollStateDragging)
		}
	case gestureDragging:
		p.scrollBy(ev.Y - p.lastY)
	}
	p.lastY = ev.Y
}

// pointerRelease ends the gesture: a fast drag becomes a fling, a short
// still press becomes a tap (click in the middle row, single step in
// the inert zones), anything else snaps the wheel to the nearest rest
// offset.
func (p *NumberPicker) pointerRelease(ev PointerEvent) {
	p.sched.Cancel(CommandLongPress)
	p.sched.Cancel(CommandSoftInput)
	p.pressedZone = zoneNone
	p.tracker.sample(ev.Time, ev.Y)

	v := p.tracker.velocity()
	if p.phase == gestureDragging && math.Abs(v) >= minFlingVelocity {
		p.fling.start(ev.Time, v)
		p.setScrollState(ScrollStateFlinging)
	} else {
		if p.phase == gesturePressed &&
			math.Abs(ev.Y-p.pressY) <= touchSlop &&
			ev.Time.Sub(p.pressTime) < tapTimeout {
			switch p.zoneAt(ev.Y) {
			case zoneMiddle:
				p.BeginEdit()
			case zoneDecrement:
				p.pulse(zoneDecrement, ev.Time)
				p.step(-1, ev.Time)
			case zoneIncrement:
				p.pulse(zoneIncrement, ev.Time)
				p.step(+1, ev.Time)
			}
		} else if !p.adjust.active() {
			// An in-flight long-press step finishes on its own.
			p.adjustToRest(ev.Time)
		}
		p.setScrollState(ScrollStateIdle)
	}
	p.phase = gestureIdle
	p.tracker.reset()
}

// pointerCancel aborts the gesture without a tap or fling.
func (p *NumberPicker) pointerCancel() {
	p.sched.CancelAll()
	p.pressedZone = zoneNone
	p.phase = gestureIdle
	p.tracker.reset()
	p.forceFinishScroll()
	p.setScrollState(ScrollStateIdle)
}

// pulse shows the pressed visual on a tapped zone until the fade
// command clears it.
func (p *NumberPicker) pulse(z zone, now time.Time) {
	p.pressedZone = z
	p.sched.Post(CommandPressFade, now, pressPulseDuration, func(time.Time) {
		p.pressedZone = zoneNone
	})
}

// zoneAt maps a widget-local pixel Y to a hit zone.
func (p *NumberPicker) zoneAt(y float64) zone {
	switch {
	case y < p.topDividerY:
		return zoneDecrement
	case y > p.bottomDividerY:
		return zoneIncrement
	default:
		return zoneMiddle
	}
}

// BeginEdit enters text entry on the middle row, pre-selecting the
// current label so the first keystroke replaces it.
func (p *NumberPicker) BeginEdit() {
	if p.ed.active {
		return
	}
	p.ed.begin()
}

// InsertRune feeds one typed character through the input filter.
// Returns false when the filter rejects the edit.
func (p *NumberPicker) InsertRune(r rune, now time.Time) bool {
	if !p.ed.active {
		return false
	}
	accepted, selectFrom := p.ed.insert(r)
	if accepted && selectFrom >= 0 {
		p.sched.Post(CommandSelect, now, 0, func(time.Time) {
			p.ed.selectRange(selectFrom, len(p.ed.text))
		})
	}
	return accepted
}

// Backspace deletes the selection or the character before the cursor.
func (p *NumberPicker) Backspace() {
	if !p.ed.active {
		return
	}
	p.sched.Cancel(CommandSelect)
	p.ed.backspace()
}

// Blur resolves the edited text into a value (empty text restores the
// display instead) and leaves edit mode. Hosts call it on focus loss;
// Enter maps here too.
func (p *NumberPicker) Blur() {
	if !p.ed.active {
		return
	}
	p.sched.Cancel(CommandSelect)
	p.ed.commit()
	p.wheel.rebuild()
}

// CancelEdit leaves edit mode without committing.
func (p *NumberPicker) CancelEdit() {
	if !p.ed.active {
		return
	}
	p.sched.Cancel(CommandSelect)
	p.ed.cancel()
}

// KeyUp steps to the previous value, the one shown above the middle
// row.
func (p *NumberPicker) KeyUp(now time.Time) {
	p.step(-1, now)
}

// KeyDown steps to the next value, the one shown below the middle row.
func (p *NumberPicker) KeyDown(now time.Time) {
	p.step(+1, now)
}
