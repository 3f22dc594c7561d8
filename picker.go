package picker

import (
	"time"

	"golang.org/x/text/language"
)

// ScrollState describes what is currently driving the wheel.
type ScrollState int

const (
	// ScrollStateIdle means the wheel is at rest or settling.
	ScrollStateIdle ScrollState = iota
	// ScrollStateDragging means a pointer drag is moving the wheel.
	ScrollStateDragging
	// ScrollStateFlinging means a release fling is moving the wheel.
	ScrollStateFlinging
)

func (s ScrollState) String() string {
	switch s {
	case ScrollStateIdle:
		return "Idle"
	case ScrollStateDragging:
		return "Dragging"
	case ScrollStateFlinging:
		return "Flinging"
	default:
		return "Unknown"
	}
}

// gesturePhase tracks where a pointer gesture is between press and
// release. Scroll state is the externally visible machine; the phase
// disambiguates tap-vs-drag inside a gesture.
type gesturePhase int

const (
	gestureIdle gesturePhase = iota
	gesturePressed
	gestureDragging
)

// zone is a vertical hit region of the widget.
type zone int

const (
	zoneNone      zone = iota
	zoneDecrement      // above the top divider
	zoneMiddle         // between the dividers
	zoneIncrement      // below the bottom divider
)

// Interaction timing and distance defaults.
const (
	touchSlop        = 3.0 // pixels before a press becomes a drag
	tapTimeout       = 300 * time.Millisecond
	longPressTimeout = 400 * time.Millisecond

	defaultLongPressInterval = 300 * time.Millisecond

	stepDuration       = 300 * time.Millisecond
	adjustDuration     = 800 * time.Millisecond
	pressPulseDuration = 125 * time.Millisecond

	defaultPxPerRow = 10.0
)

// NumberPicker is a scroll-wheel integer input: three visible rows
// (previous, current, next) over a bounded range, scrolled by pointer
// drags and flings, stepped by tap zones and long-press repeat, or
// edited directly as text.
//
// The picker is single-threaded: the host delivers pointer/key events
// and periodic Tick calls from one event loop, and all timing comes
// from the timestamps it passes in.
type NumberPicker struct {
	rng   *valueRange
	wheel *wheel
	ed    *editor
	sched *Scheduler

	// Geometry, in abstract pixels. One text row is pxPerRow pixels
	// tall; the widget height is split evenly into three elements.
	widthCols  int
	heightRows int
	pxPerRow   float64
	textPx     float64

	elementHeight  float64
	initialOffset  float64
	offset         float64
	topDividerY    float64
	bottomDividerY float64

	scrollState ScrollState
	phase       gesturePhase
	pressY      float64
	lastY       float64
	pressTime   time.Time
	tracker     velocityTracker
	fling       flinger
	adjust      adjuster

	longPressInterval time.Duration
	pressedZone       zone

	textStyle     Style
	selectedStyle Style
	dividerStyle  Style
	dividerRows   int

	onScroll func(ScrollState)
}

// New creates a picker over the range [0, 100] with numeric formatting.
func New() *NumberPicker {
	rng := newValueRange(0, 100)
	p := &NumberPicker{
		rng:               rng,
		wheel:             newWheel(rng),
		sched:             NewScheduler(),
		pxPerRow:          defaultPxPerRow,
		longPressInterval: defaultLongPressInterval,
		textStyle:         DefaultStyle().Dim(),
		selectedStyle:     DefaultStyle().Bold(),
		dividerStyle:      DefaultStyle(),
		dividerRows:       1,
	}
	p.ed = newEditor(rng)
	return p
}

// Value returns the current value.
func (p *NumberPicker) Value() int {
	return p.rng.value
}

// SetValue sets the current value, wrapping or clamping it into range.
// The change listener is not notified for programmatic sets.
func (p *NumberPicker) SetValue(v int) {
	p.rng.set(v, false)
	p.wheel.rebuild()
}

// MinValue returns the lower bound.
func (p *NumberPicker) MinValue() int {
	return p.rng.min
}

// MaxValue returns the upper bound.
func (p *NumberPicker) MaxValue() int {
	return p.rng.max
}

// SetMinValue updates the lower bound, keeping the upper bound.
func (p *NumberPicker) SetMinValue(min int) error {
	return p.SetRange(min, p.rng.max)
}

// SetMaxValue updates the upper bound, keeping the lower bound.
func (p *NumberPicker) SetMaxValue(max int) error {
	return p.SetRange(p.rng.min, max)
}

// SetRange replaces both bounds. It returns ErrInvalidRange and leaves
// the picker untouched when min > max; otherwise the current value is
// clamped into the new range and the wheel rebuilt.
func (p *NumberPicker) SetRange(min, max int) error {
	if err := p.rng.setRange(min, max); err != nil {
		return err
	}
	p.ed.cancel()
	p.wheel.rebuild()
	return nil
}

// DisplayedValues returns a copy of the display mapping, or nil when
// values format numerically.
func (p *NumberPicker) DisplayedValues() []string {
	return p.rng.displayedValues()
}

// SetDisplayedValues installs label strings substituting for numeric
// display and parsing, one per value in [min, max]; nil reverts to
// numeric formatting. The caller must supply exactly max-min+1 entries;
// a mismatched length renders blanks for the uncovered values.
func (p *NumberPicker) SetDisplayedValues(values []string) {
	p.rng.setDisplayed(values)
	p.ed.cancel()
	p.wheel.rebuild()
}

// SetFormatter installs a custom label formatter, used when no display
// mapping is set. Passing nil reverts to locale decimal formatting.
func (p *NumberPicker) SetFormatter(f Formatter) {
	p.rng.setFormatter(f)
	p.wheel.rebuild()
}

// SetLocale sets the locale for default decimal formatting.
func (p *NumberPicker) SetLocale(tag language.Tag) {
	p.rng.setLocale(tag)
	p.wheel.rebuild()
}

// OnValueChanged registers the value-change listener, called with the
// previous and new value whenever the value changes with notification
// (scroll commits, steps, text commits).
func (p *NumberPicker) OnValueChanged(fn func(prev, next int)) {
	p.rng.onChange = fn
}

// OnScrollStateChanged registers the scroll-state listener, called once
// per state transition.
func (p *NumberPicker) OnScrollStateChanged(fn func(ScrollState)) {
	p.onScroll = fn
}

// WrapSelectorWheel reports the effective wrap-around policy.
func (p *NumberPicker) WrapSelectorWheel() bool {
	return p.rng.wrapEnabled()
}

// SetWrapSelectorWheel records the wrap-around preference. Wrapping
// takes effect only while the range is wide enough for the window.
func (p *NumberPicker) SetWrapSelectorWheel(wrap bool) {
	p.rng.wrapPreferred = wrap
	p.wheel.rebuild()
}

// SetLongPressUpdateInterval sets the repeat interval for held
// increment/decrement zones. Non-positive durations are ignored.
func (p *NumberPicker) SetLongPressUpdateInterval(d time.Duration) {
	if d > 0 {
		p.longPressInterval = d
	}
}

// SetTextStyle sets the style of the outer wheel rows.
func (p *NumberPicker) SetTextStyle(s Style) *NumberPicker {
	p.textStyle = s
	return p
}

// SetSelectedTextStyle sets the style of the middle row.
func (p *NumberPicker) SetSelectedTextStyle(s Style) *NumberPicker {
	p.selectedStyle = s
	return p
}

// SetDividerStyle sets the style of the selection dividers.
func (p *NumberPicker) SetDividerStyle(s Style) *NumberPicker {
	p.dividerStyle = s
	return p
}

// SetDividerHeight sets the divider thickness in rows; 0 hides them.
func (p *NumberPicker) SetDividerHeight(rows int) *NumberPicker {
	if rows >= 0 {
		p.dividerRows = rows
	}
	return p
}

// State returns the current scroll state.
func (p *NumberPicker) State() ScrollState {
	return p.scrollState
}

// ScrollOffset returns the wheel's pixel offset from its rest position.
func (p *NumberPicker) ScrollOffset() float64 {
	return p.offset
}

// InitialScrollOffset returns the rest-position offset derived from
// layout.
func (p *NumberPicker) InitialScrollOffset() float64 {
	return p.initialOffset
}

// PixelsPerRow returns the pixel height of one text row, for hosts
// converting cell coordinates into pointer positions.
func (p *NumberPicker) PixelsPerRow() float64 {
	return p.pxPerRow
}

// Rest reports whether the wheel is settled: idle, no animation, and at
// its rest offset.
func (p *NumberPicker) Rest() bool {
	return p.scrollState == ScrollStateIdle &&
		!p.fling.active() && !p.adjust.active() &&
		p.offset == p.initialOffset
}

// Editing reports whether text entry is active.
func (p *NumberPicker) Editing() bool {
	return p.ed.active
}

// EditText returns the text being edited, or "" when not editing.
func (p *NumberPicker) EditText() string {
	if !p.ed.active {
		return ""
	}
	return string(p.ed.text)
}

// Layout sets the widget size in terminal cells. The height is divided
// evenly into the three wheel elements; a height below three rows
// disables interaction and rendering.
func (p *NumberPicker) Layout(cols, rows int) {
	if cols == p.widthCols && rows == p.heightRows {
		return
	}
	p.fling.stop()
	p.adjust.stop()
	p.widthCols = cols
	p.heightRows = rows

	total := float64(rows) * p.pxPerRow
	p.textPx = p.pxPerRow
	gap := (total - windowSize*p.textPx) / windowSize
	p.elementHeight = p.textPx + gap
	middleTextY := (total - p.textPx) / 2
	p.initialOffset = middleTextY - p.elementHeight
	p.offset = p.initialOffset
	p.topDividerY = (total - p.elementHeight) / 2
	p.bottomDividerY = p.topDividerY + p.elementHeight
}

func (p *NumberPicker) layoutValid() bool {
	return p.widthCols > 0 && p.heightRows >= windowSize && p.elementHeight > 0
}

// Detach cancels all pending commands and synchronously resolves any
// in-flight animation to a consistent value. Call it when removing the
// widget from the host hierarchy.
func (p *NumberPicker) Detach() {
	p.sched.CancelAll()
	p.forceFinishScroll()
	p.setScrollState(ScrollStateIdle)
	p.phase = gestureIdle
	p.pressedZone = zoneNone
	p.tracker.reset()
}
