package picker

// The selector wheel is a fixed window of three logical positions:
// the value below, the current value and the value above.
const (
	windowSize = 3
	windowMid  = windowSize / 2
)

// wheel is the sliding window of logical positions backing the visible
// selector rows. During scrolling it shifts one entry at a time instead
// of rebuilding, so only the entering edge entry is recomputed.
type wheel struct {
	rng     *valueRange
	indices [windowSize]int
}

func newWheel(rng *valueRange) *wheel {
	w := &wheel{rng: rng}
	w.rebuild()
	return w
}

// middle returns the logical position in the middle slot.
func (w *wheel) middle() int {
	return w.indices[windowMid]
}

// rebuild recenters the window on the current value. Each entry wraps
// independently when wrapping is enabled; otherwise out-of-range edge
// entries are kept as-is and render blank.
func (w *wheel) rebuild() {
	current := w.rng.value
	for i := range w.indices {
		idx := current + i - windowMid
		if w.rng.wrapEnabled() {
			idx = w.rng.wrapIndex(idx)
		}
		w.indices[i] = idx
		w.rng.label(idx)
	}
}

// shiftUp slides the window toward higher values: entries move one slot
// up and the new trailing entry is one past the previous edge.
func (w *wheel) shiftUp() {
	copy(w.indices[:], w.indices[1:])
	next := w.indices[windowSize-2] + 1
	if w.rng.wrapEnabled() {
		next = w.rng.wrapIndex(next)
	}
	w.indices[windowSize-1] = next
	w.rng.label(next)
}

// shiftDown slides the window toward lower values.
func (w *wheel) shiftDown() {
	copy(w.indices[1:], w.indices[:windowSize-1])
	prev := w.indices[1] - 1
	if w.rng.wrapEnabled() {
		prev = w.rng.wrapIndex(prev)
	}
	w.indices[0] = prev
	w.rng.label(prev)
}
