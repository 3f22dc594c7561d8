package picker

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidRange is returned when a range mutation would leave
// min > max. The prior range is kept.
var ErrInvalidRange = errors.New("picker: min greater than max")

// Formatter turns a value into its display label.
type Formatter func(v int) string

// valueRange holds the bounded integer range, the current value, the
// wrap-around policy and the label cache. It is the single writer of the
// current value: every mutation funnels through set.
type valueRange struct {
	min, max int
	value    int

	wrapPreferred bool

	displayed []string
	formatter Formatter
	printer   *message.Printer

	labels map[int]string

	onChange func(prev, next int)
}

func newValueRange(min, max int) *valueRange {
	r := &valueRange{
		min:     min,
		max:     max,
		value:   min,
		printer: message.NewPrinter(language.Und),
		labels:  make(map[int]string),
	}
	return r
}

// setRange replaces both bounds at once. The current value is clamped
// into the new range without notification.
func (r *valueRange) setRange(min, max int) error {
	if min > max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	if min == r.min && max == r.max {
		return nil
	}
	r.min = min
	r.max = max
	r.invalidateLabels()
	r.set(r.value, false)
	return nil
}

// wrapAllowed reports whether the range is wide enough for wrap-around:
// the window must never show the same value twice.
func (r *valueRange) wrapAllowed() bool {
	return r.max-r.min >= windowSize
}

// wrapEnabled is the effective policy: user preference gated by
// eligibility.
func (r *valueRange) wrapEnabled() bool {
	return r.wrapPreferred && r.wrapAllowed()
}

// wrapIndex normalizes a logical position into [min, max] when wrapping
// is enabled, otherwise returns it unchanged. The modulus intentionally
// mirrors the scroll engine's shifted-window arithmetic: stepping one
// past an edge lands exactly on the opposite edge.
func (r *valueRange) wrapIndex(v int) int {
	switch {
	case v > r.max:
		return r.min + (v-r.max)%(r.max-r.min) - 1
	case v < r.min:
		return r.max - (r.min-v)%(r.max-r.min) + 1
	default:
		return v
	}
}

func (r *valueRange) clamp(v int) int {
	if v < r.min {
		return r.min
	}
	if v > r.max {
		return r.max
	}
	return v
}

// set is the sole writer of the current value. Wrapping applies when
// enabled, clamping otherwise. The change listener fires only when
// notify is true and the value actually changed.
func (r *valueRange) set(v int, notify bool) bool {
	if r.wrapEnabled() {
		v = r.wrapIndex(v)
	} else {
		v = r.clamp(v)
	}
	if v == r.value {
		return false
	}
	prev := r.value
	r.value = v
	if notify && r.onChange != nil {
		r.onChange(prev, v)
	}
	return true
}

// setDisplayed swaps the display mapping. Passing nil reverts to numeric
// formatting. The mapping must have exactly max-min+1 entries, one per
// value; this is a documented caller contract and is not validated here.
func (r *valueRange) setDisplayed(values []string) {
	if values == nil {
		r.displayed = nil
	} else {
		r.displayed = append([]string(nil), values...)
	}
	r.invalidateLabels()
}

func (r *valueRange) displayedValues() []string {
	if r.displayed == nil {
		return nil
	}
	return append([]string(nil), r.displayed...)
}

func (r *valueRange) setFormatter(f Formatter) {
	r.formatter = f
	r.invalidateLabels()
}

func (r *valueRange) setLocale(tag language.Tag) {
	r.printer = message.NewPrinter(tag)
	r.invalidateLabels()
}

func (r *valueRange) invalidateLabels() {
	clear(r.labels)
}

// label returns the formatted label for a logical position, populating
// the cache on first use. Positions outside the range (the window edge
// when wrapping is off) map to the empty string.
// Precedence: display mapping, then custom formatter, then locale
// decimal.
func (r *valueRange) label(v int) string {
	if s, ok := r.labels[v]; ok {
		return s
	}
	var s string
	switch {
	case v < r.min || v > r.max:
		s = ""
	case r.displayed != nil:
		if i := v - r.min; i < len(r.displayed) {
			s = r.displayed[i]
		}
	case r.formatter != nil:
		s = r.formatter(v)
	default:
		s = r.printer.Sprintf("%d", v)
	}
	r.labels[v] = s
	return s
}
