package picker

import (
	"strconv"
	"strings"
	"unicode"
)

// editor is the text entry bridge: it filters keystrokes against the
// range (or the display mapping), and on focus loss resolves the text
// back into a value for the range model.
type editor struct {
	rng    *valueRange
	active bool
	text   []rune

	// Selection over text; selStart == selEnd means a collapsed cursor.
	// Typing replaces the selected span.
	selStart, selEnd int
}

func newEditor(rng *valueRange) *editor {
	return &editor{rng: rng}
}

// begin enters edit mode showing the current value's label with
// everything selected, so the first keystroke replaces it.
func (e *editor) begin() {
	e.active = true
	e.text = []rune(e.rng.label(e.rng.value))
	e.selStart = 0
	e.selEnd = len(e.text)
}

// cancel leaves edit mode without committing.
func (e *editor) cancel() {
	e.active = false
	e.text = nil
	e.selStart, e.selEnd = 0, 0
}

// selectRange sets the selection, clamped to the text.
func (e *editor) selectRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(e.text) {
		end = len(e.text)
	}
	if start > end {
		start = end
	}
	e.selStart, e.selEnd = start, end
}

// insert applies one keystroke. A rejected edit leaves the text
// unchanged and returns accepted == false. When a keystroke completes a
// unique display-mapping match, selectFrom is the rune index where the
// auto-completed remainder begins (the caller schedules a deferred
// selection of it for quick overtype); otherwise selectFrom is -1.
func (e *editor) insert(r rune) (accepted bool, selectFrom int) {
	candidate := string(e.text[:e.selStart]) + string(r) + string(e.text[e.selEnd:])

	if e.rng.displayed == nil {
		if digitVal(r) < 0 || !e.acceptNumeric(candidate) {
			return false, -1
		}
		e.text = []rune(candidate)
		e.selStart++
		e.selEnd = e.selStart
		return true, -1
	}

	match, unique := e.prefixMatch(candidate)
	if match == "" {
		return false, -1
	}
	typed := e.selStart + 1
	if unique {
		// Complete to the full mapped string; the remainder gets
		// selected by a deferred command.
		e.text = []rune(match)
		e.selStart, e.selEnd = typed, typed
		return true, typed
	}
	e.text = []rune(candidate)
	e.selStart, e.selEnd = typed, typed
	return true, -1
}

// backspace deletes the selection, or the rune before the cursor.
func (e *editor) backspace() {
	if e.selEnd > e.selStart {
		e.text = append(e.text[:e.selStart], e.text[e.selEnd:]...)
		e.selEnd = e.selStart
		return
	}
	if e.selStart > 0 {
		e.text = append(e.text[:e.selStart-1], e.text[e.selStart:]...)
		e.selStart--
		e.selEnd = e.selStart
	}
}

// acceptNumeric rejects edits whose numeric value would exceed max or
// whose digit count exceeds max's, so syntactically valid but
// out-of-range values can never be typed.
func (e *editor) acceptNumeric(candidate string) bool {
	if len([]rune(candidate)) > len(strconv.Itoa(e.rng.max)) {
		return false
	}
	v, ok := parseDigits(candidate)
	if !ok {
		return false
	}
	return v <= e.rng.max
}

// prefixMatch returns the first displayed value the candidate is a
// case-insensitive prefix of, and whether it is the only one.
func (e *editor) prefixMatch(candidate string) (match string, unique bool) {
	lower := strings.ToLower(candidate)
	n := 0
	for _, d := range e.rng.displayed {
		if strings.HasPrefix(strings.ToLower(d), lower) {
			if match == "" {
				match = d
			}
			n++
		}
	}
	return match, n == 1
}

// commit resolves the text to a value and leaves edit mode. An empty
// field restores the display from the current value instead of
// committing. Resolution order: display-mapping prefix match (first
// wins), then numeric parse, defaulting to min on failure. The committed
// value goes through the range model with notification enabled.
func (e *editor) commit() {
	text := string(e.text)
	e.cancel()
	if text == "" {
		return
	}
	e.rng.set(e.resolve(text), true)
}

func (e *editor) resolve(text string) int {
	if e.rng.displayed != nil {
		lower := strings.ToLower(text)
		for i, d := range e.rng.displayed {
			if strings.HasPrefix(strings.ToLower(d), lower) {
				return e.rng.min + i
			}
		}
	}
	if v, ok := parseDigits(text); ok {
		return v
	}
	return e.rng.min
}

// digitVal returns the numeric value of a decimal digit rune, or -1.
// Non-ASCII decimal digits (Arabic-Indic and friends) are handled by
// walking back to the zero of the digit's contiguous block.
func digitVal(r rune) int {
	if !unicode.IsDigit(r) {
		return -1
	}
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	zero := r
	for n := 0; n < 9 && unicode.IsDigit(zero-1); n++ {
		zero--
	}
	return int(r - zero)
}

// parseDigits parses a string of decimal digit runes (any script) into
// an integer.
func parseDigits(s string) (int, bool) {
	v := 0
	seen := false
	for _, r := range s {
		d := digitVal(r)
		if d < 0 {
			return 0, false
		}
		v = v*10 + d
		seen = true
	}
	return v, seen
}
