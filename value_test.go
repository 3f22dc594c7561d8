package picker

import (
	"errors"
	"testing"
)

func TestValueRange(t *testing.T) {
	t.Run("SetValueIdempotent", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 9); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		for v := 0; v <= 9; v++ {
			p.SetValue(v)
			if got := p.Value(); got != v {
				t.Errorf("SetValue(%d): got %d", v, got)
			}
		}
	})

	t.Run("ClampWithoutWrap", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 9); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		p.SetValue(15)
		if got := p.Value(); got != 9 {
			t.Errorf("expected clamp to 9, got %d", got)
		}
		p.SetValue(-3)
		if got := p.Value(); got != 0 {
			t.Errorf("expected clamp to 0, got %d", got)
		}
	})

	t.Run("WrapContinuity", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 9); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		p.SetWrapSelectorWheel(true)
		if !p.WrapSelectorWheel() {
			t.Fatal("expected wrap to be effective")
		}
		p.SetValue(10)
		wrapped := p.Value()
		p.SetValue(0)
		if wrapped != p.Value() {
			t.Errorf("SetValue(max+1) gave %d, SetValue(min) gave %d", wrapped, p.Value())
		}
		p.SetValue(-1)
		if got := p.Value(); got != 9 {
			t.Errorf("SetValue(min-1): expected 9, got %d", got)
		}
	})

	t.Run("WrapCyclesAllValues", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 9); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		p.SetWrapSelectorWheel(true)
		p.SetValue(0)

		seen := make(map[int]bool)
		for i := 0; i < 10; i++ {
			seen[p.Value()] = true
			p.SetValue(p.Value() + 1)
		}
		if len(seen) != 10 {
			t.Errorf("expected 10 distinct values in one cycle, got %d", len(seen))
		}
		if got := p.Value(); got != 0 {
			t.Errorf("expected cycle back to 0, got %d", got)
		}
	})

	t.Run("WrapNeedsWidth", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 2); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		p.SetWrapSelectorWheel(true)
		if p.WrapSelectorWheel() {
			t.Error("wrap should be ineligible for a narrow range")
		}
		// Preference is kept: widening the range activates it.
		if err := p.SetRange(0, 9); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		if !p.WrapSelectorWheel() {
			t.Error("wrap preference should apply once the range is wide enough")
		}
	})

	t.Run("InvalidRangeRejected", func(t *testing.T) {
		p := New()
		if err := p.SetRange(3, 7); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		p.SetValue(5)
		err := p.SetRange(10, 2)
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
		if p.MinValue() != 3 || p.MaxValue() != 7 || p.Value() != 5 {
			t.Errorf("state changed after rejected range: [%d,%d] value %d",
				p.MinValue(), p.MaxValue(), p.Value())
		}
	})

	t.Run("RangeEditClampsValue", func(t *testing.T) {
		p := New()
		p.SetValue(80)
		if err := p.SetRange(0, 10); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		if got := p.Value(); got != 10 {
			t.Errorf("expected value clamped to 10, got %d", got)
		}
	})

	t.Run("NoNotifyOnProgrammaticSet", func(t *testing.T) {
		p := New()
		calls := 0
		p.OnValueChanged(func(prev, next int) { calls++ })
		p.SetValue(42)
		if calls != 0 {
			t.Errorf("expected no notification, got %d", calls)
		}
	})

	t.Run("DisplayedValuesRoundTrip", func(t *testing.T) {
		p := New()
		if err := p.SetRange(1, 3); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		values := []string{"low", "mid", "high"}
		p.SetDisplayedValues(values)

		got := p.DisplayedValues()
		if len(got) != len(values) {
			t.Fatalf("expected %d values, got %d", len(values), len(got))
		}
		for i := range values {
			if got[i] != values[i] {
				t.Errorf("value %d: expected %q, got %q", i, values[i], got[i])
			}
		}

		p.SetDisplayedValues(nil)
		if p.DisplayedValues() != nil {
			t.Error("expected nil after clearing")
		}
		if got := p.rng.label(2); got != "2" {
			t.Errorf("expected numeric label after clearing, got %q", got)
		}
	})

	t.Run("LabelPrecedence", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 2); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		if got := p.rng.label(1); got != "1" {
			t.Errorf("default label: expected %q, got %q", "1", got)
		}

		p.SetFormatter(func(v int) string { return "#" + string(rune('0'+v)) })
		if got := p.rng.label(1); got != "#1" {
			t.Errorf("formatter label: expected %q, got %q", "#1", got)
		}

		// Display mapping beats the formatter.
		p.SetDisplayedValues([]string{"a", "b", "c"})
		if got := p.rng.label(1); got != "b" {
			t.Errorf("mapped label: expected %q, got %q", "b", got)
		}
	})

	t.Run("LabelCacheInvalidation", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 2); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		if got := p.rng.label(0); got != "0" {
			t.Fatalf("expected %q, got %q", "0", got)
		}
		p.SetFormatter(func(v int) string { return "x" })
		if got := p.rng.label(0); got != "x" {
			t.Errorf("stale cache: expected %q, got %q", "x", got)
		}
	})

	t.Run("OutOfRangeLabelBlank", func(t *testing.T) {
		p := New()
		if err := p.SetRange(0, 9); err != nil {
			t.Fatalf("SetRange: %v", err)
		}
		if got := p.rng.label(-1); got != "" {
			t.Errorf("expected blank label below range, got %q", got)
		}
	})
}
