package picker

import "time"

// PointerType is the kind of a pointer event.
type PointerType uint8

const (
	// PointerPress is the start of a touch or button-down.
	PointerPress PointerType = iota
	// PointerMove is motion while pressed.
	PointerMove
	// PointerRelease ends a gesture normally.
	PointerRelease
	// PointerCancel ends a gesture without completing it, e.g. when the
	// host grabs the pointer for something else.
	PointerCancel
)

func (t PointerType) String() string {
	switch t {
	case PointerPress:
		return "Press"
	case PointerMove:
		return "Move"
	case PointerRelease:
		return "Release"
	case PointerCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// PointerEvent is a single pointer sample delivered by the host toolkit.
// Coordinates are in widget-local pixels, Y growing downward. Time is the
// host's event timestamp; all gesture timing derives from it rather than
// the wall clock, which keeps the engine deterministic under test.
type PointerEvent struct {
	Type PointerType
	X    float64
	Y    float64
	Time time.Time
}
