package picker

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// testModel wraps a picker in the bubbletea adapter with a manual clock.
func testModel(t *testing.T) (Model, *time.Time) {
	t.Helper()
	p := New()
	p.SetValue(50)
	m := NewModel(p, 16, 9)
	now := time.Unix(0, 0)
	m.now = func() time.Time { return now }
	return m, &now
}

func TestModel(t *testing.T) {
	t.Run("WheelScrollsSteps", func(t *testing.T) {
		m, now := testModel(t)
		m, _ = m.Update(tea.MouseMsg{
			Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, X: 5, Y: 4,
		})
		for i := 0; i < 30; i++ {
			*now = now.Add(33 * time.Millisecond)
			m, _ = m.Update(FrameMsg(*now))
		}
		if got := m.Picker.Value(); got != 51 {
			t.Errorf("expected 51 after wheel down, got %d", got)
		}

		m, _ = m.Update(tea.MouseMsg{
			Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, X: 5, Y: 4,
		})
		for i := 0; i < 30; i++ {
			*now = now.Add(33 * time.Millisecond)
			m, _ = m.Update(FrameMsg(*now))
		}
		if got := m.Picker.Value(); got != 50 {
			t.Errorf("expected 50 after wheel up, got %d", got)
		}
	})

	t.Run("WheelOutsideIgnored", func(t *testing.T) {
		m, _ := testModel(t)
		m, _ = m.Update(tea.MouseMsg{
			Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, X: 20, Y: 4,
		})
		if m.Picker.adjust.active() {
			t.Error("wheel event outside the widget started a step")
		}
	})

	t.Run("ClickTranslatesToCellCenter", func(t *testing.T) {
		m, now := testModel(t)
		m = m.Position(3, 4)

		// Cell row 0 of the widget is at parent row 4; its center is
		// 5px, inside the decrement zone.
		m, _ = m.Update(tea.MouseMsg{
			Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 5, Y: 4,
		})
		*now = now.Add(50 * time.Millisecond)
		m, _ = m.Update(tea.MouseMsg{
			Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: 5, Y: 4,
		})
		for i := 0; i < 30; i++ {
			*now = now.Add(33 * time.Millisecond)
			m, _ = m.Update(FrameMsg(*now))
		}
		if got := m.Picker.Value(); got != 49 {
			t.Errorf("expected tap step to 49, got %d", got)
		}
	})

	t.Run("MotionWithoutPressIgnored", func(t *testing.T) {
		m, _ := testModel(t)
		m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, X: 5, Y: 4})
		if got := m.Picker.State(); got != ScrollStateIdle {
			t.Errorf("expected idle, got %v", got)
		}
	})

	t.Run("PressOutsideIgnored", func(t *testing.T) {
		m, _ := testModel(t)
		m, _ = m.Update(tea.MouseMsg{
			Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 40, Y: 4,
		})
		if m.pressed {
			t.Error("press outside the widget grabbed the pointer")
		}
	})

	t.Run("KeyRouting", func(t *testing.T) {
		m, _ := testModel(t)
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if !m.Picker.Editing() {
			t.Fatal("expected enter to begin editing")
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42")})
		if got := m.Picker.EditText(); got != "42" {
			t.Errorf("expected %q, got %q", "42", got)
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.Picker.Editing() {
			t.Error("expected enter to commit")
		}
		if got := m.Picker.Value(); got != 42 {
			t.Errorf("expected 42, got %d", got)
		}
	})

	t.Run("EscapeCancelsEdit", func(t *testing.T) {
		m, _ := testModel(t)
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
		if m.Picker.Editing() {
			t.Error("expected escape to cancel")
		}
		if got := m.Picker.Value(); got != 50 {
			t.Errorf("expected 50 after cancel, got %d", got)
		}
	})

	t.Run("ArrowKeysStep", func(t *testing.T) {
		m, now := testModel(t)
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		for i := 0; i < 30; i++ {
			*now = now.Add(33 * time.Millisecond)
			m, _ = m.Update(FrameMsg(*now))
		}
		if got := m.Picker.Value(); got != 51 {
			t.Errorf("expected 51, got %d", got)
		}
	})

	t.Run("ViewShowsValues", func(t *testing.T) {
		m, _ := testModel(t)
		view := m.View()
		for _, want := range []string{"49", "50", "51", "─"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected view to contain %q", want)
			}
		}
		if got := strings.Count(view, "\n"); got != 8 {
			t.Errorf("expected 9 rows, got %d newlines", got)
		}
	})
}
