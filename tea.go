package picker

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameMsg drives the picker's animation ticks through the bubbletea
// message loop.
type FrameMsg time.Time

// defaultFrameInterval is the animation tick rate.
const defaultFrameInterval = 33 * time.Millisecond

// Model adapts a NumberPicker to the bubbletea event loop, in the style
// of the bubbles components: embed it in a parent model, forward
// messages to Update and splice View into the parent's view.
//
// Mouse coordinates are translated using the widget's position within
// the parent view, so enable mouse reporting on the program
// (tea.WithMouseAllMotion) and keep Position up to date.
type Model struct {
	Picker *NumberPicker

	buf     *Buffer
	posX    int
	posY    int
	frame   time.Duration
	pressed bool
	now     func() time.Time
}

// NewModel wraps a picker sized to the given cells.
func NewModel(p *NumberPicker, width, height int) Model {
	p.Layout(width, height)
	return Model{
		Picker: p,
		buf:    NewBuffer(width, height),
		frame:  defaultFrameInterval,
		now:    time.Now,
	}
}

// Position sets the widget's top-left cell within the parent view, used
// for mouse hit testing.
func (m Model) Position(x, y int) Model {
	m.posX, m.posY = x, y
	return m
}

// Init starts the animation tick loop.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update handles frame ticks, mouse and key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.Picker.Tick(time.Time(msg))
		return m, m.tickCmd()
	case tea.MouseMsg:
		m.handleMouse(tea.MouseEvent(msg))
		return m, nil
	case tea.KeyMsg:
		m.handleKey(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(ev tea.MouseEvent) {
	now := m.now()
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if ev.Action == tea.MouseActionPress && m.contains(ev.X, ev.Y) {
			m.Picker.Decrement(now)
		}
		return
	case tea.MouseButtonWheelDown:
		if ev.Action == tea.MouseActionPress && m.contains(ev.X, ev.Y) {
			m.Picker.Increment(now)
		}
		return
	}

	pe := PointerEvent{
		X:    float64(ev.X - m.posX),
		Y:    (float64(ev.Y-m.posY) + 0.5) * m.Picker.PixelsPerRow(),
		Time: now,
	}
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft || !m.contains(ev.X, ev.Y) {
			return
		}
		m.pressed = true
		pe.Type = PointerPress
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		pe.Type = PointerMove
	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		pe.Type = PointerRelease
	default:
		return
	}
	m.Picker.Pointer(pe)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	now := m.now()
	p := m.Picker
	if p.Editing() {
		switch msg.Type {
		case tea.KeyEnter:
			p.Blur()
		case tea.KeyEscape:
			p.CancelEdit()
		case tea.KeyBackspace:
			p.Backspace()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				p.InsertRune(r, now)
			}
		}
		return
	}
	switch msg.Type {
	case tea.KeyUp:
		p.KeyUp(now)
	case tea.KeyDown:
		p.KeyDown(now)
	case tea.KeyEnter:
		p.BeginEdit()
	}
}

func (m Model) contains(x, y int) bool {
	w, h := m.buf.Size()
	return x >= m.posX && x < m.posX+w && y >= m.posY && y < m.posY+h
}

// View renders the picker into its cell buffer and converts it to a
// styled string.
func (m Model) View() string {
	m.buf.Clear()
	m.Picker.Render(m.buf)
	return renderANSI(m.buf)
}

// renderANSI converts a cell buffer to a lipgloss-styled string,
// batching runs of identically styled cells.
func renderANSI(b *Buffer) string {
	var out []byte
	w, h := b.Size()
	for y := 0; y < h; y++ {
		var run []rune
		var runStyle Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			out = append(out, lipStyle(runStyle).Render(string(run))...)
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			cell := b.Get(x, y)
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			if len(run) > 0 && !cell.Style.Equal(runStyle) {
				flush()
			}
			runStyle = cell.Style
			run = append(run, r)
		}
		flush()
		if y < h-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

var lipCache = map[Style]lipgloss.Style{}

// lipStyle maps a cell style to a lipgloss style.
func lipStyle(s Style) lipgloss.Style {
	if ls, ok := lipCache[s]; ok {
		return ls
	}
	ls := lipgloss.NewStyle()
	if c, ok := lipColor(s.FG); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipColor(s.BG); ok {
		ls = ls.Background(c)
	}
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrInverse) {
		ls = ls.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		ls = ls.Strikethrough(true)
	}
	lipCache[s] = ls
	return ls
}

func lipColor(c Color) (lipgloss.Color, bool) {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	default:
		return "", false
	}
}
