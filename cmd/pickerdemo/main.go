// pickerdemo: a mouse-driven scroll-wheel number picker. Drag the
// wheel, fling it, tap the zones above/below the dividers to step,
// hold them to repeat, or press Enter to type a value directly.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"picker"
)

var (
	minValue = flag.Int("min", 0, "lower bound")
	maxValue = flag.Int("max", 100, "upper bound")
	wrap     = flag.Bool("wrap", true, "wrap past the range edges")
	months   = flag.Bool("months", false, "pick month names instead of numbers")
	interval = flag.Duration("interval", 300*time.Millisecond, "long-press repeat interval")
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// The wheel's top-left cell on screen: outer padding plus the header,
// blank line and border drawn above/left of it in View. Mouse events
// are translated by this position.
const (
	pickerWidth  = 16
	pickerHeight = 9
	pickerX      = 3
	pickerY      = 4
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type model struct {
	wheel  picker.Model
	status *string
	state  picker.ScrollState
}

func newModel() model {
	p := picker.New()
	if *months {
		if err := p.SetRange(1, 12); err != nil {
			log.Fatal(err)
		}
		p.SetDisplayedValues(monthNames)
	} else if err := p.SetRange(*minValue, *maxValue); err != nil {
		log.Fatal(err)
	}
	p.SetWrapSelectorWheel(*wrap)
	p.SetLongPressUpdateInterval(*interval)
	p.SetSelectedTextStyle(picker.DefaultStyle().Foreground(picker.BrightCyan).Bold())
	p.SetTextStyle(picker.DefaultStyle().Dim())
	p.SetDividerStyle(picker.DefaultStyle().Foreground(picker.BrightBlack))

	m := model{
		wheel:  picker.NewModel(p, pickerWidth, pickerHeight).Position(pickerX, pickerY),
		status: new(string),
	}
	status := m.status
	p.OnValueChanged(func(prev, next int) {
		*status = fmt.Sprintf("changed %d -> %d", prev, next)
	})
	return m
}

func (m model) Init() tea.Cmd {
	return m.wheel.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if !m.wheel.Picker.Editing() {
			switch key.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		} else if key.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.wheel, cmd = m.wheel.Update(msg)
	m.state = m.wheel.Picker.State()
	return m, cmd
}

func (m model) View() string {
	p := m.wheel.Picker

	header := titleStyle.Render("number picker")
	value := valueStyle.Render(fmt.Sprintf("value: %d   state: %s   %s", p.Value(), m.state, *m.status))
	help := helpStyle.Render("drag/fling the wheel · tap or hold the outer zones · enter: type · q: quit")

	wheel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Render(m.wheel.View())

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", wheel, "", value, help)
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func main() {
	flag.Parse()

	prog := tea.NewProgram(newModel(),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := prog.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
