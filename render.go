package picker

import "math"

// Render draws the selector wheel onto the canvas: the three window
// rows at their base position plus the scroll offset, the selection
// dividers around the middle row, the pressed-zone pulse, and the edit
// field when text entry is active. The picker lays itself out to the
// canvas size on first use or resize.
func (p *NumberPicker) Render(c Canvas) {
	w, h := c.Size()
	p.Layout(w, h)
	if !p.layoutValid() {
		return
	}

	y := p.offset
	for i, idx := range p.wheel.indices {
		row := int(math.Round(y / p.pxPerRow))
		if i == windowMid && p.ed.active {
			p.renderEdit(c, row)
		} else {
			style := p.textStyle
			if i == windowMid {
				style = p.selectedStyle
			}
			p.writeCentered(c, row, p.rng.label(idx), style)
		}
		y += p.elementHeight
	}

	p.renderPulse(c)
	p.renderDividers(c)
}

// renderEdit draws the text being edited in place of the middle label,
// with the selection (or the cursor cell) inverted.
func (p *NumberPicker) renderEdit(c Canvas, row int) {
	text := string(p.ed.text)
	x := (p.widthCols - stringCells(text)) / 2
	if x < 0 {
		x = 0
	}
	c.WriteString(x, row, text, p.selectedStyle)

	// Invert the selected span, or the cursor cell when collapsed.
	start, end := p.ed.selStart, p.ed.selEnd
	if start == end {
		end = start + 1
	}
	for i := start; i < end; i++ {
		cell := c.Get(x+i, row)
		cell.Style = p.selectedStyle.Inverted()
		c.Set(x+i, row, cell)
	}
}

// renderPulse inverts the pressed inert zone.
func (p *NumberPicker) renderPulse(c Canvas) {
	var from, to int
	switch p.pressedZone {
	case zoneDecrement:
		from, to = 0, p.rowAt(p.topDividerY)
	case zoneIncrement:
		from, to = p.rowAt(p.bottomDividerY)+1, p.heightRows
	default:
		return
	}
	for row := from; row < to; row++ {
		for x := 0; x < p.widthCols; x++ {
			cell := c.Get(x, row)
			cell.Style = cell.Style.Inverted()
			c.Set(x, row, cell)
		}
	}
}

// renderDividers draws the horizontal selection dividers, the top one
// growing upward and the bottom one downward as the height increases.
func (p *NumberPicker) renderDividers(c Canvas) {
	if p.dividerRows == 0 {
		return
	}
	topRow := p.rowAt(p.topDividerY)
	bottomRow := p.rowAt(p.bottomDividerY)
	midRow := p.rowAt(p.initialOffset + p.elementHeight)
	if topRow == midRow || bottomRow == midRow {
		// Not enough height to separate the dividers from the value.
		return
	}
	for i := 0; i < p.dividerRows; i++ {
		c.HLine(0, topRow-i, p.widthCols, '─', p.dividerStyle)
		c.HLine(0, bottomRow+i, p.widthCols, '─', p.dividerStyle)
	}
}

// rowAt maps a pixel Y to a cell row.
func (p *NumberPicker) rowAt(y float64) int {
	return int(math.Round(y / p.pxPerRow))
}

// writeCentered writes a label centered horizontally on the given row.
func (p *NumberPicker) writeCentered(c Canvas, row int, s string, style Style) {
	x := (p.widthCols - stringCells(s)) / 2
	if x < 0 {
		x = 0
	}
	c.WriteString(x, row, s, style)
}
