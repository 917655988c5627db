package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// chromeLines is the number of rows taken by everything except the slot list.
const chromeLines = 7

// View renders the entire UI
func (m Model) View() string {
	if m.showHelp {
		// Rebuilt on every render; stored pointers would go stale because
		// Update returns a new Model.
		modal := overlay.New(
			newHelpModal(m.keys),
			newMainView(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return modal.View()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderSlots(),
		m.renderStatus(),
	)
}

func (m Model) renderHeader() string {
	arr := m.s.arr
	title := headerStyle.Render("Dynamic Array Explorer")
	stats := statsStyle.Render(fmt.Sprintf("size %d  capacity %d  grows %d",
		arr.Size(), arr.Cap(), m.s.growths))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", stats)
}

// renderSlots draws one row per slot: live slots show their element,
// uninitialized ones a placeholder.
func (m Model) renderSlots() string {
	arr := m.s.arr
	capacity := int(arr.Cap())
	if capacity == 0 {
		return paneStyle.Render(emptySlotStyle.Render("(no storage)"))
	}

	size := int(arr.Size())
	data := arr.Data()
	from, to := visibleRange(capacity, m.cursor, m.slotRows())

	var b strings.Builder
	for i := from; i < to; i++ {
		var cell string
		style := emptySlotStyle
		if i < size {
			cell = data[i].String()
			style = liveSlotStyle
		} else {
			cell = "· uninitialized"
		}
		if i == m.cursor {
			style = selectedSlotStyle
		}
		b.WriteString(indexStyle.Render(fmt.Sprint(i)))
		b.WriteString(style.Render(cell))
		if i < to-1 {
			b.WriteByte('\n')
		}
	}
	return paneStyle.Render(b.String())
}

func (m Model) slotRows() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-chromeLines, 1)
}

// visibleRange returns the window of slots to draw so the cursor stays on
// screen. rows <= 0 means no limit.
func visibleRange(total, cursor, rows int) (from, to int) {
	if rows <= 0 || total <= rows {
		return 0, total
	}
	from = cursor - rows/2
	from = max(from, 0)
	from = min(from, total-rows)
	return from, from + rows
}

func (m Model) renderStatus() string {
	var line string
	switch {
	case m.statusErr:
		line = statusErrorStyle.Render(m.status)
	case m.status != "":
		line = statusStyle.Render(m.status)
	default:
		line = statusStyle.Render("ready")
	}
	if m.s.lastGrow != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, growStyle.Render(m.s.lastGrow))
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.help.View(m.keys))
}
