package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/dynarray/array"
	"github.com/joshuapare/dynarray/internal/label"
	"github.com/joshuapare/dynarray/internal/logger"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Esc):
				m.showHelp = false
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	arr := m.s.arr

	switch {
	case key.Matches(msg, m.keys.Quit):
		logger.Info("quit requested", "size", arr.Size(), "capacity", arr.Cap())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = int(arr.Cap())
		m.clampCursor()

	case key.Matches(msg, m.keys.Append):
		l := label.New(m.s.next)
		if err := arr.PushBack(l); err != nil {
			m.setError("push back", err)
			break
		}
		m.s.next++
		m.setStatus("pushed %s", l)

	case key.Matches(msg, m.keys.Emplace):
		n := m.s.next
		p, err := arr.EmplaceBack(func(l *label.Label) {
			l.Number = n
			l.Name = emplacedName(n)
		})
		if err != nil {
			m.setError("emplace back", err)
			break
		}
		m.s.next++
		m.setStatus("emplaced %s", *p)

	case key.Matches(msg, m.keys.Pop):
		last, err := arr.Last()
		if err != nil {
			m.setError("pop back", err)
			break
		}
		l := *last
		if err := arr.PopBack(); err != nil {
			m.setError("pop back", err)
			break
		}
		m.setStatus("popped %s", l)

	case key.Matches(msg, m.keys.ShiftRemove):
		l, _ := arr.Get(uint(m.cursor))
		if err := arr.ShiftRemove(uint(m.cursor)); err != nil {
			m.setError("shift-remove", err)
			break
		}
		m.setStatus("shift-removed %s from slot %d", l, m.cursor)

	case key.Matches(msg, m.keys.SwapRemove):
		l, _ := arr.Get(uint(m.cursor))
		if err := arr.SwapRemove(uint(m.cursor)); err != nil {
			m.setError("swap-remove", err)
			break
		}
		m.setStatus("swap-removed %s from slot %d", l, m.cursor)

	case key.Matches(msg, m.keys.Clear):
		n := arr.Size()
		arr.Clear()
		m.setStatus("cleared %d elements", n)

	case key.Matches(msg, m.keys.Reserve):
		next, ok := array.NextCapacity(arr.Cap())
		if !ok {
			m.setError("reserve", array.ErrIndexExhausted)
			break
		}
		if err := arr.Reserve(next); err != nil {
			m.setError("reserve", err)
			break
		}
		m.setStatus("reserved %d slots", next)

	case key.Matches(msg, m.keys.Release):
		arr.Release()
		m.clampCursor()
		m.setStatus("released storage")

	case key.Matches(msg, m.keys.Yank):
		l, err := arr.Get(uint(m.cursor))
		if err != nil {
			m.setError("copy", err)
			break
		}
		if err := writeClipboard(l.String()); err != nil {
			m.setError("copy", err)
			break
		}
		m.setStatus("copied %s", l)
	}

	return m, nil
}
