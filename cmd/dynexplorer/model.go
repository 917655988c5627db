package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/dynarray/array"
	"github.com/joshuapare/dynarray/internal/label"
	"github.com/joshuapare/dynarray/internal/logger"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// session holds the state shared by every copy of Model. Bubbletea passes
// Model by value, so anything the grow hook writes must live behind a pointer.
type session struct {
	arr      *array.Vec[label.Label]
	next     int
	growths  int
	lastGrow string
}

// Model is the top-level bubbletea model.
type Model struct {
	s    *session
	keys KeyMap
	help help.Model

	// cursor selects a slot in [0, capacity), live or not.
	cursor int

	showHelp bool

	// Status message for the last operation
	status    string
	statusErr bool

	width  int
	height int
}

// NewModel creates an explorer over a new array with the given initial capacity.
func NewModel(capacity uint) (Model, error) {
	s := &session{}
	arr, err := array.New[label.Label](capacity, array.WithGrowHook[label.Label](func(oldCap, newCap uint64) {
		s.growths++
		s.lastGrow = fmt.Sprintf("grew %d → %d slots", oldCap, newCap)
		logger.Debug("array grew", "from", oldCap, "to", newCap)
	}))
	if err != nil {
		return Model{}, err
	}
	s.arr = arr

	return Model{
		s:    s,
		keys: DefaultKeyMap(),
		help: help.New(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the array's storage.
func (m Model) Close() {
	m.s.arr.Release()
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(op string, err error) {
	m.status = fmt.Sprintf("%s: %v", op, err)
	m.statusErr = true
	logger.Warn("operation failed", "op", op, "cursor", m.cursor, "error", err)
}

// clampCursor keeps the cursor on an existing slot after the capacity changes.
func (m *Model) clampCursor() {
	c := int(m.s.arr.Cap())
	switch {
	case c == 0:
		m.cursor = 0
	case m.cursor >= c:
		m.cursor = c - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}
