package main

import tea "github.com/charmbracelet/bubbletea"

// TestHelper drives a Model through key presses without a terminal.
type TestHelper struct {
	model Model
	cmd   tea.Cmd
}

// NewTestHelper creates a test helper over an array with the given capacity.
func NewTestHelper(capacity uint) *TestHelper {
	m, err := NewModel(capacity)
	if err != nil {
		panic(err)
	}
	return &TestHelper{model: m}
}

// SendKey simulates a special key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	return h.send(tea.KeyMsg{Type: keyType})
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// SendKeyRunes presses each rune in turn
func (h *TestHelper) SendKeyRunes(rs string) *TestHelper {
	for _, r := range rs {
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	return h.send(tea.WindowSizeMsg{Width: width, Height: height})
}

func (h *TestHelper) send(msg tea.Msg) *TestHelper {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	h.cmd = cmd
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// LastCmd returns the command produced by the most recent message
func (h *TestHelper) LastCmd() tea.Cmd {
	return h.cmd
}

// Names returns the live element names in order
func (h *TestHelper) Names() []string {
	var out []string
	for _, l := range h.model.s.arr.All() {
		out = append(out, l.Name)
	}
	return out
}
