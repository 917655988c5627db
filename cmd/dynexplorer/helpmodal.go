package main

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// mainView wraps the main UI for use as the overlay background.
type mainView struct {
	model *Model
}

func newMainView(m *Model) *mainView {
	return &mainView{model: m}
}

func (v *mainView) Init() tea.Cmd { return nil }

// Update is a no-op; the parent Model handles all messages.
func (v *mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

// View fills the window so the modal can be centered over it.
func (v *mainView) View() string {
	main := v.model.renderMain()
	if v.model.width == 0 || v.model.height == 0 {
		return main
	}
	return lipgloss.Place(v.model.width, v.model.height, lipgloss.Left, lipgloss.Top, main)
}

// helpModal renders the full key map in a bordered box.
type helpModal struct {
	keys KeyMap
	help help.Model
}

func newHelpModal(keys KeyMap) *helpModal {
	h := help.New()
	h.ShowAll = true
	return &helpModal{keys: keys, help: h}
}

func (h *helpModal) Init() tea.Cmd { return nil }

func (h *helpModal) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h *helpModal) View() string {
	return modalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		helpTitleStyle.Render("Keyboard Shortcuts"),
		h.help.View(h.keys),
	))
}
