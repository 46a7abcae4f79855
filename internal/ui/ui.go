package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/drills/internal/cipher"
)

// Focus identifies which pane receives key presses.
type Focus int

const (
	TextFocus Focus = iota
	ShiftFocus
	HistoryFocus
	focusCount
)

// Model represents the TUI application state.
type Model struct {
	focus   Focus
	text    textinput.Model
	shift   textinput.Model
	history list.Model
	result  string
	err     error
	width   int
	height  int
	help    help.Model
	keys    keyMap
}

// NewModel creates the playground with an empty text and a shift of 3.
func NewModel() *Model {
	text := textinput.New()
	text.Prompt = "text  › "
	text.Placeholder = "attack at dawn"
	text.Focus()

	shift := textinput.New()
	shift.Prompt = "shift › "
	shift.Placeholder = "3"
	shift.CharLimit = 32
	shift.SetValue("3")

	history := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	history.Title = "Kept results"
	history.SetShowHelp(false)
	history.SetFilteringEnabled(false)

	m := &Model{
		focus:   TextFocus,
		text:    text,
		shift:   shift,
		history: history,
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.recompute()
	return m
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.SetSize(msg.Width-4, max(msg.Height-14, 4))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.next):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case key.Matches(msg, m.keys.save) && m.focus != HistoryFocus:
			return m, m.keep()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case TextFocus:
		m.text, cmd = m.text.Update(msg)
	case ShiftFocus:
		m.shift, cmd = m.shift.Update(msg)
	case HistoryFocus:
		m.history, cmd = m.history.Update(msg)
	}
	m.recompute()
	return m, cmd
}

// View renders the inputs, the current output and the kept results.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Shift cipher"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n")
	b.WriteString(m.shift.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.err.Render(m.err.Error()))
	} else {
		b.WriteString(styles.output.Render(m.result))
	}
	b.WriteString("\n\n")

	if len(m.history.Items()) > 0 {
		b.WriteString(m.history.View())
		b.WriteString("\n")
	}

	b.WriteString(styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

// Result returns the current output and validation error.
func (m *Model) Result() (string, error) {
	return m.result, m.err
}

// Focused reports which pane has focus.
func (m *Model) Focused() Focus {
	return m.focus
}

// Kept returns the number of results in the history list.
func (m *Model) Kept() int {
	return len(m.history.Items())
}

func (m *Model) recompute() {
	m.result, m.err = cipher.ShiftParams(m.text.Value(), m.shift.Value())
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.text.Blur()
	m.shift.Blur()

	switch f {
	case TextFocus:
		return m.text.Focus()
	case ShiftFocus:
		return m.shift.Focus()
	}
	return nil
}

// keep pushes the current result onto the history list. Invalid input is not kept.
func (m *Model) keep() tea.Cmd {
	if m.err != nil {
		return nil
	}
	item := historyItem{text: m.text.Value(), shift: m.shift.Value(), result: m.result}
	return m.history.InsertItem(0, item)
}
