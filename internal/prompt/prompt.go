// Package prompt implements the interactive yes/no confirmation used before
// installing missing tools.
package prompt

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	messageStyle = lipgloss.NewStyle().Bold(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

// TTY prompts on the attached terminal. In and Out default to the process
// stdin/stdout when nil.
type TTY struct {
	In  io.Reader
	Out io.Writer
}

// Confirm asks a single yes/no question and blocks until answered. An
// aborted prompt (ctrl+c) is a failure, not a "no".
func (t TTY) Confirm(message string) (bool, error) {
	var opts []tea.ProgramOption
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	program := tea.NewProgram(newModel(message), opts...)
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("run confirm prompt: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return false, errors.New("confirm prompt returned unexpected model")
	}
	if m.aborted {
		return false, errors.New("confirmation aborted")
	}
	return m.confirmed, nil
}

type model struct {
	message   string
	confirmed bool
	aborted   bool
	done      bool
}

func newModel(message string) model {
	return model{message: message}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "esc":
		m.done = true
		return m, tea.Quit
	case "ctrl+c":
		m.aborted = true
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return messageStyle.Render(m.message) + " " + hintStyle.Render("[y/n]") + "\n"
}
