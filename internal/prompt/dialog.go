package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/keeperdemo/internal/common"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// runProgram is a test seam for running a bubbletea program.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

type dialogModel struct {
	input     textinput.Model
	title     string
	label     string
	errMsg    string
	submitted bool
	cancelled bool
	width     int
	height    int
}

func newDialogModel(title, label string) dialogModel {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Placeholder = "master password"
	ti.CharLimit = 1024
	ti.Width = 32
	ti.Focus()

	return dialogModel{input: ti, title: title, label: label}
}

func (m dialogModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.input.Value() == "" {
				m.errMsg = "Password cannot be empty"
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dialogModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	body := titleStyle.Render(m.title) + "\n" +
		m.label + "\n\n" +
		m.input.View() + "\n\n"
	if m.errMsg != "" {
		body += errorStyle.Render(m.errMsg) + "\n"
	}
	body += subtleStyle.Render("enter: unlock • esc: cancel")

	box := boxStyle.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// Dialog asks for the password in a full-screen terminal dialog.
type Dialog struct {
	Title string
	// In and Out default to the process terminal when nil.
	In  io.Reader
	Out io.Writer
}

// PromptPassword shows the dialog and blocks until the user submits or
// cancels it.
func (d *Dialog) PromptPassword(ctx context.Context, label string) ([]byte, error) {
	title := d.Title
	if title == "" {
		title = "Unlock vault"
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if d.In != nil {
		opts = append(opts, tea.WithInput(d.In))
	}
	if d.Out != nil {
		opts = append(opts, tea.WithOutput(d.Out))
	}

	final, err := runProgram(newDialogModel(title, label), opts...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, common.ErrCancelled
		}
		return nil, fmt.Errorf("password dialog: %w", err)
	}

	m, ok := final.(dialogModel)
	if !ok {
		return nil, fmt.Errorf("password dialog: unexpected model %T", final)
	}
	if m.cancelled || !m.submitted {
		return nil, common.ErrCancelled
	}
	return []byte(m.input.Value()), nil
}
