package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"localiser/internal/i18n"
)

// ProjectPathModel is a single-question textinput asking for the target
// project directory. Enter with a non-empty value confirms; esc cancels and
// leaves Value empty.
type ProjectPathModel struct {
	input    textinput.Model
	Value    string
	Canceled bool
}

func (m ProjectPathModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ProjectPathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.input.Value() != "" {
				m.Value = m.input.Value()
				m.input.Blur()
				return m, tea.Quit
			}
		case tea.KeyEsc, tea.KeyCtrlC:
			m.Canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ProjectPathModel) View() string {
	if m.Value != "" {
		return fmt.Sprintf("%s %s%s\n", SuccessIcon(true), m.input.Prompt, SelectedItemStyle.Render(m.Value))
	}
	return m.input.View()
}

func NewProjectPathModel(initial string) ProjectPathModel {
	ti := textinput.New()
	ti.Prompt = QuestionStyle.Render("? ") + TitleStyle.Render(i18n.T("prompt.project_path")) + " "
	ti.Placeholder = "/path/to/project"
	ti.PlaceholderStyle = PlaceholderStyle
	ti.SetValue(initial)
	ti.Focus()
	return ProjectPathModel{input: ti}
}
