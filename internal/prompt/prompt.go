// Package prompt reads interactive answers from the invoking user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"localiser/internal/i18n"
	"localiser/internal/tui"
)

// Prompter supplies answers the run cannot derive on its own.
type Prompter interface {
	ProjectPath() (string, error)
}

// ForStreams picks the TUI prompter when both streams are bound to a
// terminal, and the plain line prompter otherwise (pipes, tests, CI).
func ForStreams(quiet bool, in io.Reader, out io.Writer) Prompter {
	if tui.ShouldUseTUI(quiet, in, out) {
		return TUIPrompter{In: in, Out: out}
	}
	return LinePrompter{In: in, Out: out}
}

// LinePrompter asks on plain streams, one line per answer.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p LinePrompter) ProjectPath() (string, error) {
	_, _ = fmt.Fprintf(p.Out, "%s: ", i18n.T("prompt.project_path"))
	answer, err := readLine(p.In)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func readLine(reader io.Reader) (string, error) {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return scanner.Text(), nil
}

// TUIPrompter runs the textinput model on an attached terminal.
type TUIPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p TUIPrompter) ProjectPath() (string, error) {
	program := tea.NewProgram(tui.NewProjectPathModel(""), tui.ProgramOptions(p.In, p.Out)...)
	final, err := program.Run()
	if err != nil {
		return "", err
	}

	model, ok := final.(tui.ProjectPathModel)
	if !ok {
		return "", errors.New("unexpected prompt model")
	}
	if model.Canceled {
		return "", nil
	}
	return strings.TrimSpace(model.Value), nil
}
