package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type assetDoneMsg struct {
	path string
	err  error
}

type assetSpinnerModel struct {
	spinner spinner.Model
	label   string
	prepare tea.Cmd
	path    string
	err     error
	done    bool
}

func newAssetSpinnerModel(label string, prepare tea.Cmd) assetSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))),
	)

	return assetSpinnerModel{
		spinner: s,
		label:   label,
		prepare: prepare,
	}
}

func (m assetSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.prepare)
}

func (m assetSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case assetDoneMsg:
		m.done = true
		m.path = msg.path
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m assetSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runAssetSpinner shows a spinner on output while prepare paints the image.
func runAssetSpinner(ctx context.Context, output io.Writer, prepare func(context.Context) (string, error)) (string, error) {
	prepareCmd := func() tea.Msg {
		path, err := prepare(ctx)
		return assetDoneMsg{path: path, err: err}
	}

	p := tea.NewProgram(
		newAssetSpinnerModel("Painting fake breach wallpaper...", prepareCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(assetSpinnerModel)
	if !ok {
		return "", fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.path, result.err
}
