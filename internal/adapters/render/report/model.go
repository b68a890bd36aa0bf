package report

import (
	"errors"
	"io"

	"github.com/bnema/honkbreach/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	result application.ReplayResult
	opts   RenderOptions
	styles styles
	output string
}

func newModel(result application.ReplayResult, opts RenderOptions) model {
	return model{
		result: result,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.result, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out a replay run as a terminal report: frame and transition
// counts, a hijack timeline, the transition frames (every frame with
// opts.Frames) and the wallpaper captured before and left after the run.
func Render(result application.ReplayResult, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(result, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
