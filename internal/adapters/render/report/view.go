package report

import (
	"fmt"
	"strings"

	"github.com/bnema/honkbreach/internal/application"
	"github.com/bnema/honkbreach/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const timelineWidth = 48

// DesktopCalls counts what the replay asked of the desktop gateway.
type DesktopCalls struct {
	Reads    int
	Writes   int
	Notifies int
}

type RenderOptions struct {
	// Frames lists every frame instead of only the transitions.
	Frames bool
	Calls  *DesktopCalls
}

func renderView(result application.ReplayResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Replay: %s", scenarioTitle(result.Scenario))),
		s.header.Render(fmt.Sprintf("frames: %d  transitions: %d", len(result.Frames), result.Transitions)),
	}

	if len(result.Frames) == 0 {
		lines = append(lines, s.empty.Render("No frames were played."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(renderTimeline(result.Frames, timelineWidth, s)),
		s.section.Render(renderFrames(result.Frames, opts.Frames, s)),
		s.section.Render(renderDesktop(result, opts.Calls, s)),
	)

	if result.Exited {
		lines = append(lines, s.warning.Render("exit requested: desktop restored"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func scenarioTitle(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return "unnamed"
}

// renderTimeline buckets frames into a fixed width bar; a bucket is marked
// when any of its frames ended hijacked.
func renderTimeline(frames []application.FrameRecord, width int, s styles) string {
	if width <= 0 {
		return ""
	}
	if len(frames) < width {
		width = len(frames)
	}

	var b strings.Builder
	for cell := range width {
		from := cell * len(frames) / width
		to := (cell + 1) * len(frames) / width
		if to <= from {
			to = from + 1
		}

		hijacked := false
		for _, frame := range frames[from:to] {
			if frame.State == domain.TakeoverHijacked {
				hijacked = true
				break
			}
		}

		if hijacked {
			b.WriteString(s.barHijack.Render("#"))
		} else {
			b.WriteString(s.barNormal.Render("-"))
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("timeline:"),
		" ",
		s.barBracket.Render("["),
		b.String(),
		s.barBracket.Render("]"),
	)
}

func renderFrames(frames []application.FrameRecord, all bool, s styles) string {
	lines := make([]string, 0, len(frames))
	for _, frame := range frames {
		if !all && !frame.Transition && !frame.Exited {
			continue
		}
		lines = append(lines, frameLine(frame, s))
	}

	if len(lines) == 0 {
		return s.empty.Render("no transitions")
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func frameLine(frame application.FrameRecord, s styles) string {
	state := s.normal.Render(frame.State.String())
	if frame.State == domain.TakeoverHijacked {
		state = s.hijacked.Render(frame.State.String())
	}

	parts := []string{
		s.key.Render(fmt.Sprintf("#%-4d %8s", frame.Index, frame.At)),
		state,
		s.meta.Render(fmt.Sprintf("task=%d signal=%s combo=%d", frame.Task, frame.Signal, frame.Combo)),
	}
	if frame.Transition {
		parts = append(parts, s.detail.Render("<- transition"))
	}
	if frame.Exited {
		parts = append(parts, s.warning.Render("[exit]"))
	}

	return strings.Join(parts, " ")
}

func renderDesktop(result application.ReplayResult, calls *DesktopCalls, s styles) string {
	lines := []string{
		s.detail.Render("original: " + originalLabel(result.Original)),
		s.detail.Render("final: " + settingsLabel(result.Final)),
	}

	if calls != nil {
		lines = append(lines, s.meta.Render(fmt.Sprintf(
			"desktop calls: %d reads, %d writes, %d notifies",
			calls.Reads, calls.Writes, calls.Notifies,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func originalLabel(original *domain.WallpaperSettings) string {
	if original == nil {
		return "not captured"
	}
	return settingsLabel(*original)
}

func settingsLabel(settings domain.WallpaperSettings) string {
	path := settings.Path
	if path == "" {
		path = "(none)"
	}
	return fmt.Sprintf("%s style=%s tile=%s", path, settings.Style, settings.Tile)
}
