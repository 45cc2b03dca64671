package carousel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	prevControl     = "‹"
	nextControl     = "›"
	activeDot       = "●"
	inactiveDot     = "○"
	emptySourceText = "(no image)"
)

// Styles holds the carousel's lipgloss styles.
type Styles struct {
	Frame           lipgloss.Style
	Caption         lipgloss.Style
	Source          lipgloss.Style
	Control         lipgloss.Style
	Indicator       lipgloss.Style
	ActiveIndicator lipgloss.Style
	Status          lipgloss.Style
}

// DefaultStyles returns neutral styles usable without a theme.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Caption:         lipgloss.NewStyle().Bold(true),
		Source:          lipgloss.NewStyle().Faint(true),
		Control:         lipgloss.NewStyle().Bold(true),
		Indicator:       lipgloss.NewStyle().Faint(true),
		ActiveIndicator: lipgloss.NewStyle().Bold(true),
		Status:          lipgloss.NewStyle().Faint(true),
	}
}

// View renders the active slide. An empty carousel renders nothing and a
// single slide renders without controls or indicators.
func (m Model) View() string {
	slide, ok := m.Current()
	if !ok {
		return ""
	}
	body := m.renderSlide(slide)
	if len(m.slides) == 1 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderControls())
}

func (m Model) renderSlide(s Slide) string {
	caption := s.AltText
	if caption == "" {
		caption = fmt.Sprintf("Slide %d", m.active+1)
	}
	source := s.Source
	if source == "" {
		source = emptySourceText
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.Styles.Caption.Render(caption),
		m.Styles.Source.Render(source),
	)
	frame := m.Styles.Frame
	if m.Width > 2 {
		frame = frame.Width(m.Width - 2)
	}
	return frame.Render(content)
}

func (m Model) renderControls() string {
	dots := make([]string, len(m.slides))
	for i := range m.slides {
		if i == m.active {
			dots[i] = m.Styles.ActiveIndicator.Render(activeDot)
		} else {
			dots[i] = m.Styles.Indicator.Render(inactiveDot)
		}
	}

	status := "paused"
	if m.autoplay {
		status = "every " + m.interval.String()
	}

	return strings.Join([]string{
		m.Styles.Control.Render(prevControl),
		strings.Join(dots, " "),
		m.Styles.Control.Render(nextControl),
		m.Styles.Status.Render(fmt.Sprintf("%d/%d %s", m.active+1, len(m.slides), status)),
	}, "  ")
}
