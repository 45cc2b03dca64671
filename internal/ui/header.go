package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showcase/internal/cms"
)

// renderHeader renders the logo, menu bar and connection status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("showcase", styles.Logo), m.renderMenu(styles)}
	parts = append(parts, m.statusParts(styles, bg)...)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// renderMenu renders the menu entries with the selected one highlighted.
func (m Model) renderMenu(styles Styles) string {
	selected := m.menu.State().SelectedIndex
	items := make([]string, len(pageTitles))
	for i, title := range pageTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if i == selected {
			items[i] = styles.MenuActive.Render(label)
		} else {
			items[i] = styles.MenuItem.Background(lipgloss.Color(m.theme.Surface)).Render(label)
		}
	}
	return strings.Join(items, "")
}

func (m Model) statusParts(styles Styles, bg BgStyle) []string {
	snap := m.snapshot
	compact := m.width > 0 && m.width < 100
	var parts []string

	switch {
	case !snap.Ready() && snap.LastError != nil:
		parts = append(parts,
			bg.Render("CMS "+classifyConnectionError(snap.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		)
	case !snap.Ready():
		parts = append(parts, bg.Render("Connecting to CMS...", styles.WarningText.Bold(true)))
	case snap.IsOffline():
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	default:
		parts = append(parts, bg.Render("● ONLINE", styles.SuccessText))
	}

	if snap.Ready() && snap.LastError != nil && !compact {
		parts = append(parts, bg.Render(truncate(classifyConnectionError(snap.LastError), 24), styles.WarningText))
	}
	if m.config.Preview {
		parts = append(parts, bg.Render("PREVIEW", styles.AccentText.Bold(true)))
	}
	if !snap.LastSuccess.IsZero() && !compact {
		parts = append(parts, bg.Render("updated "+snap.LastSuccess.Format("15:04:05"), styles.MutedText))
	}
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.FaintText))
	}
	return parts
}

// classifyConnectionError returns a short label for a refresh failure.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *cms.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Unauthorized() {
			return "SIGNED OUT"
		}
		return fmt.Sprintf("ERROR %d", apiErr.Code)
	}
	var statusErr *cms.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("HTTP %d", statusErr.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(strings.ToLower(msg), "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders key hints for the current page.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.page {
	case PageProducts:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"r", "Refresh"},
			{"Tab", "Next"},
			{"?", "More"},
		}
	case PageDiagnostics:
		followLabel := "Pause"
		if !m.logState.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"/", "Filter"},
			{"j/k", "Scroll"},
			{"Tab", "Next"},
			{"?", "More"},
		}
	default:
		autoplayLabel := "Pause"
		if !m.carousel.Autoplay() {
			autoplayLabel = "Play"
		}
		commands = []cmd{
			{"←/→", "Slide"},
			{"Space", autoplayLabel},
			{"j/k", "Scroll"},
			{"r", "Refresh"},
			{"Tab", "Next"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments, bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments, bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// truncate shortens s to max bytes with a trailing ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// truncateMiddle keeps both ends of s, favouring the end where file names
// live.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 5 {
		return s[:max]
	}
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return s[:startLen] + "..." + s[len(s)-endLen:]
}
