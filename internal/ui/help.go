package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Navigation",
		items: []helpItem{
			{"tab/shift+tab", "Next/previous page"},
			{"1/2/3", "Home/Products/Diagnostics"},
		},
	},
	{
		title: "Carousel",
		items: []helpItem{
			{"←/→", "Previous/next slide"},
			{"alt+1..9", "Jump to slide"},
			{"Space", "Pause/resume autoplay"},
		},
	},
	{
		title: "Scrolling",
		items: []helpItem{
			{"j/k", "Scroll down/up"},
			{"g/G", "Top/bottom"},
			{"ctrl+d/u", "Half page down/up"},
		},
	},
	{
		title: "Diagnostics",
		items: []helpItem{
			{"Space", "Toggle follow mode"},
			{"/", "Filter log lines"},
			{"esc", "Clear filter"},
		},
	},
	{
		title: "General",
		items: []helpItem{
			{"r", "Refresh content"},
			{"T", "Cycle theme"},
			{"h/?", "Toggle help"},
			{"e/ctrl+c", "Quit"},
		},
	},
}

// renderHelp renders the help overlay centered on screen.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(15)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	for i, section := range helpSections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(helpSections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
