package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showcase/internal/carousel"
	"github.com/five82/showcase/internal/state"
)

// slidesFrom builds carousel slides from the published or draft carousel
// images of the snapshot's homepage.
func slidesFrom(snap state.Snapshot) []carousel.Slide {
	if !snap.HasHomepage {
		return nil
	}
	images := snap.Homepage.CarouselImages()
	if len(images) == 0 {
		return nil
	}
	slides := make([]carousel.Slide, 0, len(images))
	for _, img := range images {
		slides = append(slides, carousel.Slide{Source: img.ImageURL, AltText: img.ImageName})
	}
	return slides
}

func (m Model) renderHome() string {
	vp := m.homeViewport
	vp.SetContent(m.homeContent())
	return vp.View()
}

func (m Model) homeContent() string {
	styles := m.theme.Styles()
	if !m.snapshot.HasHomepage {
		return m.renderWaiting("homepage")
	}

	view := m.snapshot.Homepage.Resolved()
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.pageTitle("Homepage", view.Published))
	b.WriteString("\n\n")

	if m.carousel.Len() == 0 {
		b.WriteString(styles.FaintText.Render("No carousel images"))
	} else {
		b.WriteString(m.carousel.View())
	}
	b.WriteString("\n\n")

	b.WriteString(styles.SectionTitle.Render("Main products"))
	b.WriteString("\n")
	if len(view.MainProducts) == 0 {
		b.WriteString(styles.FaintText.Render("  none"))
		b.WriteString("\n")
	}
	for _, p := range view.MainProducts {
		b.WriteString(renderEntry(styles, width, p.ProductName, p.ProductDesc, p.ImageURL))
	}
	b.WriteString("\n")

	b.WriteString(styles.SectionTitle.Render("Typical customers"))
	b.WriteString("\n")
	if view.TypicalCustomer.ImageURL == "" {
		b.WriteString(styles.FaintText.Render("  none"))
	} else {
		b.WriteString("  " + styles.MutedText.Render(view.TypicalCustomer.ImageURL))
	}
	b.WriteString("\n")
	return b.String()
}

// renderWaiting is shown before the first successful fetch of a record.
func (m Model) renderWaiting(what string) string {
	styles := m.theme.Styles()
	if m.snapshot.LastError != nil {
		return styles.DangerText.Render(fmt.Sprintf("Could not load %s: %s", what, classifyConnectionError(m.snapshot.LastError))) +
			"\n" + styles.MutedText.Render(m.snapshot.LastError.Error())
	}
	return styles.WarningText.Render(fmt.Sprintf("Loading %s...", what))
}

// pageTitle renders a page heading with a DRAFT badge for unpublished records.
func (m Model) pageTitle(title string, published bool) string {
	styles := m.theme.Styles()
	out := styles.Text.Bold(true).Render(title)
	if !published {
		out += " " + styles.Badge.Render("DRAFT")
	}
	if m.config.Preview {
		out += " " + styles.AccentText.Render("(preview)")
	}
	return out
}

// renderEntry renders a named item with a wrapped description and image URL.
func renderEntry(styles Styles, width int, name, desc, image string) string {
	var b strings.Builder
	if name == "" {
		name = "(untitled)"
	}
	b.WriteString("  • " + styles.Text.Bold(true).Render(name) + "\n")
	if desc != "" {
		wrapped := lipgloss.NewStyle().Width(max(width-4, 10)).Render(desc)
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString("    " + styles.MutedText.Render(line) + "\n")
		}
	}
	if image != "" {
		b.WriteString("    " + styles.FaintText.Render(image) + "\n")
	}
	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 2 {
		return 80
	}
	return m.width - 2
}
