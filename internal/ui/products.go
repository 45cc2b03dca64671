package ui

import (
	"strings"

	"github.com/five82/showcase/internal/content"
)

func (m *Model) updateProductsViewport() {
	m.productsViewport.SetContent(m.productsContent())
}

func (m Model) renderProducts() string {
	return m.productsViewport.View()
}

func (m Model) productsContent() string {
	if !m.snapshot.HasProduct {
		return m.renderWaiting("products")
	}
	styles := m.theme.Styles()
	width := m.contentWidth()
	product := m.snapshot.Product

	var b strings.Builder
	b.WriteString(m.pageTitle("Products", product.Published()))
	b.WriteString("\n")

	for _, c := range content.Categories {
		view := product.Category(c)
		b.WriteString("\n")
		b.WriteString(styles.SectionTitle.Render(c.String()))
		b.WriteString("\n")
		info := view.BasicInfo
		b.WriteString(renderEntry(styles, width, info.ProductName, info.ProductDesc, info.ImageURL))

		b.WriteString("  " + styles.AccentText.Render("Application scenarios") + "\n")
		if len(view.Scenarios) == 0 {
			b.WriteString(styles.FaintText.Render("    none") + "\n")
		}
		for _, s := range view.Scenarios {
			b.WriteString(indent(renderEntry(styles, width-2, s.ScenarioName, s.ScenarioDesc, s.ImageURL), "  "))
		}

		b.WriteString("  " + styles.AccentText.Render("Typical cases") + "\n")
		if len(view.CaseProducts) == 0 {
			b.WriteString(styles.FaintText.Render("    none") + "\n")
		}
		for _, cp := range view.CaseProducts {
			b.WriteString(indent(renderEntry(styles, width-2, cp.ProductName, cp.ProductDesc, cp.ImageURL), "  "))
		}
	}
	return b.String()
}

func indent(block, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
