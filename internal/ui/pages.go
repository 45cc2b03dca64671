package ui

// Page is a top-level screen selected from the menu bar.
type Page int

const (
	PageHome Page = iota
	PageProducts
	PageDiagnostics
)

var pageTitles = []string{"Home", "Products", "Diagnostics"}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageTitles) {
		return "Unknown"
	}
	return pageTitles[p]
}

// pageAt maps a menu index onto a page. Indexes outside the menu select Home.
func pageAt(index int) Page {
	if index < 0 || index >= len(pageTitles) {
		return PageHome
	}
	return Page(index)
}

// wrapIndex keeps a menu index inside the menu, wrapping in both directions.
func wrapIndex(index int) int {
	n := len(pageTitles)
	return ((index % n) + n) % n
}
