// Package ui implements the showcase terminal interface with Bubble Tea.
//
// The interface has three pages selected through the menu store: Home with the
// product carousel and summaries, Products with per-category details, and
// Diagnostics with a filtered tail of the application log. Content is read
// from state.Store on a fixed tick; the poller in package app keeps the store
// current.
//
// Key bindings:
//
//   - tab/shift+tab or 1/2/3: switch pages
//   - ←/→, alt+1..9, Space: carousel navigation and autoplay (Home)
//   - j/k, g/G: scroll
//   - Space, /: follow mode and filter (Diagnostics)
//   - r: refresh, T: cycle theme, h/?: help, e/ctrl+c: quit
package ui
