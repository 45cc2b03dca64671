// Package carousel is a Bubble Tea component that cycles through slides.
//
// Navigation wraps in both directions. When autoplay is on, the component
// advances once per interval while it is started and holds more than one
// slide. Re-arming bumps an internal tag and any tick carrying an older tag is
// ignored.
package carousel
