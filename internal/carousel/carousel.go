package carousel

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is used when Options.Interval is not positive.
const DefaultInterval = 3 * time.Second

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Slide is one carousel entry.
type Slide struct {
	Source  string
	AltText string
}

// Options configure a new Model.
type Options struct {
	Autoplay bool
	Interval time.Duration
}

// TickMsg advances an armed carousel. Ticks from a disarmed or re-armed
// carousel carry an old tag and are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Model is a Bubble Tea carousel component.
type Model struct {
	KeyMap KeyMap
	Styles Styles
	// Width constrains the slide frame; zero renders at natural width.
	Width int

	id       int
	tag      int
	slides   []Slide
	active   int
	autoplay bool
	interval time.Duration
	mounted  bool
	armed    bool
}

// New creates a carousel over slides. The autoplay timer is not armed until
// Start is called.
func New(slides []Slide, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		KeyMap:   DefaultKeyMap(),
		Styles:   DefaultStyles(),
		id:       nextID(),
		slides:   slices.Clone(slides),
		autoplay: opts.Autoplay,
		interval: interval,
	}
}

// ID identifies this instance in TickMsg.
func (m Model) ID() int {
	return m.id
}

// Len returns the number of slides.
func (m Model) Len() int {
	return len(m.slides)
}

// Slides returns a copy of the slides.
func (m Model) Slides() []Slide {
	return slices.Clone(m.slides)
}

// Active returns the active index; ok is false when there are no slides.
func (m Model) Active() (int, bool) {
	if len(m.slides) == 0 {
		return 0, false
	}
	return m.active, true
}

// Current returns the active slide.
func (m Model) Current() (Slide, bool) {
	idx, ok := m.Active()
	if !ok {
		return Slide{}, false
	}
	return m.slides[idx], true
}

// Autoplay reports whether autoplay is enabled.
func (m Model) Autoplay() bool {
	return m.autoplay
}

// Interval returns the autoplay interval.
func (m Model) Interval() time.Duration {
	return m.interval
}

// Running reports whether an autoplay tick is currently armed.
func (m Model) Running() bool {
	return m.armed
}

// Next moves forward, wrapping to the first slide.
func (m *Model) Next() {
	n := len(m.slides)
	if n <= 1 {
		return
	}
	m.active = (m.active + 1) % n
}

// Previous moves back, wrapping to the last slide.
func (m *Model) Previous() {
	n := len(m.slides)
	if n <= 1 {
		return
	}
	m.active = (m.active - 1 + n) % n
}

// GoTo activates index i. Out of range indexes are ignored.
func (m *Model) GoTo(i int) {
	if i < 0 || i >= len(m.slides) {
		return
	}
	m.active = i
}

// Start marks the carousel as displayed and arms autoplay when it applies.
func (m *Model) Start() tea.Cmd {
	m.mounted = true
	return m.arm()
}

// Stop marks the carousel as hidden. Any pending tick becomes stale.
func (m *Model) Stop() {
	m.mounted = false
	m.disarm()
}

// SetAutoplay toggles autoplay and re-arms the timer.
func (m *Model) SetAutoplay(on bool) tea.Cmd {
	m.autoplay = on
	return m.arm()
}

// SetInterval changes the autoplay interval and re-arms the timer.
func (m *Model) SetInterval(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = DefaultInterval
	}
	if d == m.interval {
		return nil
	}
	m.interval = d
	return m.arm()
}

// SetSlides replaces the slides. Unchanged slides leave the timer alone.
func (m *Model) SetSlides(slides []Slide) tea.Cmd {
	if slices.Equal(m.slides, slides) {
		return nil
	}
	m.slides = slices.Clone(slides)
	if m.active >= len(m.slides) {
		m.active = 0
	}
	return m.arm()
}

// arm invalidates the previous tick and, when displayed with autoplay on and
// more than one slide, schedules a fresh one.
func (m *Model) arm() tea.Cmd {
	m.disarm()
	if !m.mounted || !m.autoplay || len(m.slides) <= 1 {
		return nil
	}
	m.armed = true
	return m.tick()
}

func (m *Model) disarm() {
	m.tag++
	m.armed = false
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}

// Update handles autoplay ticks and navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != m.id || msg.tag != m.tag || !m.armed {
			return m, nil
		}
		m.Next()
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Previous):
			m.Previous()
		case key.Matches(msg, m.KeyMap.Next):
			m.Next()
		case key.Matches(msg, m.KeyMap.ToggleAutoplay):
			return m, m.SetAutoplay(!m.autoplay)
		case key.Matches(msg, m.KeyMap.Jump):
			if idx, ok := jumpIndex(msg); ok {
				m.GoTo(idx)
			}
		}
	}
	return m, nil
}
