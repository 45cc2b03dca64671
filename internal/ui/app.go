package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/showcase/internal/carousel"
	"github.com/five82/showcase/internal/config"
	"github.com/five82/showcase/internal/menu"
	"github.com/five82/showcase/internal/prefs"
	"github.com/five82/showcase/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Menu      *menu.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	// Refresh asks the poller for an immediate refresh; nil disables the key.
	Refresh  func()
	Logger   *zap.Logger
	PollTick time.Duration
}

// Model is the root Bubble Tea model.
type Model struct {
	store     *state.Store
	menu      *menu.Store
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	refresh   func()
	logger    *zap.Logger
	pollTick  time.Duration
	keys      keyMap

	theme    Theme
	page     Page
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	snapshot    state.Snapshot
	lastUpdated time.Time

	carousel         carousel.Model
	homeViewport     viewport.Model
	productsViewport viewport.Model

	logViewport viewport.Model
	logState    logState

	initCmd tea.Cmd
}

// New creates the root model. When the menu starts on Home the carousel is
// started here so that its first tick is issued by Init.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}
	menuStore := opts.Menu
	if menuStore == nil {
		menuStore = menu.NewStore()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		store:            opts.Store,
		menu:             menuStore,
		config:           opts.Config,
		prefs:            opts.Prefs,
		prefsPath:        prefsPath,
		refresh:          opts.Refresh,
		logger:           logger.Named("ui"),
		pollTick:         pollTick,
		keys:             DefaultKeyMap(),
		theme:            GetTheme(opts.Prefs.Theme),
		homeViewport:     viewport.New(0, 0),
		productsViewport: viewport.New(0, 0),
		logViewport:      viewport.New(0, 0),
		logState:         newLogState(),
	}
	m.carousel = carousel.New(nil, carousel.Options{
		Autoplay: opts.Prefs.AutoplayOr(opts.Config.Carousel.Autoplay),
		Interval: opts.Config.Carousel.Interval,
	})
	m.carousel.Styles = m.theme.CarouselStyles()

	if m.store != nil {
		m.applySnapshot(m.store.Snapshot())
	}

	m.page = pageAt(m.menu.State().SelectedIndex)
	if m.page == PageHome {
		m.initCmd = m.carousel.Start()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick), m.initCmd}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.page == PageDiagnostics {
		cmds = append(cmds, m.readLogsCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		cmd := m.applySnapshot(state.Snapshot(msg))
		return m, cmd

	case carousel.TickMsg:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd

	case logTailMsg:
		m.handleLogTail(msg)
		return m, nil

	case logErrorMsg:
		m.logState.err = msg.err
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.page {
	case PageProducts:
		return m.renderProducts()
	case PageDiagnostics:
		return m.renderDiagnostics()
	default:
		return m.renderHome()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	// The filter input owns the keyboard while it is open.
	if m.page == PageDiagnostics && m.logState.filterActive {
		return m.handleLogFilterInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.refresh == nil {
			return m, nil
		}
		m.refresh()
		m.notice = "Refresh requested"
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		return m, m.selectPage(int(m.page) + 1)

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.selectPage(int(m.page) - 1)

	case key.Matches(msg, m.keys.Home):
		return m, m.selectPage(int(PageHome))

	case key.Matches(msg, m.keys.Products):
		return m, m.selectPage(int(PageProducts))

	case key.Matches(msg, m.keys.Diagnostics):
		return m, m.selectPage(int(PageDiagnostics))
	}

	switch m.page {
	case PageProducts:
		return m.handleScrollKey(&m.productsViewport, msg)
	case PageDiagnostics:
		return m.handleDiagnosticsKey(msg)
	default:
		return m.handleHomeKey(msg)
	}
}

// selectPage records the new menu index in the menu store and brings the page
// in. Leaving Home stops the carousel so its pending tick is dropped.
func (m *Model) selectPage(index int) tea.Cmd {
	m.menu.Dispatch(menu.SetIndex{Index: wrapIndex(index)})
	next := pageAt(m.menu.State().SelectedIndex)
	if next == m.page {
		return nil
	}
	prev := m.page
	m.page = next
	m.notice = ""

	var cmds []tea.Cmd
	if prev == PageHome {
		m.carousel.Stop()
	}
	switch next {
	case PageHome:
		cmds = append(cmds, m.carousel.Start())
	case PageDiagnostics:
		cmds = append(cmds, m.readLogsCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ck := m.carousel.KeyMap
	if !key.Matches(msg, ck.Previous, ck.Next, ck.ToggleAutoplay, ck.Jump) {
		m.homeViewport.SetContent(m.homeContent())
		return m.handleScrollKey(&m.homeViewport, msg)
	}

	before := m.carousel.Autoplay()
	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Update(msg)
	if after := m.carousel.Autoplay(); after != before {
		m.prefs = m.prefs.WithAutoplay(after)
		m.savePrefs()
	}
	return m, cmd
}

func (m Model) handleScrollKey(vp *viewport.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	*vp, cmd = vp.Update(msg)
	return m, cmd
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.page == PageDiagnostics && m.logState.follow {
		cmds = append(cmds, m.readLogsCmd())
	}
	return m, tea.Batch(cmds...)
}

// applySnapshot stores a new snapshot and feeds the carousel. Unchanged slides
// leave the carousel timer alone.
func (m *Model) applySnapshot(snap state.Snapshot) tea.Cmd {
	m.snapshot = snap
	m.lastUpdated = time.Now()
	m.updateProductsViewport()
	return m.carousel.SetSlides(slidesFrom(snap))
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.carousel.Styles = t.CarouselStyles()
	m.updateProductsViewport()
	m.updateLogViewport()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save preferences failed", zap.Error(err))
	}
}

// resize lays out the viewports below the header and command bar.
func (m *Model) resize() {
	contentHeight := max(m.height-2, 1)
	innerWidth := max(m.width-2, 1)

	m.carousel.Width = min(innerWidth, 72)

	m.homeViewport.Width = innerWidth
	m.homeViewport.Height = contentHeight

	m.productsViewport.Width = innerWidth
	m.productsViewport.Height = contentHeight
	m.updateProductsViewport()

	m.logViewport.Width = innerWidth
	m.logViewport.Height = max(contentHeight-1, 1)
	m.updateLogViewport()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
