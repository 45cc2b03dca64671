package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/showcase/internal/logtail"
)

const logTailLines = 400

type logState struct {
	entries []logtail.Entry
	follow  bool
	err     error

	filterActive bool
	filterInput  textinput.Model
	filter       string
}

func newLogState() logState {
	ti := textinput.New()
	ti.Placeholder = "Filter log..."
	ti.CharLimit = 100
	ti.Prompt = "/"
	return logState{follow: true, filterInput: ti}
}

type logTailMsg struct {
	entries []logtail.Entry
}

type logErrorMsg struct {
	err error
}

// readLogsCmd reads the tail of the application log off the UI goroutine.
func (m Model) readLogsCmd() tea.Cmd {
	path := m.config.LogPath()
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logTailMsg{entries: logtail.ParseLines(lines)}
	}
}

func (m *Model) handleLogTail(msg logTailMsg) {
	m.logState.entries = msg.entries
	m.logState.err = nil
	m.updateLogViewport()
}

func (m *Model) updateLogViewport() {
	m.logViewport.SetContent(m.renderLogContent())
	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

// visibleEntries applies the case-insensitive filter.
func (m Model) visibleEntries() []logtail.Entry {
	needle := strings.ToLower(strings.TrimSpace(m.logState.filter))
	if needle == "" {
		return m.logState.entries
	}
	out := make([]logtail.Entry, 0, len(m.logState.entries))
	for _, e := range m.logState.entries {
		hay := strings.ToLower(e.Level + " " + e.Logger + " " + e.Message + " " + e.FieldString())
		if strings.Contains(hay, needle) {
			out = append(out, e)
		}
	}
	return out
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	entries := m.visibleEntries()
	if len(entries) == 0 {
		if m.logState.filter != "" {
			return styles.FaintText.Render("No entries match the filter")
		}
		return styles.FaintText.Render("Log is empty")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Level == "" {
			lines = append(lines, styles.MutedText.Render(e.Message))
			continue
		}
		parts := make([]string, 0, 5)
		if !e.Time.IsZero() {
			parts = append(parts, styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
		}
		parts = append(parts, styles.LevelStyle(e.Level).Render(strings.ToUpper(e.Level)))
		if e.Logger != "" {
			parts = append(parts, styles.AccentText.Render("["+e.Logger+"]"))
		}
		parts = append(parts, styles.Text.Render(e.Message))
		if fields := e.FieldString(); fields != "" {
			parts = append(parts, styles.MutedText.Render(fields))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDiagnostics() string {
	return m.renderLogStatus() + "\n" + m.logViewport.View()
}

func (m Model) renderLogStatus() string {
	styles := m.theme.Styles()
	if m.logState.filterActive {
		return m.logState.filterInput.View()
	}

	parts := []string{
		styles.FaintText.Render("log") + " " + styles.MutedText.Render(truncateMiddle(m.config.LogPath(), 50)),
	}
	if m.logState.follow {
		parts = append(parts, styles.SuccessText.Render("following"))
	} else {
		parts = append(parts, styles.WarningText.Render("paused"))
	}
	if m.logState.filter != "" {
		parts = append(parts, styles.AccentText.Render("/"+truncate(m.logState.filter, 18)))
	}
	parts = append(parts, styles.FaintText.Render(fmt.Sprintf("%d entries", len(m.visibleEntries()))))
	if m.logState.err != nil {
		parts = append(parts, styles.DangerText.Render(m.logState.err.Error()))
	}
	return strings.Join(parts, "  ")
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			m.logViewport.GotoBottom()
			return m, m.readLogsCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.logState.filterActive = true
		m.logState.filterInput.SetValue(m.logState.filter)
		m.logState.filterInput.CursorEnd()
		return m, m.logState.filterInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.logState.filter != "" {
			m.logState.filter = ""
			m.updateLogViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.logState.follow = true
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	m.logState.follow = m.logViewport.AtBottom()
	return m, cmd
}

func (m Model) handleLogFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.logState.filter = strings.TrimSpace(m.logState.filterInput.Value())
		m.logState.filterActive = false
		m.logState.filterInput.Blur()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.logState.filterActive = false
		m.logState.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.logState.filterInput, cmd = m.logState.filterInput.Update(msg)
	return m, cmd
}
