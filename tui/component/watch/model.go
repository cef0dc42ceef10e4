// Package watch implements the live check feed terminal UI.
package watch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

var directionCycle = []string{"", "inbound", "output"}

type Model struct {
	opts   Options
	width  int
	height int

	header    headerModel
	footer    footerModel
	stats     statsModel
	checkList checkListModel
	help      helpModel

	showSidebar     bool
	paused          bool
	directionFilter string
	blockedCount    int
	lastPollAt      time.Time
	lastPollID      uuid.UUID
	ready           bool
}

func New(opts Options) Model {
	return Model{
		opts:            opts,
		header:          newHeaderModel(opts.DirectionFilter),
		footer:          newFooterModel(),
		stats:           newStatsModel(),
		checkList:       newCheckListModel(),
		help:            newHelpModel(),
		showSidebar:     true,
		directionFilter: opts.DirectionFilter,
	}
}

func (m Model) Init() tea.Cmd {
	since := m.opts.Since
	if since.IsZero() {
		since = time.Now().Add(-24 * time.Hour)
	}
	return tea.Batch(
		loadInitialChecks(m.opts.Store, since, m.directionFilter, m.opts.initialLimit()),
		schedulePoll(m.opts.pollInterval()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case newChecksMsg:
		if len(msg.checks) > 0 {
			for _, r := range msg.checks {
				m.stats.record(r)
				if r.Blocked {
					m.blockedCount++
				}
			}
			m.checkList.append(msg.checks, m.streamWidth())
			m.header.blockedCount = m.blockedCount
		}
		if !msg.cursorAt.IsZero() {
			m.lastPollAt = msg.cursorAt
			m.lastPollID = msg.cursorID
		}
		if m.lastPollAt.IsZero() {
			m.lastPollAt = time.Now()
		}
		return m, nil

	case tickMsg:
		if m.paused {
			return m, schedulePoll(m.opts.pollInterval())
		}
		return m, tea.Batch(
			pollChecks(m.opts.Store, m.lastPollAt, m.lastPollID, m.directionFilter, 100),
			schedulePoll(m.opts.pollInterval()),
		)

	case pollErrorMsg:
		m.footer.lastError = msg.err.Error()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "p", " ":
		m.paused = !m.paused
		m.footer.paused = m.paused
		return m, nil

	case "?":
		m.help.toggle()
		return m, nil

	case "up", "k":
		m.checkList.scrollUp(1)
		m.footer.scrollLock = !m.checkList.autoScroll
		return m, nil

	case "down", "j":
		m.checkList.scrollDown(1, m.streamHeight())
		m.footer.scrollLock = !m.checkList.autoScroll
		return m, nil

	case "pgup":
		m.checkList.scrollUp(m.streamHeight())
		m.footer.scrollLock = !m.checkList.autoScroll
		return m, nil

	case "pgdown":
		m.checkList.scrollDown(m.streamHeight(), m.streamHeight())
		m.footer.scrollLock = !m.checkList.autoScroll
		return m, nil

	case "G", "end":
		m.checkList.jumpToBottom(m.streamHeight())
		m.footer.scrollLock = false
		return m, nil

	case "g", "home":
		m.checkList.jumpToTop()
		m.footer.scrollLock = true
		return m, nil

	case "1":
		m.checkList.toggleFilter("safe")
		return m, nil
	case "2":
		m.checkList.toggleFilter("low")
		return m, nil
	case "3":
		m.checkList.toggleFilter("medium")
		return m, nil
	case "4":
		m.checkList.toggleFilter("high")
		return m, nil
	case "5":
		m.checkList.toggleFilter("critical")
		return m, nil
	case "0":
		m.checkList.clearFilters()
		return m, nil

	case "d":
		m.cycleDirectionFilter()
		m.header.directionFilter = m.directionFilter
		return m, nil

	case "c":
		m.checkList.clear()
		return m, nil

	case "s":
		m.showSidebar = !m.showSidebar
		return m, nil
	}

	return m, nil
}

func (m *Model) cycleDirectionFilter() {
	current := m.directionFilter
	for i, d := range directionCycle {
		if d == current {
			m.directionFilter = directionCycle[(i+1)%len(directionCycle)]
			return
		}
	}
	m.directionFilter = ""
}

func (m Model) sidebarVisible() bool {
	return m.showSidebar && m.width >= 90
}

func (m Model) streamWidth() int {
	if m.sidebarVisible() {
		return m.width - sidebarWidth
	}
	return m.width
}

func (m Model) streamHeight() int {
	return m.height - 2 // header + footer
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.header.view(m.width)
	footer := m.footer.view(m.width)

	contentHeight := m.height - 2

	if m.help.visible {
		helpOverlay := m.help.view(m.width, contentHeight)
		return lipgloss.JoinVertical(lipgloss.Left, header, helpOverlay, footer)
	}

	streamW := m.streamWidth()
	stream := lipgloss.NewStyle().Width(streamW).Render(
		m.checkList.view(streamW, contentHeight),
	)

	var content string
	if m.sidebarVisible() {
		sidebar := m.stats.view(contentHeight)
		content = lipgloss.JoinHorizontal(lipgloss.Top, stream, sidebar)
	} else {
		content = stream
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
