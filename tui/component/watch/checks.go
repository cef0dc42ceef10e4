package watch

import (
	"strings"

	"github.com/mailgate/mailgate/storage"
)

const maxChecks = 1000

type checkListModel struct {
	items      []*storage.Record
	lines      []string
	offset     int
	autoScroll bool
	filters    map[string]bool
}

func newCheckListModel() checkListModel {
	return checkListModel{
		autoScroll: true,
		filters:    make(map[string]bool),
	}
}

func (m *checkListModel) append(recs []*storage.Record, width int) {
	for _, r := range recs {
		m.items = append(m.items, r)
		m.lines = append(m.lines, formatCheck(r, width))
	}
	if len(m.items) > maxChecks {
		drop := len(m.items) - maxChecks
		m.items = m.items[drop:]
		m.lines = m.lines[drop:]
		m.offset -= drop
		if m.offset < 0 {
			m.offset = 0
		}
	}
}

func (m *checkListModel) clear() {
	m.items = nil
	m.lines = nil
	m.offset = 0
	m.autoScroll = true
}

func (m *checkListModel) toggleFilter(band string) {
	if m.filters[band] {
		delete(m.filters, band)
	} else {
		m.filters[band] = true
	}
}

func (m *checkListModel) clearFilters() {
	m.filters = make(map[string]bool)
}

func (m *checkListModel) hasFilters() bool {
	return len(m.filters) > 0
}

func (m checkListModel) filteredLines() []string {
	if !m.hasFilters() {
		return m.lines
	}
	var result []string
	for i, r := range m.items {
		if m.filters[r.RiskBand] {
			result = append(result, m.lines[i])
		}
	}
	return result
}

func (m *checkListModel) scrollUp(n int) {
	m.autoScroll = false
	m.offset -= n
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *checkListModel) scrollDown(n int, viewHeight int) {
	lines := m.filteredLines()
	m.offset += n
	maxOffset := len(lines) - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset >= maxOffset {
		m.offset = maxOffset
		m.autoScroll = true
	}
}

func (m *checkListModel) jumpToBottom(viewHeight int) {
	lines := m.filteredLines()
	m.offset = len(lines) - viewHeight
	if m.offset < 0 {
		m.offset = 0
	}
	m.autoScroll = true
}

func (m *checkListModel) jumpToTop() {
	m.offset = 0
	m.autoScroll = false
}

func (m checkListModel) view(width, height int) string {
	lines := m.filteredLines()

	if m.autoScroll {
		start := len(lines) - height
		if start < 0 {
			start = 0
		}
		visible := lines[start:]
		if len(visible) < height {
			padding := make([]string, height-len(visible))
			for i := range padding {
				padding[i] = ""
			}
			visible = append(visible, padding...)
		}
		return strings.Join(visible, "\n")
	}

	end := m.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[m.offset:end]
	if len(visible) < height {
		padding := make([]string, height-len(visible))
		for i := range padding {
			padding[i] = ""
		}
		visible = append(visible, padding...)
	}
	return strings.Join(visible, "\n")
}
