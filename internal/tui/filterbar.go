package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var boardLabels = [...]struct {
	label string
	mode  boardMode
}{
	{"Departures", boardDeparture},
	{"Arrivals", boardArrival},
}

// renderFilterBar lays out the service type chips, the board toggle and
// the auto-refresh switch as bordered boxes on one row.
func (m Model) renderFilterBar() string {
	chips := make([]string, len(serviceLabels))
	for i, sl := range serviceLabels {
		chips[i] = m.renderChip(sl.label, m.serviceFilters[i], m.focus == focusServices && m.filterCursor == i)
	}

	modes := make([]string, len(boardLabels))
	for i, bl := range boardLabels {
		modes[i] = m.renderChip(bl.label, m.boardMode == bl.mode, m.focus == focusBoard && m.boardCursor == i)
	}

	refresh := m.renderChip("Auto-refresh 30s", m.autoRefresh, m.focus == focusAutoRefresh)

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		panel(m.focus == focusServices, strings.Join(chips, " ")),
		panel(m.focus == focusBoard, strings.Join(modes, " ")),
		panel(m.focus == focusAutoRefresh, refresh),
	)

	if m.lastUpdate.IsZero() {
		return boxes
	}
	return styleMuted.Render(m.updateLine(time.Now())) + "\n" + boxes
}

func (m Model) updateLine(now time.Time) string {
	line := "  Last update:\t" + m.lastUpdate.Format("15:04:05")
	if !m.autoRefresh {
		return line
	}
	remaining := max(autoRefreshInterval-now.Sub(m.lastUpdate), 0)
	return line + fmt.Sprintf("\t(refresh in %ds)", int(remaining.Seconds()))
}

func panel(focused bool, content string) string {
	if focused {
		return stylePanelFocused.Render(content)
	}
	return stylePanelNormal.Render(content)
}

// renderChip shows active chips in brackets and the cursor chip highlighted
func (m Model) renderChip(label string, active bool, focused bool) string {
	text := " " + label + " "
	if active {
		text = "[" + label + "]"
	}
	switch {
	case focused:
		return styleChipCursor.Render(text)
	case active:
		return styleTrain.Render(text)
	}
	return styleMuted.Render(text)
}

// moveChip moves a chip cursor for h/l and the arrow keys
func moveChip(key string, cursor, count int) (int, bool) {
	switch key {
	case "h", "left":
		return max(cursor-1, 0), true
	case "l", "right":
		return min(cursor+1, count-1), true
	}
	return cursor, false
}

// leaveFilterBar handles the keys every filter box shares
func (m Model) leaveFilterBar(key string) (Model, tea.Cmd, bool) {
	switch key {
	case "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil, true
	case "q":
		return m, tea.Quit, true
	}
	return m, nil, false
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if cursor, ok := moveChip(key, m.filterCursor, len(serviceLabels)); ok {
		m.filterCursor = cursor
		return m, nil
	}

	switch key {
	case " ", "enter":
		m.serviceFilters[m.filterCursor] = !m.serviceFilters[m.filterCursor]
		return m.resetBoardCursor(), nil
	case "a":
		return m.toggleAllServices(), nil
	case "tab":
		m.focus = focusBoard
		return m, nil
	}

	m, cmd, _ := m.leaveFilterBar(key)
	return m, cmd
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if cursor, ok := moveChip(key, m.boardCursor, len(boardLabels)); ok {
		m.boardCursor = cursor
		return m, nil
	}

	switch key {
	case " ", "enter":
		if mode := boardLabels[m.boardCursor].mode; mode != m.boardMode {
			m.boardMode = mode
			return m.resetBoardCursor(), nil
		}
		return m, nil
	case "tab":
		m.focus = focusAutoRefresh
		return m, nil
	}

	m, cmd, _ := m.leaveFilterBar(key)
	return m, cmd
}

// toggleAllServices turns every service type on, or off when all are on
func (m Model) toggleAllServices() Model {
	enable := false
	for _, active := range m.serviceFilters {
		enable = enable || !active
	}
	for i := range m.serviceFilters {
		m.serviceFilters[i] = enable
	}
	return m.resetBoardCursor()
}

// resetBoardCursor runs whenever the visible trains change. Both timetables
// come in one reply, so nothing is fetched again.
func (m Model) resetBoardCursor() Model {
	m.trainCursor = 0
	m.closeTrain()
	return m
}
