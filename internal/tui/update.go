package tui

import (
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case boardResultMsg:
		return m.handleBoardResult(msg)

	case trainResultMsg:
		return m.handleTrainResult(msg)

	case autoRefreshTickMsg:
		return m.handleAutoRefreshTick()

	case countdownTickMsg:
		return m.handleCountdownTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput when focused
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.seq != m.searchSeq {
		return m, nil
	}
	m.stationsLoading = false
	m.stationsErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	m.stations = msg.nodes
	m.stationCursor = 0

	// Auto-select first station and fetch its board
	if len(m.stations) > 0 {
		m.focus = focusStations
		m.searchInput.Blur()
		return m.selectStation(0)
	}

	return m, nil
}

// selectStation starts loading the board of the station at index i.
// Stations without a NodeID cannot be queried.
func (m Model) selectStation(i int) (tea.Model, tea.Cmd) {
	station := m.stations[i]
	if station.ID == nil {
		return m, nil
	}
	m.selectedStation = &station
	m.boardLoading = true
	m.boardErr = nil
	m.board = nil
	m.trainCursor = 0
	m.closeTrain()
	return m, fetchBoard(m.client, *station.ID)
}

func (m *Model) closeTrain() {
	m.showTrain = false
	m.train = nil
	m.selectedTrain = 0
	m.trainLoading = false
	m.trainErr = nil
}

func (m Model) handleBoardResult(msg boardResultMsg) (tea.Model, tea.Cmd) {
	// Ignore if station changed
	if m.selectedStation == nil || m.selectedStation.ID == nil || msg.stationID != *m.selectedStation.ID {
		return m, nil
	}
	m.boardLoading = false
	m.boardErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	hadData := m.board != nil
	m.board = msg.board
	trains := m.visibleTrains()

	if hadData && m.selectedTrain != 0 {
		// Re-locate the selected train in the refreshed list
		found := false
		for i, el := range trains {
			if slices.Contains(el.TrainNumbers(), m.selectedTrain) {
				m.trainCursor = i
				found = true
				break
			}
		}
		if !found {
			// Train left the board, close the route view
			m.closeTrain()
		}
	} else if !hadData {
		m.trainCursor = 0
	}
	m.trainCursor = clampCursor(m.trainCursor, len(trains))
	m.lastUpdate = time.Now()
	return m, nil
}

func (m Model) handleTrainResult(msg trainResultMsg) (tea.Model, tea.Cmd) {
	if msg.trainID != m.selectedTrain {
		return m, nil
	}
	m.trainLoading = false
	m.trainErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	wasShowing := m.showTrain && m.train != nil
	m.train = msg.train
	m.showTrain = true

	stops := 0
	if m.train != nil {
		stops = len(m.train.Stops)
	}
	m.trainScroll = clampCursor(m.trainScroll, stops)

	if !wasShowing || !m.trainManualScroll {
		// New train or no manual scroll, follow the next stop
		m.trainManualScroll = false
		m.trainScroll = 0
		if next := m.train.NextStop(); next >= 0 {
			m.trainScroll = next
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKeys(msg)
	case focusServices:
		return m.handleFilterKeys(msg)
	case focusBoard:
		return m.handleBoardKeys(msg)
	case focusAutoRefresh:
		return m.handleAutoRefreshKeys(msg)
	case focusStations:
		return m.handleStationKeys(msg)
	case focusTrains:
		return m.handleTrainListKeys(msg)
	case focusTrain:
		return m.handleTrainKeys(msg)
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchSeq++
		m.stationsLoading = true
		m.stationsErr = nil
		return m, searchStations(m.client, query, m.searchSeq)

	case "esc":
		m.searchInput.SetValue("")
		return m, nil

	case "tab":
		m.focus = focusServices
		m.searchInput.Blur()
		return m, nil

	case "shift+tab":
		// Navigate backward to last available panel
		if m.showTrain {
			m.focus = focusTrain
		} else if len(m.visibleTrains()) > 0 {
			m.focus = focusTrains
		} else if len(m.stations) > 0 {
			m.focus = focusStations
		} else {
			m.focus = focusAutoRefresh
		}
		m.searchInput.Blur()
		return m, nil
	}

	// Forward to textinput
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleStationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.stationCursor = clampCursor(m.stationCursor, len(m.stations))

	if cursor, ok := moveCursor(msg.String(), m.stationCursor, len(m.stations), m.pageSize(1)); ok {
		m.stationCursor = cursor
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if len(m.visibleTrains()) > 0 {
			m.focus = focusTrains
			return m, nil
		}
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusAutoRefresh
		return m, nil

	case "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "enter":
		if len(m.stations) > 0 {
			return m.selectStation(m.stationCursor)
		}
	}

	return m, nil
}

func (m Model) handleTrainListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	trains := m.visibleTrains()
	m.trainCursor = clampCursor(m.trainCursor, len(trains))

	if cursor, ok := moveCursor(msg.String(), m.trainCursor, len(trains), m.pageSize(1)); ok {
		m.trainCursor = cursor
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.showTrain {
			m.focus = focusTrain
		} else {
			m.focus = focusSearch
			m.searchInput.Focus()
		}
		return m, nil

	case "shift+tab":
		m.focus = focusStations
		return m, nil

	case "esc":
		if m.showTrain {
			m.closeTrain()
			return m, nil
		}
		m.focus = focusStations
		return m, nil

	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "enter":
		if len(trains) > 0 {
			ids := trains[m.trainCursor].TrainNumbers()
			if len(ids) > 0 {
				m.selectedTrain = ids[0]
				m.trainLoading = true
				m.trainErr = nil
				m.train = nil
				return m, fetchTrain(m.client, ids[0])
			}
		}
	}

	return m, nil
}

func (m Model) handleAutoRefreshKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "enter":
		m.autoRefresh = !m.autoRefresh
		if m.autoRefresh {
			// Refresh immediately when enabling
			cmds := append([]tea.Cmd{autoRefreshTick(), countdownTick()}, m.refreshCmds()...)
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case "tab":
		if len(m.stations) > 0 {
			m.focus = focusStations
			return m, nil
		}
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusBoard
		return m, nil

	case "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

// refreshCmds silently reloads the board and the open train, keeping the
// current data visible until new data arrives.
func (m Model) refreshCmds() []tea.Cmd {
	var cmds []tea.Cmd
	if m.selectedStation != nil && m.selectedStation.ID != nil {
		cmds = append(cmds, fetchBoard(m.client, *m.selectedStation.ID))
	}
	if m.showTrain && m.selectedTrain != 0 {
		cmds = append(cmds, fetchTrain(m.client, m.selectedTrain))
	}
	return cmds
}

func (m Model) handleAutoRefreshTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}
	cmds := append([]tea.Cmd{autoRefreshTick()}, m.refreshCmds()...)
	return m, tea.Batch(cmds...)
}

func (m Model) handleCountdownTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}
	return m, countdownTick()
}

func (m Model) handleTrainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stops := 0
	if m.train != nil {
		stops = len(m.train.Stops)
	}
	m.trainScroll = clampCursor(m.trainScroll, stops)

	// Stops take ~3 lines each, so pages are smaller
	if cursor, ok := moveCursor(msg.String(), m.trainScroll, stops, m.pageSize(3)); ok {
		m.trainScroll = cursor
		m.trainManualScroll = true
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab", "esc":
		m.focus = focusTrains
		return m, nil
	}

	return m, nil
}

// pageSize estimates how many items of the given line height fit on a page.
func (m Model) pageSize(linesPerItem int) int {
	size := (m.height - 10) / linesPerItem
	if size < 1 {
		return 10 / linesPerItem
	}
	return size
}

// moveCursor applies a navigation key to a list cursor. It reports false
// when key is not a navigation key.
func moveCursor(key string, cursor, total, page int) (int, bool) {
	switch key {
	case "j", "down":
		cursor++
	case "k", "up":
		cursor--
	case "pgdown":
		cursor += page
	case "pgup":
		cursor -= page
	case "home":
		cursor = 0
	case "end":
		cursor = total - 1
	default:
		return cursor, false
	}
	return clampCursor(cursor, total), true
}

// clampCursor keeps cursor within [0, total) and returns 0 for empty lists.
func clampCursor(cursor, total int) int {
	if cursor >= total {
		cursor = total - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
