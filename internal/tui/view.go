package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ptrains/ptrains-cli/internal/models"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + search bar + filter bar + panels + status bar
	header := renderHeader()
	searchBar := m.renderSearchBar()
	filterBar := m.renderFilterBar()
	statusBar := m.renderStatusBar()

	panelHeight := m.height - lipgloss.Height(header) - lipgloss.Height(searchBar) -
		lipgloss.Height(filterBar) - lipgloss.Height(statusBar)
	if panelHeight < 3 {
		panelHeight = 3
	}

	// Panel widths: ~30% left, ~70% right
	leftWidth := m.width*30/100 - 2 // subtract border
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 20 {
		leftWidth = 20
	}
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftBorder := stylePanelNormal
	if m.focus == focusStations {
		leftBorder = stylePanelFocused
	}
	leftPanel := leftBorder.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(m.renderStationList(leftWidth, panelHeight-2))

	rightBorder := stylePanelNormal
	if m.focus == focusTrains || m.focus == focusTrain {
		rightBorder = stylePanelFocused
	}
	rightPanel := rightBorder.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(m.renderRightPanel(rightWidth, panelHeight-2))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, searchBar, filterBar, panels, statusBar)
}

// renderHeader renders the brand name.
func renderHeader() string {
	title := "" +
		"       _             _           \n" +
		" _ __ | |_ _ _ __ _ (_)_ _  ___  \n" +
		"| '_ \\|  _| '_/ _` || | ' \\(_-<  \n" +
		"| .__/ \\__|_| \\__,_||_|_||_/__/  \n" +
		"|_|                              "

	return styleLogo.Render(title)
}

// renderSearchBar renders the search input at the top.
func (m Model) renderSearchBar() string {
	border := stylePanelNormal
	if m.focus == focusSearch {
		border = stylePanelFocused
	}

	content := styleHeader.Render("Search: ") + m.searchInput.View()
	return border.Width(m.width - 2).Render(content)
}

// renderStationList renders the left station panel.
func (m Model) renderStationList(width, height int) string {
	title := styleHeader.Render("STATIONS")

	if m.stationsLoading {
		return title + "\n" + styleLoading.Render(" Searching...")
	}
	if m.stationsErr != nil {
		return title + "\n" + styleError.Render(" Error: "+m.stationsErr.Error())
	}
	if len(m.stations) == 0 {
		return title + "\n" + styleMuted.Render(" Type a station name and press Enter")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	maxVisible := height - 2 // account for title + spacing
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.stationCursor, len(m.stations), maxVisible)

	for i := start; i < end; i++ {
		name := truncate(models.Value(m.stations[i].Name), width-4)
		if i == m.stationCursor {
			b.WriteString(styleSelected.Render(" > " + name))
		} else {
			b.WriteString("   " + name)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRightPanel renders the board and, below it, the selected train.
func (m Model) renderRightPanel(width, height int) string {
	if !m.showTrain && !m.trainLoading && m.trainErr == nil {
		return m.renderTrainList(width, height)
	}

	// Split: top 45% board, bottom 55% train route
	boardHeight := height * 45 / 100
	if boardHeight < 4 {
		boardHeight = 4
	}
	trainHeight := height - boardHeight - 1 // -1 for separator
	if trainHeight < 4 {
		trainHeight = 4
	}

	return m.renderTrainList(width, boardHeight) + "\n" +
		styleMuted.Render(strings.Repeat("─", width)) + "\n" +
		m.renderTrainDetail(width, trainHeight)
}

// renderTrainList renders the station timetable.
func (m Model) renderTrainList(width, height int) string {
	title := "DEPARTURES"
	if m.boardMode == boardArrival {
		title = "ARRIVALS"
	}
	if m.selectedStation != nil {
		title += " for " + truncate(models.Value(m.selectedStation.Name), width-18)
	}
	titleStr := styleHeader.Render(title)

	if m.boardLoading {
		return titleStr + "\n" + styleLoading.Render(" Loading timetable...")
	}
	if m.boardErr != nil {
		return titleStr + "\n" + styleError.Render(" Error: "+m.boardErr.Error())
	}
	if m.selectedStation == nil {
		return titleStr + "\n" + styleMuted.Render(" Select a station to view its timetable")
	}

	trains := m.visibleTrains()
	if len(trains) == 0 {
		return titleStr + "\n" + styleMuted.Render(" No trains found")
	}

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	maxVisible := height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.trainCursor, len(trains), maxVisible)

	for i := start; i < end; i++ {
		selected := i == m.trainCursor && m.focus == focusTrains
		b.WriteString(renderTrainLine(trains[i], m.boardMode, width, selected))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderTrainLine renders a single timetable entry.
func renderTrainLine(el models.StationTimeTableElement, mode boardMode, width int, selected bool) string {
	timeStr := models.Value(el.Time)
	if timeStr == "" {
		timeStr = "??:??"
	}

	ids := el.TrainNumbers()
	numbers := make([]string, len(ids))
	for i, id := range ids {
		numbers[i] = strconv.Itoa(id)
	}
	trainStr := fmt.Sprintf("%-11s", truncate(strings.Join(numbers, "/"), 11))
	serviceStr := fmt.Sprintf("%-9s", truncate(models.Value(el.ServiceType), 9))

	place := models.Value(el.DestinationStationName)
	if mode == boardArrival {
		place = models.Value(el.OriginStationName)
	}
	fixedWidth := 5 + 2 + 11 + 2 + 9 + 2 // time+sp+train+sp+service+sp
	place = truncate(place, width-fixedWidth-4)

	var entry string
	if models.Value(el.HasPassed) {
		entry = styleMuted.Render(fmt.Sprintf("%-5s  %s  %s  %s", timeStr, trainStr, serviceStr, place))
	} else {
		entry = fmt.Sprintf("%s  %s  %s  %s",
			styleTime.Render(fmt.Sprintf("%-5s", timeStr)),
			styleTrain.Render(trainStr),
			styleService.Render(serviceStr),
			place,
		)
	}

	if selected {
		return styleSelected.Render(">") + entry
	}
	return " " + entry
}

// renderTrainDetail renders the route of the selected train.
func (m Model) renderTrainDetail(width, height int) string {
	title := "TRAIN"
	if m.selectedTrain != 0 {
		title += " " + strconv.Itoa(m.selectedTrain)
	}
	if m.train != nil {
		if service := models.Value(m.train.ServiceType); service != "" {
			title += " " + service
		}
	}
	titleStr := styleHeader.Render(title)

	if m.trainLoading {
		return titleStr + "\n" + styleLoading.Render(" Loading train...")
	}
	if m.trainErr != nil {
		return titleStr + "\n" + styleError.Render(" Error: "+m.trainErr.Error())
	}
	if m.train == nil {
		return titleStr + "\n" + styleMuted.Render(" Train is not running today")
	}

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")
	b.WriteString(styleMuted.Render(fmt.Sprintf(" %s → %s  %s",
		models.Value(m.train.Origin), models.Value(m.train.Destination), models.Value(m.train.Duration))))
	b.WriteString("\n")

	stops := m.train.Stops
	if len(stops) == 0 {
		return b.String() + styleMuted.Render(" No stops")
	}

	next := m.train.NextStop()
	boardIdx := m.boardStationIdx()
	maxVisible := height - 3
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.trainScroll, len(stops), maxVisible)

	for i := start; i < end; i++ {
		stop := stops[i]

		symbol := "├"
		if i == 0 {
			symbol = "┌"
		} else if i == len(stops)-1 {
			symbol = "└"
		}

		timeStr := models.Value(stop.ScheduledTime)
		if timeStr == "" {
			timeStr = "     "
		}

		name := models.Value(stop.StationName)
		fixedWidth := 1 + 1 + 1 + 1 + 5 + 2 // indicator+sp+symbol+sp+time+sp
		name = truncate(name, width-fixedWidth-2)
		if i == boardIdx && i != next {
			name = styleBoardStation.Render(name)
		}

		switch {
		case i == next:
			b.WriteString(fmt.Sprintf("%s %s %s  %s",
				styleSelected.Render(">"),
				styleMuted.Render(symbol),
				styleNextStop.Render(fmt.Sprintf("%-5s", timeStr)),
				styleNextStop.Render(name),
			))
		case models.Value(stop.HasPassed):
			b.WriteString(fmt.Sprintf("  %s %s",
				styleMuted.Render(symbol),
				styleMuted.Render(fmt.Sprintf("%-5s  %s", timeStr, name)),
			))
		default:
			b.WriteString(fmt.Sprintf("  %s %s  %s",
				styleMuted.Render(symbol),
				styleTime.Render(fmt.Sprintf("%-5s", timeStr)),
				name,
			))
		}

		if notes := formatNotes(models.Value(stop.Notes)); notes != "" {
			b.WriteString("  " + notes)
		}

		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// boardStationIdx returns the index of the stop at the selected station, or -1.
func (m Model) boardStationIdx() int {
	if m.train == nil || m.selectedStation == nil || m.selectedStation.ID == nil {
		return -1
	}
	for i, stop := range m.train.Stops {
		if stop.NodeID == *m.selectedStation.ID {
			return i
		}
	}
	return -1
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints, indicator string
	switch m.focus {
	case focusSearch:
		hints = "Enter:search  Tab:services  Esc:clear  Ctrl+C:quit"
	case focusServices:
		hints = "h/l:move  Space:toggle  a:all  Tab:dep/arr  Esc:search  q:quit"
	case focusBoard:
		hints = "h/l:move  Space:select  Tab:auto-refresh  Esc:search  q:quit"
	case focusAutoRefresh:
		hints = "Space:toggle  Tab:stations  Esc:search  q:quit"
	case focusStations:
		hints = "j/k:navigate  PgUp/PgDn:page  Enter:select  Tab:trains  /:search  q:quit"
		indicator = scrollIndicator(m.stationCursor, len(m.stations))
	case focusTrains:
		hints = "j/k:navigate  PgUp/PgDn:page  Enter:route  Tab:next  Esc:back  /:search  q:quit"
		indicator = scrollIndicator(m.trainCursor, len(m.visibleTrains()))
	case focusTrain:
		hints = "j/k:scroll  Home/End:jump  Tab:search  Esc:trains  q:quit"
		if m.train != nil {
			indicator = scrollIndicator(m.trainScroll, len(m.train.Stops))
		}
	}

	if indicator != "" {
		hints = indicator + "  " + hints
	}
	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// scrollIndicator shows the cursor position as [n/total].
func scrollIndicator(cursor, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("[%d/%d]", cursor+1, total)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate shortens s to width runes, marking the cut with "~".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "~"
}
