package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ptrains/ptrains-cli/internal/api"
	"github.com/ptrains/ptrains-cli/internal/models"
)

type focusPanel int

const (
	focusSearch focusPanel = iota
	focusServices
	focusBoard
	focusAutoRefresh
	focusStations
	focusTrains
	focusTrain
)

type boardMode int

const (
	boardDeparture boardMode = iota
	boardArrival
)

// serviceLabels follows the order of api.ServiceTypes
var serviceLabels = []struct {
	apiName string
	label   string
}{
	{"INTERNACIONAL", "INT"},
	{"ALFA", "AP"},
	{"IC", "IC"},
	{"IR", "IR"},
	{"REGIONAL", "R"},
	{"URB|SUBUR", "U"},
	{"ESPECIAL", "ESP"},
	{"MERCADORIAS", "MERC"},
	{"SERVIÇO", "SERV"},
}

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	client *api.Client
	width  int
	height int

	searchInput textinput.Model
	focus       focusPanel

	// Filter bar - service types, applied locally to the board
	serviceFilters []bool
	filterCursor   int

	// Board mode - departure/arrival
	boardMode   boardMode
	boardCursor int

	// Auto-refresh
	autoRefresh bool
	lastUpdate  time.Time

	// Left panel - stations
	stations        []models.Node
	stationCursor   int
	stationsLoading bool
	stationsErr     error
	searchSeq       int

	// Right panel - station timetable
	selectedStation *models.Node
	board           *models.StationReply
	trainCursor     int
	boardLoading    bool
	boardErr        error

	// Right panel - train route
	selectedTrain     int
	train             *models.TrainTimeTable
	trainLoading      bool
	trainErr          error
	showTrain         bool
	trainScroll       int
	trainManualScroll bool
}

// New creates a new TUI model.
func New(client *api.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Search station..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	filters := make([]bool, len(serviceLabels))
	for i := range filters {
		filters[i] = true
	}

	return Model{
		client:         client,
		searchInput:    ti,
		focus:          focusSearch,
		serviceFilters: filters,
	}
}

// currentTable returns the timetable matching the board mode.
func (m Model) currentTable() *models.StationTimeTable {
	if m.boardMode == boardArrival {
		return m.board.Arrivals()
	}
	return m.board.Departures()
}

// visibleTrains returns the elements of the current timetable whose
// service type is enabled. Unknown service types are always shown.
func (m Model) visibleTrains() []models.StationTimeTableElement {
	table := m.currentTable()
	if table == nil {
		return nil
	}

	disabled := make(map[string]bool)
	for i, sl := range serviceLabels {
		if !m.serviceFilters[i] {
			disabled[sl.apiName] = true
		}
	}
	if len(disabled) == 0 {
		return table.Elements
	}

	var result []models.StationTimeTableElement
	for _, el := range table.Elements {
		if !disabled[models.Value(el.ServiceType)] {
			result = append(result, el)
		}
	}
	return result
}

// Init returns the initial command (textinput blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
