package tui

import (
	"testing"

	"github.com/ptrains/ptrains-cli/internal/models"
	"github.com/ptrains/ptrains-cli/internal/testutil"
)

func makeStations(n int) []models.Node {
	nodes := make([]models.Node, n)
	for i := range nodes {
		nodes[i] = models.Node{ID: models.Ptr(1000 + i), Name: models.Ptr("Estação")}
	}
	return nodes
}

func makeStops(n int) []models.TrainTimeTableElement {
	stops := make([]models.TrainTimeTableElement, n)
	for i := range stops {
		stops[i] = models.TrainTimeTableElement{NodeID: i, HasPassed: models.Ptr(false)}
	}
	return stops
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                  string
		cursor, total, maxVis int
		wantStart, wantEnd    int
	}{
		{"all fit", 0, 5, 10, 0, 5},
		{"empty", 0, 0, 10, 0, 0},
		{"cursor at start", 0, 20, 10, 0, 10},
		{"cursor in middle", 10, 20, 10, 5, 15},
		{"cursor at end", 19, 20, 10, 10, 20},
		{"viewport of one", 7, 20, 1, 7, 8},
		{"exact fit", 9, 10, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.cursor, tt.total, tt.maxVis)
			testutil.AssertEqual(t, start, tt.wantStart)
			testutil.AssertEqual(t, end, tt.wantEnd)
		})
	}
}

func TestVisibleRange_CursorAlwaysVisible(t *testing.T) {
	for cursor := 0; cursor < 50; cursor++ {
		start, end := visibleRange(cursor, 50, 7)
		if cursor < start || cursor >= end {
			t.Errorf("cursor %d outside [%d, %d)", cursor, start, end)
		}
	}
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		key    string
		cursor int
		want   int
		ok     bool
	}{
		{"j", 0, 1, true},
		{"down", 9, 9, true},
		{"k", 0, 0, true},
		{"up", 5, 4, true},
		{"pgdown", 2, 7, true},
		{"pgdown", 8, 9, true},
		{"pgup", 3, 0, true},
		{"home", 6, 0, true},
		{"end", 0, 9, true},
		{"x", 4, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := moveCursor(tt.key, tt.cursor, 10, 5)
			testutil.AssertEqual(t, ok, tt.ok)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestMoveCursor_EmptyList(t *testing.T) {
	for _, k := range []string{"j", "k", "pgdown", "pgup", "home", "end"} {
		got, ok := moveCursor(k, 0, 0, 5)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, got, 0)
	}
}

func TestClampCursor(t *testing.T) {
	testutil.AssertEqual(t, clampCursor(-1, 5), 0)
	testutil.AssertEqual(t, clampCursor(7, 5), 4)
	testutil.AssertEqual(t, clampCursor(3, 5), 3)
	testutil.AssertEqual(t, clampCursor(3, 0), 0)
}

func TestPageSize(t *testing.T) {
	m := newTestModel(t)
	m.height = 40
	testutil.AssertEqual(t, m.pageSize(1), 30)
	testutil.AssertEqual(t, m.pageSize(3), 10)

	m.height = 5
	testutil.AssertEqual(t, m.pageSize(1), 10)
	testutil.AssertEqual(t, m.pageSize(3), 3)
}

func TestStationKeys_Navigate(t *testing.T) {
	m := newTestModel(t)
	m.stations = makeStations(20)
	m.focus = focusStations

	m = update(m, key("j"))
	m = update(m, key("down"))
	testutil.AssertEqual(t, m.stationCursor, 2)

	m = update(m, key("k"))
	testutil.AssertEqual(t, m.stationCursor, 1)

	m = update(m, key("end"))
	testutil.AssertEqual(t, m.stationCursor, 19)

	m = update(m, key("j"))
	testutil.AssertEqual(t, m.stationCursor, 19)

	m = update(m, key("home"))
	testutil.AssertEqual(t, m.stationCursor, 0)
}

func TestStationKeys_ClampsOutOfBoundsCursor(t *testing.T) {
	m := newTestModel(t)
	m.stations = makeStations(3)
	m.focus = focusStations
	m.stationCursor = 10

	m = update(m, key("k"))
	testutil.AssertEqual(t, m.stationCursor, 1)
}

func TestStationKeys_EnterSelects(t *testing.T) {
	m := newTestModel(t)
	m.stations = makeStations(3)
	m.focus = focusStations
	m.stationCursor = 2

	newModel, cmd := m.Update(key("enter"))
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.boardLoading)
	testutil.AssertPtrEqual(t, m.selectedStation.ID, 1002)
}

func TestTrainListKeys_EnterFetchesTrain(t *testing.T) {
	m := withBoard(t, newTestModel(t))
	m.focus = focusTrains

	newModel, cmd := m.Update(key("enter"))
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.trainLoading)
	testutil.AssertEqual(t, m.selectedTrain, 130)
}

func TestTrainListKeys_EnterWithoutTrainNumber(t *testing.T) {
	m := newTestModel(t)
	m.selectedStation = &models.Node{ID: models.Ptr(94)}
	m.board = &models.StationReply{Response: []models.StationTimeTable{{
		TableType: models.Ptr(models.Departures),
		Elements:  []models.StationTimeTableElement{{Time: models.Ptr("9:00")}},
	}}}
	m.focus = focusTrains

	newModel, cmd := m.Update(key("enter"))
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertFalse(t, m.trainLoading)
}

func TestTrainListKeys_EscClosesTrain(t *testing.T) {
	m := withBoard(t, newTestModel(t))
	m.focus = focusTrains
	m.showTrain = true
	m.selectedTrain = 130
	m.train = sampleTrain(t)

	m = update(m, key("esc"))
	testutil.AssertFalse(t, m.showTrain)
	testutil.AssertEqual(t, m.focus, focusTrains)

	m = update(m, key("esc"))
	testutil.AssertEqual(t, m.focus, focusStations)
}

func TestTrainKeys_Scroll(t *testing.T) {
	m := newTestModel(t)
	m.train = &models.TrainTimeTable{Stops: makeStops(12)}
	m.showTrain = true
	m.focus = focusTrain

	m = update(m, key("j"))
	testutil.AssertEqual(t, m.trainScroll, 1)
	testutil.AssertTrue(t, m.trainManualScroll)

	m = update(m, key("end"))
	testutil.AssertEqual(t, m.trainScroll, 11)

	m = update(m, key("pgup"))
	testutil.AssertEqual(t, m.trainScroll, 1)

	m = update(m, key("esc"))
	testutil.AssertEqual(t, m.focus, focusTrains)
}

func TestTrainKeys_NilTrain(t *testing.T) {
	m := newTestModel(t)
	m.focus = focusTrain

	m = update(m, key("j"))
	testutil.AssertEqual(t, m.trainScroll, 0)
}

func TestFocusCycle(t *testing.T) {
	m := withBoard(t, newTestModel(t))

	order := []focusPanel{focusServices, focusBoard, focusAutoRefresh, focusStations, focusTrains, focusSearch}
	for _, want := range order {
		m = update(m, key("tab"))
		testutil.AssertEqual(t, m.focus, want)
	}
}

func TestFocusSwitch_PreservesCursors(t *testing.T) {
	m := withBoard(t, newTestModel(t))
	m.stations = makeStations(5)
	m.focus = focusStations
	m.stationCursor = 3
	m.trainCursor = 1

	m = update(m, key("tab"))
	testutil.AssertEqual(t, m.focus, focusTrains)
	m = update(m, key("shift+tab"))
	testutil.AssertEqual(t, m.focus, focusStations)

	testutil.AssertEqual(t, m.stationCursor, 3)
	testutil.AssertEqual(t, m.trainCursor, 1)
}

func TestSearchKeys(t *testing.T) {
	m := newTestModel(t)

	// Empty query does nothing
	newModel, cmd := m.Update(key("enter"))
	m = newModel.(Model)
	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertEqual(t, m.searchSeq, 0)

	m.searchInput.SetValue("  Porto ")
	newModel, cmd = m.Update(key("enter"))
	m = newModel.(Model)
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertEqual(t, m.searchSeq, 1)
	testutil.AssertTrue(t, m.stationsLoading)

	m = update(m, key("esc"))
	testutil.AssertEqual(t, m.searchInput.Value(), "")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	m.focus = focusStations

	_, cmd := m.Update(key("q"))
	testutil.AssertTrue(t, cmd != nil)

	// q is typed into the search input
	m.focus = focusSearch
	m = update(m, key("q"))
	testutil.AssertEqual(t, m.searchInput.Value(), "q")
}
