package tui

import (
	"time"

	"github.com/ptrains/ptrains-cli/internal/models"
)

type (
	autoRefreshTickMsg time.Time
	countdownTickMsg   time.Time
)

// searchResultMsg answers search number seq. Older answers are dropped.
type searchResultMsg struct {
	seq   int
	nodes []models.Node
	err   error
}

// boardResultMsg carries both timetables of stationID
type boardResultMsg struct {
	stationID int
	board     *models.StationReply
	err       error
}

type trainResultMsg struct {
	trainID int
	train   *models.TrainTimeTable
	err     error
}
