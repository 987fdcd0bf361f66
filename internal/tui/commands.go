package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ptrains/ptrains-cli/internal/api"
	"github.com/ptrains/ptrains-cli/internal/models"
)

const (
	apiTimeout          = 10 * time.Second
	autoRefreshInterval = 30 * time.Second
)

func autoRefreshTick() tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshTickMsg(t)
	})
}

// countdownTick drives the once-a-second "refresh in" display
func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// request runs call with apiTimeout and turns its result into a message
func request[T any](call func(context.Context) (T, error), toMsg func(T, error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		return toMsg(call(ctx))
	}
}

func searchStations(client *api.Client, query string, seq int) tea.Cmd {
	return request(
		func(ctx context.Context) (*models.StationQueryReply, error) {
			return client.Stations.SearchStations(ctx, query)
		},
		func(reply *models.StationQueryReply, err error) tea.Msg {
			msg := searchResultMsg{seq: seq, err: err}
			if reply != nil {
				msg.nodes = reply.Response
			}
			return msg
		},
	)
}

// fetchBoard loads the rest of today's timetable for a station. The reply
// holds departures and arrivals together.
func fetchBoard(client *api.Client, stationID int) tea.Cmd {
	return request(
		func(ctx context.Context) (*models.StationReply, error) {
			return client.Stations.GetStationTimeTable(ctx, api.StationBoardRequest{StationID: stationID})
		},
		func(board *models.StationReply, err error) tea.Msg {
			return boardResultMsg{stationID: stationID, board: board, err: err}
		},
	)
}

// fetchTrain loads today's route of a train
func fetchTrain(client *api.Client, trainID int) tea.Cmd {
	return request(
		func(ctx context.Context) (*models.TrainReply, error) {
			return client.Trains.GetTrainTimeTable(ctx, trainID, time.Time{})
		},
		func(reply *models.TrainReply, err error) tea.Msg {
			msg := trainResultMsg{trainID: trainID, err: err}
			if reply != nil {
				msg.train = reply.Response
			}
			return msg
		},
	)
}
