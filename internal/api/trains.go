package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ptrains/ptrains-cli/internal/models"
)

// TrainService queries per-train route timetables
type TrainService struct {
	service
}

// GetTrainTimeTable fetches the route of trainID on day. A zero day means
// today. The reply's Response is nil if the train does not run that day.
func (s *TrainService) GetTrainTimeTable(ctx context.Context, trainID int, day time.Time) (*models.TrainReply, error) {
	body, err := s.GetTrainTimeTableRaw(ctx, trainID, day)
	if err != nil {
		return nil, err
	}
	return decodeReply[models.TrainReply](body, "train timetable")
}

// GetTrainTimeTableAsync runs GetTrainTimeTable in the background and calls
// completion exactly once.
func (s *TrainService) GetTrainTimeTableAsync(ctx context.Context, trainID int, day time.Time, completion func(*models.TrainReply, error)) {
	goAsync(ctx, func(ctx context.Context) (*models.TrainReply, error) {
		return s.GetTrainTimeTable(ctx, trainID, day)
	}, completion)
}

// GetTrainTimeTableRaw fetches a train timetable and returns raw JSON
func (s *TrainService) GetTrainTimeTableRaw(ctx context.Context, trainID int, day time.Time) (json.RawMessage, error) {
	return s.requester.Get(ctx, s.TimeTableURL(trainID, day))
}

// TimeTableURL builds the train timetable URL
func (s *TrainService) TimeTableURL(trainID int, day time.Time) string {
	if day.IsZero() {
		day = s.now()
	}
	return fmt.Sprintf("%s%s/%d/%s", s.baseURL, EndpointTrainTimeTable, trainID, FormatDateOnly(day.In(s.timezone)))
}
