package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ptrains/ptrains-cli/internal/models"
)

// StationService queries station search and station timetables
type StationService struct {
	service
	serviceFilter bool
}

// StationBoardRequest contains parameters for a departures/arrivals query
type StationBoardRequest struct {
	StationID int       // Station node id (required)
	Start     time.Time // Start of the window (defaults to now)
	End       time.Time // End of the window (defaults to 23:59 on Start's day)
}

// SearchStations searches stations whose name matches query
func (s *StationService) SearchStations(ctx context.Context, query string) (*models.StationQueryReply, error) {
	body, err := s.SearchStationsRaw(ctx, query)
	if err != nil {
		return nil, err
	}
	return decodeReply[models.StationQueryReply](body, "station search")
}

// SearchStationsAsync runs SearchStations in the background and calls
// completion exactly once.
func (s *StationService) SearchStationsAsync(ctx context.Context, query string, completion func(*models.StationQueryReply, error)) {
	goAsync(ctx, func(ctx context.Context) (*models.StationQueryReply, error) {
		return s.SearchStations(ctx, query)
	}, completion)
}

// SearchStationsRaw searches stations and returns raw JSON
func (s *StationService) SearchStationsRaw(ctx context.Context, query string) (json.RawMessage, error) {
	reqURL, err := s.SearchURL(query)
	if err != nil {
		return nil, err
	}
	return s.requester.Get(ctx, reqURL)
}

// SearchURL builds the station search URL. An empty query is rejected.
func (s *StationService) SearchURL(query string) (string, error) {
	if query == "" {
		s.logger.Warn().Msg("can't make request with empty query")
		return "", NewInvalidParameter(query)
	}
	return s.baseURL + EndpointStationSearch + "/" + url.PathEscape(query), nil
}

// GetStationTimeTable fetches departures and arrivals at a station
func (s *StationService) GetStationTimeTable(ctx context.Context, req StationBoardRequest) (*models.StationReply, error) {
	body, err := s.GetStationTimeTableRaw(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeReply[models.StationReply](body, "station timetable")
}

// GetStationTimeTableAsync runs GetStationTimeTable in the background and
// calls completion exactly once.
func (s *StationService) GetStationTimeTableAsync(ctx context.Context, req StationBoardRequest, completion func(*models.StationReply, error)) {
	goAsync(ctx, func(ctx context.Context) (*models.StationReply, error) {
		return s.GetStationTimeTable(ctx, req)
	}, completion)
}

// GetStationTimeTableRaw fetches a station timetable and returns raw JSON
func (s *StationService) GetStationTimeTableRaw(ctx context.Context, req StationBoardRequest) (json.RawMessage, error) {
	return s.requester.Get(ctx, s.TimeTableURL(req))
}

// TimeTableURL builds the station timetable URL, filling in default times
func (s *StationService) TimeTableURL(req StationBoardRequest) string {
	start := req.Start
	if start.IsZero() {
		start = s.now()
	}
	start = start.In(s.timezone)

	end := req.End
	if end.IsZero() {
		end = EndOfDay(start)
	}
	end = end.In(s.timezone)

	reqURL := fmt.Sprintf("%s%s/%s/%s/%s",
		s.baseURL, EndpointStationTimeTable,
		strconv.Itoa(req.StationID),
		FormatDateTime(start),
		FormatDateTime(end),
	)
	if s.serviceFilter {
		reqURL += "/" + serviceTypeFilter
	}
	return reqURL
}
