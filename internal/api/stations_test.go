package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ptrains/ptrains-cli/internal/models"
	"github.com/ptrains/ptrains-cli/internal/testutil"
)

func TestSearchStations_Success(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationSearchResponse)
	defer ms.Close()

	client := newTestClient(ms.URL)

	reply, err := client.Stations.SearchStations(context.Background(), "porto")
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, reply.Response, 1)

	node := reply.Response[0]
	testutil.AssertPtrEqual(t, node.ID, 94)
	testutil.AssertPtrEqual(t, node.Name, "Porto - Campanhã")
	testutil.AssertPtrEqual(t, node.Distance, 0)

	testutil.AssertEqual(t, ms.RequestCount(), 1)
	testutil.AssertEqual(t, ms.LastPath(), "/estacao-nome/porto")
}

func TestSearchStations_EncodesQuery(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationSearchMultiResponse)
	defer ms.Close()

	client := newTestClient(ms.URL)

	reply, err := client.Stations.SearchStations(context.Background(), "São Bento/Porto")
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, reply.Response, 3)
	testutil.AssertNilPtr(t, reply.Response[2].Distance)

	testutil.AssertEqual(t, ms.LastPath(), "/estacao-nome/S%C3%A3o%20Bento%2FPorto")
}

func TestSearchStations_EmptyQuery(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationSearchResponse)
	defer ms.Close()

	client := newTestClient(ms.URL)

	reply, err := client.Stations.SearchStations(context.Background(), "")
	testutil.AssertErrorIs(t, err, ErrInvalidParameter)
	testutil.AssertTrue(t, reply == nil)
	testutil.AssertEqual(t, ms.RequestCount(), 0)

	var ge *GeneralError
	testutil.AssertTrue(t, errors.As(err, &ge))
	testutil.AssertEqual(t, ge.Kind, GenInvalidParameter)
}

func TestSearchStations_NullResponse(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleNullResponse)
	defer ms.Close()

	reply, err := newTestClient(ms.URL).Stations.SearchStations(context.Background(), "xyz")
	testutil.AssertNil(t, err)
	testutil.AssertTrue(t, reply != nil)
	testutil.AssertTrue(t, reply.Response == nil)
}

func TestSearchStations_HTTPError(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusNotFound, testutil.SampleErrorResponse)
	defer ms.Close()

	reply, err := newTestClient(ms.URL).Stations.SearchStations(context.Background(), "porto")
	testutil.AssertTrue(t, reply == nil)
	testutil.AssertEqual(t, HTTPCode(err), 404)
	testutil.AssertErrorIs(t, err, ErrNotFound)
	testutil.AssertFalse(t, errors.Is(err, ErrDecode))
}

func TestSearchStations_InvalidJSON(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, `invalid json`)
	defer ms.Close()

	reply, err := newTestClient(ms.URL).Stations.SearchStations(context.Background(), "porto")
	testutil.AssertTrue(t, reply == nil)
	testutil.AssertErrorIs(t, err, ErrDecode)

	var ge *GeneralError
	testutil.AssertTrue(t, errors.As(err, &ge))
	testutil.AssertEqual(t, ge.Kind, GenUnknown)
}

func TestSearchStations_EmptyBody(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, "")
	defer ms.Close()

	_, err := newTestClient(ms.URL).Stations.SearchStations(context.Background(), "porto")

	var ge *GeneralError
	testutil.AssertTrue(t, errors.As(err, &ge))
	testutil.AssertEqual(t, ge.Kind, GenFailedToRead)
}

func TestSearchStationsAsync(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationSearchResponse)
	defer ms.Close()

	client := newTestClient(ms.URL)

	type result struct {
		reply *models.StationQueryReply
		err   error
	}
	done := make(chan result, 1)
	client.Stations.SearchStationsAsync(context.Background(), "porto", func(r *models.StationQueryReply, err error) {
		done <- result{r, err}
	})

	select {
	case res := <-done:
		testutil.AssertNil(t, res.err)
		testutil.AssertLen(t, res.reply.Response, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("completion was not called")
	}
}

func TestSearchStationsAsync_EmptyQuery(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	done := make(chan error, 1)
	client.Stations.SearchStationsAsync(context.Background(), "", func(r *models.StationQueryReply, err error) {
		done <- err
	})

	select {
	case err := <-done:
		testutil.AssertErrorIs(t, err, ErrInvalidParameter)
	case <-time.After(2 * time.Second):
		t.Fatal("completion was not called")
	}
}

func TestGetStationTimeTable_Success(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationBoardResponse)
	defer ms.Close()

	client := newTestClient(ms.URL)

	reply, err := client.Stations.GetStationTimeTable(context.Background(), StationBoardRequest{StationID: 94})
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, reply.Response, 2)

	deps := reply.Departures()
	testutil.AssertTrue(t, deps != nil)
	testutil.AssertPtrEqual(t, deps.StationName, "PORTO - CAMPANHÃ")
	testutil.AssertLen(t, deps.Elements, 2)
	testutil.AssertPtrEqual(t, deps.Elements[0].TrainID, 130)
	testutil.AssertPtrEqual(t, deps.Elements[0].ServiceType, "ALFA")
	testutil.AssertPtrEqual(t, deps.Elements[1].HasPassed, true)
	testutil.AssertNilPtr(t, deps.Elements[1].TimeToOrder2)

	arrs := reply.Arrivals()
	testutil.AssertTrue(t, arrs != nil)
	testutil.AssertPtrEqual(t, arrs.Elements[0].OriginStationName, "LISBOA - SANTA APOLÓNIA")
}

func TestGetStationTimeTable_DefaultTimes(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationBoardResponse)
	defer ms.Close()

	client := newTestClient(ms.URL, WithServiceTypeFilter(false))

	_, err := client.Stations.GetStationTimeTable(context.Background(), StationBoardRequest{StationID: 94})
	testutil.AssertNil(t, err)

	now := testNow.In(client.Timezone())
	segments := strings.Split(ms.LastPath(), "/")
	testutil.AssertLen(t, segments, 5)
	testutil.AssertEqual(t, segments[1], "partidas-chegadas")
	testutil.AssertEqual(t, segments[2], "94")
	testutil.AssertEqual(t, segments[3], FormatDateTime(now))
	testutil.AssertEqual(t, segments[4], FormatDateTime(EndOfDay(now)))

	// 09:05 UTC is 10:05 in Lisbon summer time
	testutil.AssertEqual(t, segments[3], "2026-10-14%2010:05")
	testutil.AssertEqual(t, segments[4], "2026-10-14%2023:59")
}

func TestGetStationTimeTable_ServiceTypeFilter(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationBoardResponse)
	defer ms.Close()

	client := newTestClient(ms.URL)

	lisbon := client.Timezone()
	req := StationBoardRequest{
		StationID: 9430,
		Start:     time.Date(2026, 3, 5, 6, 0, 0, 0, lisbon),
		End:       time.Date(2026, 3, 5, 8, 30, 0, 0, lisbon),
	}
	_, err := client.Stations.GetStationTimeTable(context.Background(), req)
	testutil.AssertNil(t, err)

	testutil.AssertEqual(t, ms.LastPath(),
		"/partidas-chegadas/9430/2026-3-5%206:00/2026-3-5%208:30/"+
			"INTERNACIONAL%2C%20ALFA%2C%20IC%2C%20IR%2C%20REGIONAL%2C%20URB%7CSUBUR%2C%20ESPECIAL%2C%20MERCADORIAS%2C%20SERVI%C3%87O")
}

func TestGetStationTimeTable_ExplicitStartDefaultEnd(t *testing.T) {
	client := newTestClient("https://example.com", WithServiceTypeFilter(false))

	start := time.Date(2026, 10, 14, 18, 45, 0, 0, time.UTC)
	got := client.Stations.TimeTableURL(StationBoardRequest{StationID: 94, Start: start})
	testutil.AssertEqual(t, got, "https://example.com/partidas-chegadas/94/2026-10-14%2019:45/2026-10-14%2023:59")
}

func TestGetStationTimeTable_HTTPError(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusNotFound, testutil.SampleErrorResponse)
	defer ms.Close()

	reply, err := newTestClient(ms.URL).Stations.GetStationTimeTable(context.Background(), StationBoardRequest{StationID: 94})
	testutil.AssertTrue(t, reply == nil)
	testutil.AssertEqual(t, HTTPCode(err), 404)
}

func TestGetStationTimeTable_UnknownTableType(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, `{"response":[{"NodeID":94,"TipoPedido":3}]}`)
	defer ms.Close()

	_, err := newTestClient(ms.URL).Stations.GetStationTimeTable(context.Background(), StationBoardRequest{StationID: 94})
	testutil.AssertErrorIs(t, err, ErrDecode)
}

func TestGetStationTimeTableAsync(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusInternalServerError, testutil.SampleErrorResponse)
	defer ms.Close()

	done := make(chan error, 1)
	newTestClient(ms.URL).Stations.GetStationTimeTableAsync(context.Background(), StationBoardRequest{StationID: 94},
		func(r *models.StationReply, err error) {
			testutil.AssertTrue(t, r == nil)
			done <- err
		})

	select {
	case err := <-done:
		testutil.AssertErrorIs(t, err, ErrServerError)
	case <-time.After(2 * time.Second):
		t.Fatal("completion was not called")
	}
}

func TestGetStationTimeTableRaw(t *testing.T) {
	ms := testutil.NewJSONServer(http.StatusOK, testutil.SampleStationBoardResponse)
	defer ms.Close()

	raw, err := newTestClient(ms.URL).Stations.GetStationTimeTableRaw(context.Background(), StationBoardRequest{StationID: 94})
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, string(raw), testutil.SampleStationBoardResponse)
}
