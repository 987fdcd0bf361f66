package models

import (
	"encoding/json"
	"errors"
)

// TrainReply is the response of the train timetable endpoint. Response is
// nil when the train does not run on the requested day.
type TrainReply struct {
	Response *TrainTimeTable `json:"response"`
}

// TrainTimeTable describes the route of a train on a given day
type TrainTimeTable struct {
	ArrivalTime   *string                 `json:"DataHoraDestino"`
	DepartureTime *string                 `json:"DataHoraOrigem"`
	Destination   *string                 `json:"Destino"`
	Duration      *string                 `json:"DuracaoViagem"`
	Operator      *string                 `json:"Operador"`
	Origin        *string                 `json:"Origem"`
	Status        *string                 `json:"SituacaoComboio"`
	ServiceType   *string                 `json:"TipoServico"`
	Stops         []TrainTimeTableElement `json:"NodesPassagemComboio"`
}

// TrainTimeTableElement is a stop on a train route. NodeID is required.
type TrainTimeTableElement struct {
	HasPassed     *bool   `json:"ComboioPassou"`
	ScheduledTime *string `json:"HoraProgramada"`
	NodeID        int     `json:"NodeID"`
	StationName   *string `json:"NomeEstacao"`
	Notes         *string `json:"Observacoes"`
}

// ErrMissingNodeID is returned when a stop is decoded without its NodeID
var ErrMissingNodeID = errors.New("train stop: missing required field NodeID")

func (e *TrainTimeTableElement) UnmarshalJSON(data []byte) error {
	type wire TrainTimeTableElement
	var raw struct {
		wire
		NodeID *int `json:"NodeID"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.NodeID == nil {
		return ErrMissingNodeID
	}
	*e = TrainTimeTableElement(raw.wire)
	e.NodeID = *raw.NodeID
	return nil
}

// NextStop returns the index of the first stop the train has not passed yet,
// or -1 when every stop is marked as passed.
func (t *TrainTimeTable) NextStop() int {
	if t == nil {
		return -1
	}
	for i, s := range t.Stops {
		if s.HasPassed == nil || !*s.HasPassed {
			return i
		}
	}
	return -1
}
