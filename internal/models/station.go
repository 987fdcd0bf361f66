package models

// StationReply is the response of the departures/arrivals endpoint.
// The API usually answers with one timetable per TimeTableType.
type StationReply struct {
	Response []StationTimeTable `json:"response"`
}

// StationTimeTable holds the movements of one type at a station
type StationTimeTable struct {
	NodeID      *int                      `json:"NodeID"`
	StationName *string                   `json:"NomeEstacao"`
	TableType   *TimeTableType            `json:"TipoPedido"`
	Elements    []StationTimeTableElement `json:"NodesComboioTabelsPartidasChegadas"`
}

// StationTimeTableElement is one scheduled departure or arrival
type StationTimeTableElement struct {
	HasPassed              *bool   `json:"ComboioPassou"`
	Time                   *string `json:"DataHoraPartidaChegada"`
	TimeToOrder            *string `json:"DataHoraPartidaChegada_ToOrderBy"`
	TimeToOrder2           *string `json:"DataHoraPartidaChegada_ToOrderByi"`
	DestinationStationID   *int    `json:"EstacaoDestino"`
	OriginStationID        *int    `json:"EstacaoOrigem"`
	TrainID                *int    `json:"NComboio1"`
	TrainID2               *int    `json:"NComboio2"`
	DestinationStationName *string `json:"NomeEstacaoDestino"`
	OriginStationName      *string `json:"NomeEstacaoOrigem"`
	Observations           *string `json:"Observacoes"`
	Operator               *string `json:"Operador"`
	ServiceType            *string `json:"TipoServico"`
}

// Departures returns the departures timetable, or nil if the reply has none
func (r *StationReply) Departures() *StationTimeTable {
	return r.timeTable(Departures)
}

// Arrivals returns the arrivals timetable, or nil if the reply has none
func (r *StationReply) Arrivals() *StationTimeTable {
	return r.timeTable(Arrivals)
}

func (r *StationReply) timeTable(kind TimeTableType) *StationTimeTable {
	if r == nil {
		return nil
	}
	for i := range r.Response {
		if tt := r.Response[i].TableType; tt != nil && *tt == kind {
			return &r.Response[i]
		}
	}
	return nil
}

// TrainNumbers returns the train ids the element carries, skipping absent ones
func (e *StationTimeTableElement) TrainNumbers() []int {
	var ids []int
	if e.TrainID != nil {
		ids = append(ids, *e.TrainID)
	}
	if e.TrainID2 != nil && (e.TrainID == nil || *e.TrainID2 != *e.TrainID) {
		ids = append(ids, *e.TrainID2)
	}
	return ids
}
