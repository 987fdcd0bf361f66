package api

import (
	"net/url"
	"strings"
)

const (
	// BaseURL is the base URL of the Infraestruturas de Portugal public services
	BaseURL = "https://servicos.infraestruturasdeportugal.pt/negocios-e-servicos"

	// EndpointStationSearch searches stations by name
	// Path: /{query}
	EndpointStationSearch = "/estacao-nome"

	// EndpointStationTimeTable returns departures and arrivals at a station
	// Path: /{stationId}/{start}/{end}[/{serviceTypes}]
	EndpointStationTimeTable = "/partidas-chegadas"

	// EndpointTrainTimeTable returns the route of a train on a day
	// Path: /{trainId}/{day}
	EndpointTrainTimeTable = "/horarios-ncombio"
)

// ServiceTypes lists every service type the station timetable is asked for
var ServiceTypes = []string{
	"INTERNACIONAL",
	"ALFA",
	"IC",
	"IR",
	"REGIONAL",
	"URB|SUBUR",
	"ESPECIAL",
	"MERCADORIAS",
	"SERVIÇO",
}

// serviceTypeFilter is the path segment built from ServiceTypes
var serviceTypeFilter = url.PathEscape(strings.Join(ServiceTypes, ", "))
