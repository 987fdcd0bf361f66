package testutil

// Sample JSON responses for API testing, trimmed from real
// servicos.infraestruturasdeportugal.pt answers.

// SampleStationSearchResponse is a station search with a single match
const SampleStationSearchResponse = `{"response":[{"NodeID":94,"Nome":"Porto - Campanhã","Distancia":0}]}`

// SampleStationSearchMultiResponse is a station search with several matches
const SampleStationSearchMultiResponse = `{
	"response": [
		{"NodeID": 94, "Nome": "Porto - Campanhã", "Distancia": 0},
		{"NodeID": 9436, "Nome": "Porto - São Bento", "Distancia": 1},
		{"NodeID": 9415, "Nome": "Porto - Ermesinde"}
	]
}`

// SampleStationBoardResponse holds a departures and an arrivals timetable
const SampleStationBoardResponse = `{
	"response": [
		{
			"NodeID": 94,
			"NomeEstacao": "PORTO - CAMPANHÃ",
			"TipoPedido": 1,
			"NodesComboioTabelsPartidasChegadas": [
				{
					"ComboioPassou": false,
					"DataHoraPartidaChegada": "14:09",
					"DataHoraPartidaChegada_ToOrderBy": "14-10-2026 14:09:00",
					"DataHoraPartidaChegada_ToOrderByi": "14-10-2026 14:09:00",
					"EstacaoDestino": 9430,
					"EstacaoOrigem": 94,
					"NComboio1": 130,
					"NComboio2": 130,
					"NomeEstacaoDestino": "LISBOA - SANTA APOLÓNIA",
					"NomeEstacaoOrigem": "PORTO - CAMPANHÃ",
					"Observacoes": "",
					"Operador": "CP LONGO CURSO",
					"TipoServico": "ALFA"
				},
				{
					"ComboioPassou": true,
					"DataHoraPartidaChegada": "13:58",
					"DataHoraPartidaChegada_ToOrderBy": "14-10-2026 13:58:00",
					"EstacaoDestino": 9439,
					"EstacaoOrigem": 9415,
					"NComboio1": 15803,
					"NomeEstacaoDestino": "AVEIRO",
					"NomeEstacaoOrigem": "PORTO - SÃO BENTO",
					"Observacoes": "Circula com atraso de 5 min.",
					"Operador": "CP PORTO",
					"TipoServico": "URB|SUBUR"
				}
			]
		},
		{
			"NodeID": 94,
			"NomeEstacao": "PORTO - CAMPANHÃ",
			"TipoPedido": 2,
			"NodesComboioTabelsPartidasChegadas": [
				{
					"ComboioPassou": false,
					"DataHoraPartidaChegada": "14:21",
					"EstacaoDestino": 94,
					"EstacaoOrigem": 9430,
					"NComboio1": 521,
					"NomeEstacaoDestino": "PORTO - CAMPANHÃ",
					"NomeEstacaoOrigem": "LISBOA - SANTA APOLÓNIA",
					"Operador": "CP LONGO CURSO",
					"TipoServico": "IC"
				}
			]
		}
	]
}`

// SampleTrainResponse is the route of a single train
const SampleTrainResponse = `{
	"response": {
		"DataHoraDestino": "17:04",
		"DataHoraOrigem": "14:09",
		"Destino": "LISBOA - SANTA APOLÓNIA",
		"DuracaoViagem": "02:55",
		"Operador": "CP LONGO CURSO",
		"Origem": "PORTO - CAMPANHÃ",
		"SituacaoComboio": "Realizado",
		"TipoServico": "ALFA",
		"NodesPassagemComboio": [
			{"ComboioPassou": true, "HoraProgramada": "14:09", "NodeID": 94, "NomeEstacao": "PORTO - CAMPANHÃ", "Observacoes": ""},
			{"ComboioPassou": true, "HoraProgramada": "14:40", "NodeID": 9439, "NomeEstacao": "AVEIRO"},
			{"ComboioPassou": false, "HoraProgramada": "15:05", "NodeID": 9417, "NomeEstacao": "COIMBRA-B", "Observacoes": "Hora Prevista:15:07"},
			{"ComboioPassou": false, "HoraProgramada": "17:04", "NodeID": 9430, "NomeEstacao": "LISBOA - SANTA APOLÓNIA"}
		]
	}
}`

// SampleTrainNotRunningResponse is the answer for a train with no schedule that day
const SampleTrainNotRunningResponse = `{"response": null}`

// SampleNullResponse is a reply with an explicit null payload
const SampleNullResponse = `{"response": null}`

// SampleEmptyResponse is an empty JSON object
const SampleEmptyResponse = `{}`

// SampleErrorResponse is what the upstream gateway returns on failures
const SampleErrorResponse = `{"error": "not found"}`
