package models

// Node is a station reference as returned by the station search endpoint.
// Any field may be missing for partial matches.
type Node struct {
	Distance *int    `json:"Distancia"`
	ID       *int    `json:"NodeID"`
	Name     *string `json:"Nome"`
}

// StationQueryReply is the response of a station name search
type StationQueryReply struct {
	Response []Node `json:"response"`
}

// Value dereferences an optional field, returning the zero value when absent.
func Value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Ptr returns a pointer to v. Handy for building fixtures.
func Ptr[T any](v T) *T {
	return &v
}
