package models

import (
	"encoding/json"
	"fmt"
)

// TimeTableType tells whether a station timetable lists departures or arrivals
type TimeTableType int

const (
	Departures TimeTableType = 1
	Arrivals   TimeTableType = 2
)

func (t TimeTableType) String() string {
	switch t {
	case Departures:
		return "departures"
	case Arrivals:
		return "arrivals"
	}
	return fmt.Sprintf("TimeTableType(%d)", int(t))
}

// MarshalJSON encodes the type as its underlying integer
func (t TimeTableType) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(t))
}

// UnmarshalJSON accepts only the integers 1 and 2
func (t *TimeTableType) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("timetable type: %w", err)
	}
	switch TimeTableType(n) {
	case Departures, Arrivals:
		*t = TimeTableType(n)
		return nil
	}
	return fmt.Errorf("timetable type: unknown value %d", n)
}
