package store

import (
	"fmt"
	"math"
	"time"

	"github.com/Coks-Coks/Peli-Tracking/internal/work"
)

// DateLayout is the calendar-date key format ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format for arrival and departure ("HH:MM").
const TimeLayout = "15:04"

// DayRecord is one tracked day, keyed by its calendar date. Field names
// mirror the persisted JSON document.
type DayRecord struct {
	Arrival     string  `json:"arrival"`
	Departure   string  `json:"departure"`
	WorkedHours float64 `json:"workedHours"`
	Delta       float64 `json:"delta"`
}

// NewDayRecord computes a day's record from its wall-clock bounds.
// Worked hours are presence time minus the fixed lunch deduction, rounded
// to three decimals. A departure earlier than the arrival is not rejected;
// the worked hours simply go negative.
func NewDayRecord(arrival, departure string) (DayRecord, error) {
	start, err := time.Parse(TimeLayout, arrival)
	if err != nil {
		return DayRecord{}, fmt.Errorf("invalid arrival time: %s (use HH:MM)", arrival)
	}
	end, err := time.Parse(TimeLayout, departure)
	if err != nil {
		return DayRecord{}, fmt.Errorf("invalid departure time: %s (use HH:MM)", departure)
	}

	worked := round3(end.Sub(start).Hours() - work.LunchBreakHours)
	return DayRecord{
		Arrival:     arrival,
		Departure:   departure,
		WorkedHours: worked,
		Delta:       round3(worked - work.TheoHoursPerDay),
	}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
