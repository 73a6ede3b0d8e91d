// Package view turns aggregate output into plain display tuples and
// renders them for the terminal. Core packages never touch presentation;
// everything here is derived data.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Coks-Coks/Peli-Tracking/internal/aggregate"
	"github.com/Coks-Coks/Peli-Tracking/internal/format"
	"github.com/Coks-Coks/Peli-Tracking/internal/store"
	"github.com/Coks-Coks/Peli-Tracking/internal/work"
)

// DayLine is one rendered day row. Empty marks a placeholder slot for a
// weekday without an entry.
type DayLine struct {
	Date        string
	DayName     string
	Arrival     string
	Departure   string
	WorkedLabel string
	DeltaLabel  string
	DeltaSign   string
	Empty       bool
}

// Summary is a bucket's rolled-up footer.
type Summary struct {
	WorkedLabel      string
	TheoreticalLabel string
	DeltaLabel       string
	DeltaSign        string
}

// French month names indexed by time.Month - 1.
var monthNames = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// DayLineFor builds the display tuple of one recorded day.
func DayLineFor(date string, rec store.DayRecord) DayLine {
	return DayLine{
		Date:        date,
		DayName:     dayNameOf(date),
		Arrival:     rec.Arrival,
		Departure:   rec.Departure,
		WorkedLabel: format.ToDuration(rec.WorkedHours),
		DeltaLabel:  format.ToSignedDuration(rec.Delta),
		DeltaSign:   format.Sign(rec.Delta),
	}
}

// PlaceholderFor builds the explicit no-entry line of a weekday slot.
func PlaceholderFor(date string) DayLine {
	return DayLine{
		Date:    date,
		DayName: dayNameOf(date),
		Empty:   true,
	}
}

// SummaryOf builds a bucket footer from raw hour totals.
func SummaryOf(worked, theoretical, delta float64) Summary {
	return Summary{
		WorkedLabel:      format.ToDuration(worked),
		TheoreticalLabel: format.ToDuration(theoretical),
		DeltaLabel:       format.ToSignedDuration(delta),
		DeltaSign:        format.Sign(delta),
	}
}

// WeekLines builds the five day rows of the current week view.
func WeekLines(cw aggregate.CurrentWeekView) []DayLine {
	lines := make([]DayLine, 0, len(cw.Slots))
	for _, slot := range cw.Slots {
		if slot.HasEntry {
			lines = append(lines, DayLineFor(slot.Date, slot.Record))
		} else {
			lines = append(lines, PlaceholderFor(slot.Date))
		}
	}
	return lines
}

// MonthLines flattens a month bucket into day rows, weeks then days in
// ascending order.
func MonthLines(bucket aggregate.MonthBucket) []DayLine {
	var lines []DayLine
	for _, week := range bucket.Weeks {
		for _, day := range week.Days {
			lines = append(lines, DayLineFor(day.Date, day.Record))
		}
	}
	return lines
}

// MonthLabel renders a "YYYY-MM" key as "Janvier 2024". A malformed key is
// returned unchanged.
func MonthLabel(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return key
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return key
	}
	return fmt.Sprintf("%s %s", monthNames[month-1], parts[0])
}

func dayNameOf(date string) string {
	t, err := time.Parse(store.DateLayout, date)
	if err != nil {
		return "?"
	}
	return work.DayName(t)
}
