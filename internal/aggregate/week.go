package aggregate

import (
	"time"

	"github.com/Coks-Coks/Peli-Tracking/internal/store"
	"github.com/Coks-Coks/Peli-Tracking/internal/work"
)

// WeekSlot is one of the five Monday-Friday slots of the current week
// view. Days without an entry keep HasEntry false and render as explicit
// placeholders.
type WeekSlot struct {
	Date     string
	HasEntry bool
	Record   store.DayRecord
}

// CurrentWeekView always carries exactly five slots. Unlike month and year
// buckets, its theoretical total is the fixed weekly constant (42.5),
// whether or not every day has an entry. The asymmetry is deliberate and
// matches the historical behaviour of the tracker.
type CurrentWeekView struct {
	Slots       []WeekSlot
	Worked      float64
	Theoretical float64
	Delta       float64
}

// CurrentWeekDates returns the five weekday date keys (Mon-Fri) of the
// week containing now. Monday is found by stepping back (weekday+6) mod 7
// days, so a Sunday still maps to the Monday before it.
func CurrentWeekDates(now time.Time) []string {
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)

	dates := make([]string, 0, work.WorkDaysPerWeek)
	for i := 0; i < work.WorkDaysPerWeek; i++ {
		dates = append(dates, monday.AddDate(0, 0, i).Format(store.DateLayout))
	}
	return dates
}

// CurrentWeek builds the week view for the week containing now. Missing
// days contribute zero to the worked total but never shrink the
// theoretical denominator.
func CurrentWeek(records map[string]store.DayRecord, now time.Time) CurrentWeekView {
	view := CurrentWeekView{Theoretical: work.TheoWeeklyHours}
	for _, date := range CurrentWeekDates(now) {
		rec, ok := records[date]
		view.Slots = append(view.Slots, WeekSlot{Date: date, HasEntry: ok, Record: rec})
		if ok {
			view.Worked += rec.WorkedHours
		}
	}
	view.Delta = view.Worked - view.Theoretical
	return view
}
