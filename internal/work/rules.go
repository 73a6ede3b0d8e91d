package work

import "time"

// =============================================================================
// WORK RULES CONFIGURATION
// =============================================================================
// Edit these values to match your contract.
// Current defaults: 42.5 hour week over five days, one hour lunch break.
// =============================================================================

const (
	// TheoHoursPerDay - the daily working-hours target (8h30 in decimal)
	TheoHoursPerDay = 8.5

	// LunchBreakHours - fixed lunch deduction applied to every day
	LunchBreakHours = 1.0

	// WorkDaysPerWeek - standard work week (Monday through Friday)
	WorkDaysPerWeek = 5

	// TheoWeeklyHours - fixed weekly target used by the week view
	TheoWeeklyHours = WorkDaysPerWeek * TheoHoursPerDay
)

// Short French day names indexed by time.Weekday (Sunday first).
var dayNames = [...]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"}

// IsWorkDay returns true if the given day is a standard work day (Mon-Fri)
func IsWorkDay(t time.Time) bool {
	day := t.Weekday()
	return day >= time.Monday && day <= time.Friday
}

// DayName returns the short French name of t's weekday
func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}
