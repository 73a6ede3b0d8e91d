package aggregate

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/Coks-Coks/Peli-Tracking/internal/store"
)

func mustRecord(t *testing.T, arrival, departure string) store.DayRecord {
	t.Helper()
	rec, err := store.NewDayRecord(arrival, departure)
	if err != nil {
		t.Fatalf("NewDayRecord(%q, %q): %v", arrival, departure, err)
	}
	return rec
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWeekKeyOf(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"mid January", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "2024-W03"},
		{"first Monday of ISO year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-W01"},
		{"Dec 31 on a Tuesday belongs to next year", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "2025-W01"},
		{"Jan 1 on a Friday belongs to prior year", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), "2020-W53"},
		{"ordinary Thursday", time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), "2024-W23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WeekKeyOf(tt.date)
			if result != tt.expected {
				t.Errorf("WeekKeyOf(%v) = %q, want %q", tt.date, result, tt.expected)
			}
		})
	}
}

func TestCurrentWeekDates(t *testing.T) {
	// Week of Monday 2024-01-15.
	want := []string{"2024-01-15", "2024-01-16", "2024-01-17", "2024-01-18", "2024-01-19"}

	tests := []struct {
		name string
		now  time.Time
	}{
		{"Monday", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)},
		{"Wednesday", time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)},
		{"Friday", time.Date(2024, 1, 19, 23, 0, 0, 0, time.UTC)},
		{"Saturday", time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)},
		{"Sunday maps back to the same Monday", time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CurrentWeekDates(tt.now)
			if !reflect.DeepEqual(result, want) {
				t.Errorf("CurrentWeekDates(%v) = %v, want %v", tt.now, result, want)
			}
		})
	}
}

func TestCurrentWeekFixedTheoretical(t *testing.T) {
	now := time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC) // Wednesday
	records := map[string]store.DayRecord{
		"2024-01-15": mustRecord(t, "08:00", "17:30"), // 8.5
		"2024-01-16": mustRecord(t, "09:00", "16:45"), // 6.75
	}

	view := CurrentWeek(records, now)

	if len(view.Slots) != 5 {
		t.Fatalf("current week has %d slots, want 5", len(view.Slots))
	}
	if view.Theoretical != 42.5 {
		t.Errorf("Theoretical = %f, want fixed 42.5 regardless of entry count", view.Theoretical)
	}
	if !approx(view.Worked, 15.25) {
		t.Errorf("Worked = %f, want 15.25", view.Worked)
	}
	if !approx(view.Delta, 15.25-42.5) {
		t.Errorf("Delta = %f, want %f", view.Delta, 15.25-42.5)
	}

	if !view.Slots[0].HasEntry || !view.Slots[1].HasEntry {
		t.Error("recorded days should be marked HasEntry")
	}
	for i := 2; i < 5; i++ {
		if view.Slots[i].HasEntry {
			t.Errorf("slot %d should be an empty placeholder", i)
		}
	}
	if view.Slots[4].Date != "2024-01-19" {
		t.Errorf("last slot = %s, want 2024-01-19", view.Slots[4].Date)
	}
}

func TestWeeksFiltersWeekends(t *testing.T) {
	records := map[string]store.DayRecord{
		"2024-01-15": mustRecord(t, "08:00", "17:30"), // Monday
		"2024-01-20": mustRecord(t, "10:00", "14:00"), // Saturday
		"2024-01-21": mustRecord(t, "10:00", "14:00"), // Sunday
	}

	weeks := Weeks(records)
	if len(weeks) != 1 {
		t.Fatalf("got %d weeks, want 1", len(weeks))
	}
	week := weeks[0]
	if week.Key != "2024-W03" {
		t.Errorf("week key = %q, want 2024-W03", week.Key)
	}
	if len(week.Days) != 1 {
		t.Fatalf("week has %d days, want 1 (weekends excluded)", len(week.Days))
	}
	if !approx(week.Worked, 8.5) {
		t.Errorf("Worked = %f, want 8.5", week.Worked)
	}
	if week.Theoretical != 8.5 {
		t.Errorf("Theoretical = %f, want 8.5 (one weekday entry)", week.Theoretical)
	}
}

func TestWeeksOrdering(t *testing.T) {
	records := map[string]store.DayRecord{
		"2024-01-22": mustRecord(t, "08:00", "17:30"),
		"2024-01-16": mustRecord(t, "08:00", "17:30"),
		"2024-01-15": mustRecord(t, "08:00", "17:30"),
		"2024-01-08": mustRecord(t, "08:00", "17:30"),
	}

	weeks := Weeks(records)
	if len(weeks) != 3 {
		t.Fatalf("got %d weeks, want 3", len(weeks))
	}
	wantKeys := []string{"2024-W02", "2024-W03", "2024-W04"}
	for i, want := range wantKeys {
		if weeks[i].Key != want {
			t.Errorf("weeks[%d].Key = %q, want %q", i, weeks[i].Key, want)
		}
	}

	w03 := weeks[1]
	if w03.Days[0].Date != "2024-01-15" || w03.Days[1].Date != "2024-01-16" {
		t.Errorf("days within a week not ascending: %v", w03.Days)
	}
}

func TestMonthsNestingAndRollup(t *testing.T) {
	records := map[string]store.DayRecord{
		"2024-01-15": mustRecord(t, "08:00", "17:30"), // 8.5, W03
		"2024-01-16": mustRecord(t, "09:00", "16:45"), // 6.75, W03
		"2024-01-22": mustRecord(t, "08:00", "18:30"), // 9.5, W04
		"2024-02-05": mustRecord(t, "08:00", "17:30"), // 8.5, February
	}

	months := Months(records)
	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}
	if months[0].Key != "2024-01" || months[1].Key != "2024-02" {
		t.Errorf("month keys = %q, %q; want ascending 2024-01, 2024-02", months[0].Key, months[1].Key)
	}

	jan := months[0]
	if len(jan.Weeks) != 2 {
		t.Fatalf("January has %d weeks, want 2", len(jan.Weeks))
	}
	if jan.Weeks[0].Key != "2024-W03" || jan.Weeks[1].Key != "2024-W04" {
		t.Errorf("week keys within month not ascending: %q, %q", jan.Weeks[0].Key, jan.Weeks[1].Key)
	}
	if !approx(jan.Worked, 8.5+6.75+9.5) {
		t.Errorf("January Worked = %f, want %f", jan.Worked, 8.5+6.75+9.5)
	}
	if !approx(jan.Theoretical, 3*8.5) {
		t.Errorf("January Theoretical = %f, want %f (3 weekday entries)", jan.Theoretical, 3*8.5)
	}
	if !approx(jan.Delta, jan.Worked-jan.Theoretical) {
		t.Errorf("January Delta = %f, want worked-theoretical", jan.Delta)
	}
}

func TestMonthMissingKey(t *testing.T) {
	records := map[string]store.DayRecord{
		"2024-01-15": mustRecord(t, "08:00", "17:30"),
	}

	bucket := Month(records, "2023-06")
	if bucket.Key != "2023-06" {
		t.Errorf("Key = %q, want 2023-06", bucket.Key)
	}
	if len(bucket.Weeks) != 0 || bucket.Worked != 0 || bucket.Theoretical != 0 {
		t.Errorf("empty month should have zero totals, got %+v", bucket)
	}
}

func TestYears(t *testing.T) {
	records := map[string]store.DayRecord{
		"2023-12-29": mustRecord(t, "08:00", "17:30"), // Friday 2023
		"2024-01-15": mustRecord(t, "08:00", "17:30"),
		"2024-02-05": mustRecord(t, "09:00", "16:45"),
	}

	years := Years(records)
	if len(years) != 2 {
		t.Fatalf("got %d years, want 2", len(years))
	}
	if years[0].Year != 2023 || years[1].Year != 2024 {
		t.Errorf("years not ascending: %d, %d", years[0].Year, years[1].Year)
	}

	y2024 := Year(records, 2024)
	if len(y2024.Months) != 2 {
		t.Fatalf("2024 has %d months, want 2", len(y2024.Months))
	}
	if !approx(y2024.Worked, 8.5+6.75) {
		t.Errorf("2024 Worked = %f, want %f", y2024.Worked, 8.5+6.75)
	}
	if !approx(y2024.Theoretical, 2*8.5) {
		t.Errorf("2024 Theoretical = %f, want %f", y2024.Theoretical, 2*8.5)
	}

	empty := Year(records, 1999)
	if empty.Worked != 0 || len(empty.Months) != 0 {
		t.Errorf("empty year should have zero totals, got %+v", empty)
	}
}

func TestUnparseableDateSkipped(t *testing.T) {
	records := map[string]store.DayRecord{
		"2024-01-15":  mustRecord(t, "08:00", "17:30"),
		"not-a-date":  mustRecord(t, "08:00", "17:30"),
		"2024-13-99":  mustRecord(t, "08:00", "17:30"),
		"2024-01-15x": mustRecord(t, "08:00", "17:30"),
	}

	weeks := Weeks(records)
	if len(weeks) != 1 || len(weeks[0].Days) != 1 {
		t.Fatalf("malformed date keys must not reach buckets, got %+v", weeks)
	}
	if !approx(weeks[0].Worked, 8.5) {
		t.Errorf("Worked = %f, want 8.5", weeks[0].Worked)
	}
}

func TestMonthChartSeries(t *testing.T) {
	records := map[string]store.DayRecord{
		"2024-01-15": mustRecord(t, "08:00", "17:30"), // 8.5 exactly on target
		"2024-01-16": mustRecord(t, "09:00", "16:45"), // 6.75 below
		"2024-01-17": mustRecord(t, "08:00", "18:30"), // 9.5 above
		"2024-01-20": mustRecord(t, "10:00", "14:00"), // Saturday, excluded
		"2024-02-05": mustRecord(t, "08:00", "17:30"), // other month
	}

	series := MonthChartSeries(records, "2024-01")

	wantLabels := []string{"2024-01-15", "2024-01-16", "2024-01-17"}
	if !reflect.DeepEqual(series.Labels, wantLabels) {
		t.Fatalf("Labels = %v, want %v", series.Labels, wantLabels)
	}

	checks := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"Below", series.Below, []float64{0, 6.75, 0}},
		{"AtTarget", series.AtTarget, []float64{8.5, 0, 8.5}},
		{"Above", series.Above, []float64{0, 0, 1.0}},
	}
	for _, c := range checks {
		if len(c.got) != len(c.want) {
			t.Fatalf("%s has %d values, want %d", c.name, len(c.got), len(c.want))
		}
		for i := range c.want {
			if !approx(c.got[i], c.want[i]) {
				t.Errorf("%s[%d] = %f, want %f", c.name, i, c.got[i], c.want[i])
			}
		}
	}
}

func TestMonthKeys(t *testing.T) {
	records := map[string]store.DayRecord{
		"2024-02-05": mustRecord(t, "08:00", "17:30"),
		"2024-01-15": mustRecord(t, "08:00", "17:30"),
		"2024-01-16": mustRecord(t, "08:00", "17:30"),
		"2023-12-30": mustRecord(t, "10:00", "14:00"), // Saturday still lists its month
		"bad":        mustRecord(t, "08:00", "17:30"),
	}

	keys := MonthKeys(records)
	want := []string{"2023-12", "2024-01", "2024-02"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("MonthKeys = %v, want %v", keys, want)
	}
}
