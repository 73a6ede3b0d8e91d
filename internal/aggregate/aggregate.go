package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/Coks-Coks/Peli-Tracking/internal/store"
	"github.com/Coks-Coks/Peli-Tracking/internal/work"
)

// DayEntry pairs a date key with its stored record.
type DayEntry struct {
	Date   string
	Record store.DayRecord
}

// WeekBucket groups one ISO week's weekday entries with rolled-up totals.
// Theoretical hours scale with the number of recorded weekdays: absent
// days are not penalized.
type WeekBucket struct {
	Key         string // "2024-W03"
	Days        []DayEntry
	Worked      float64
	Theoretical float64
	Delta       float64
}

// MonthBucket groups a month's week buckets.
type MonthBucket struct {
	Key         string // "2024-01"
	Weeks       []WeekBucket
	Worked      float64
	Theoretical float64
	Delta       float64
}

// YearBucket groups a year's month buckets.
type YearBucket struct {
	Year        int
	Months      []MonthBucket
	Worked      float64
	Theoretical float64
	Delta       float64
}

// WeekKeyOf returns the ISO-8601 week identifier of t. The week containing
// t's Thursday owns the week, so December 31 can land in week 1 of the
// following year.
func WeekKeyOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKeyOf returns the "YYYY-MM" key of a "YYYY-MM-DD" date key.
func MonthKeyOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// parsedEntry carries the parsed date alongside the entry while grouping.
type parsedEntry struct {
	DayEntry
	t time.Time
}

// weekdayEntries returns the snapshot's weekday entries in ascending date
// order. Entries whose date key does not parse are dropped: they cannot be
// bucketed meaningfully and must not corrupt the rollups. Weekend entries
// stay in the store but never reach a bucket.
func weekdayEntries(records map[string]store.DayRecord) []parsedEntry {
	entries := make([]parsedEntry, 0, len(records))
	for date, rec := range records {
		t, err := time.Parse(store.DateLayout, date)
		if err != nil {
			continue
		}
		if !work.IsWorkDay(t) {
			continue
		}
		entries = append(entries, parsedEntry{DayEntry{Date: date, Record: rec}, t})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

func rollupWeek(key string, days []DayEntry) WeekBucket {
	bucket := WeekBucket{Key: key, Days: days}
	for _, d := range days {
		bucket.Worked += d.Record.WorkedHours
	}
	bucket.Theoretical = float64(len(days)) * work.TheoHoursPerDay
	bucket.Delta = bucket.Worked - bucket.Theoretical
	return bucket
}

func rollupWeeks(entries []parsedEntry) []WeekBucket {
	grouped := map[string][]DayEntry{}
	for _, e := range entries {
		key := WeekKeyOf(e.t)
		grouped[key] = append(grouped[key], e.DayEntry)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]WeekBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, rollupWeek(key, grouped[key]))
	}
	return buckets
}

// Weeks groups the snapshot's weekday entries by ISO week, in ascending
// key order with days ascending inside each week.
func Weeks(records map[string]store.DayRecord) []WeekBucket {
	return rollupWeeks(weekdayEntries(records))
}

// Months groups the snapshot's weekday entries by calendar month, each
// month holding its week buckets in ascending order.
func Months(records map[string]store.DayRecord) []MonthBucket {
	entries := weekdayEntries(records)

	grouped := map[string][]parsedEntry{}
	for _, e := range entries {
		key := MonthKeyOf(e.Date)
		grouped[key] = append(grouped[key], e)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]MonthBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, rollupMonth(key, grouped[key]))
	}
	return buckets
}

func rollupMonth(key string, entries []parsedEntry) MonthBucket {
	bucket := MonthBucket{Key: key, Weeks: rollupWeeks(entries)}
	for _, w := range bucket.Weeks {
		bucket.Worked += w.Worked
		bucket.Theoretical += w.Theoretical
	}
	bucket.Delta = bucket.Worked - bucket.Theoretical
	return bucket
}

// Month returns the bucket for one "YYYY-MM" key. A month with no weekday
// entries yields an empty bucket with zero totals.
func Month(records map[string]store.DayRecord, key string) MonthBucket {
	for _, bucket := range Months(records) {
		if bucket.Key == key {
			return bucket
		}
	}
	return MonthBucket{Key: key}
}

// Years groups the snapshot's weekday entries by calendar year, each year
// holding its month buckets in ascending order.
func Years(records map[string]store.DayRecord) []YearBucket {
	months := Months(records)

	grouped := map[int][]MonthBucket{}
	for _, m := range months {
		var year int
		if _, err := fmt.Sscanf(m.Key, "%d", &year); err != nil {
			continue
		}
		grouped[year] = append(grouped[year], m)
	}

	years := make([]int, 0, len(grouped))
	for year := range grouped {
		years = append(years, year)
	}
	sort.Ints(years)

	buckets := make([]YearBucket, 0, len(years))
	for _, year := range years {
		bucket := YearBucket{Year: year, Months: grouped[year]}
		for _, m := range bucket.Months {
			bucket.Worked += m.Worked
			bucket.Theoretical += m.Theoretical
		}
		bucket.Delta = bucket.Worked - bucket.Theoretical
		buckets = append(buckets, bucket)
	}
	return buckets
}

// Year returns the bucket for one calendar year, empty when nothing is
// recorded in it.
func Year(records map[string]store.DayRecord, year int) YearBucket {
	for _, bucket := range Years(records) {
		if bucket.Year == year {
			return bucket
		}
	}
	return YearBucket{Year: year}
}

// MonthKeys returns the sorted distinct "YYYY-MM" keys present in the
// snapshot. All well-formed dates count, weekends included; this feeds the
// month selector, not the rollups.
func MonthKeys(records map[string]store.DayRecord) []string {
	seen := map[string]bool{}
	for date := range records {
		if len(date) != len(store.DateLayout) {
			continue
		}
		seen[MonthKeyOf(date)] = true
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
