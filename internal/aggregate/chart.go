package aggregate

import (
	"github.com/Coks-Coks/Peli-Tracking/internal/store"
	"github.com/Coks-Coks/Peli-Tracking/internal/work"
)

// ChartSeries carries the stacked-bar inputs for one month: for every
// weekday entry, the portion below the daily target, the reached target
// portion, and the surplus above it. The three sequences are parallel to
// Labels.
type ChartSeries struct {
	Labels   []string
	Below    []float64
	AtTarget []float64
	Above    []float64
}

// MonthChartSeries builds the stacked-bar series for one "YYYY-MM" key.
// A day under target contributes only to Below; a day at or over target
// contributes the full target to AtTarget and the rest to Above.
func MonthChartSeries(records map[string]store.DayRecord, monthKey string) ChartSeries {
	var series ChartSeries
	for _, e := range weekdayEntries(records) {
		if MonthKeyOf(e.Date) != monthKey {
			continue
		}

		w := e.Record.WorkedHours
		series.Labels = append(series.Labels, e.Date)
		if w < work.TheoHoursPerDay {
			series.Below = append(series.Below, w)
			series.AtTarget = append(series.AtTarget, 0)
			series.Above = append(series.Above, 0)
		} else {
			series.Below = append(series.Below, 0)
			series.AtTarget = append(series.AtTarget, work.TheoHoursPerDay)
			series.Above = append(series.Above, w-work.TheoHoursPerDay)
		}
	}
	return series
}
