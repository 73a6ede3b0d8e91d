// Package csvio implements the semicolon-separated CSV interchange format
// used to move tracked hours in and out of spreadsheets.
package csvio

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Coks-Coks/Peli-Tracking/internal/store"
)

// Header is the exact export header row.
var Header = []string{"Date", "Heure arrivée", "Heure départ", "Heures travaillées (h déc)", "Écart (h déc)"}

// Codec reads and writes the CSV format.
type Codec struct {
	// DecimalComma switches numeric output to a comma decimal separator
	// for spreadsheet locales that expect one. Import accepts both
	// separators regardless.
	DecimalComma bool
}

// Export writes the full mapping, dates ascending, values with three
// decimals.
func (c Codec) Export(w io.Writer, records map[string]store.DayRecord) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(Header); err != nil {
		return err
	}

	dates := make([]string, 0, len(records))
	for date := range records {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		rec := records[date]
		row := []string{
			date,
			rec.Arrival,
			rec.Departure,
			c.formatFloat(rec.WorkedHours),
			c.formatFloat(rec.Delta),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Import parses a full export and returns the replacement mapping. The
// header row is discarded. Rows with fewer than five fields or an empty
// date, arrival or departure are silently skipped. Rows whose numeric
// fields do not parse are skipped too: the stored JSON document cannot
// carry a not-a-number value.
func (c Codec) Import(r io.Reader) (map[string]store.DayRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records := map[string]store.DayRecord{}
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(row) < 5 {
			continue
		}

		date := strings.TrimSpace(row[0])
		arrival := strings.TrimSpace(row[1])
		departure := strings.TrimSpace(row[2])
		if date == "" || arrival == "" || departure == "" {
			continue
		}

		worked, workedErr := parseFloat(row[3])
		delta, deltaErr := parseFloat(row[4])
		if workedErr != nil || deltaErr != nil {
			continue
		}

		records[date] = store.DayRecord{
			Arrival:     arrival,
			Departure:   departure,
			WorkedHours: worked,
			Delta:       delta,
		}
	}
	return records, nil
}

func (c Codec) formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if c.DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.Replace(s, ",", ".", 1)
	return strconv.ParseFloat(s, 64)
}
