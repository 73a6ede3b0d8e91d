// Package report writes a month's tracked hours to a markdown summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Coks-Coks/Peli-Tracking/internal/aggregate"
	"github.com/Coks-Coks/Peli-Tracking/internal/format"
)

type Writer struct{}

func New() *Writer {
	return &Writer{}
}

// MonthMarkdown renders a month bucket as a markdown document: totals,
// one table per aspect (weeks then days).
func (w *Writer) MonthMarkdown(bucket aggregate.MonthBucket, label string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", label))

	sb.WriteString("## Résumé\n\n")
	sb.WriteString("| Indicateur | Valeur |\n")
	sb.WriteString("|-----------|--------|\n")
	sb.WriteString(fmt.Sprintf("| Heures travaillées | %s |\n", format.ToDuration(bucket.Worked)))
	sb.WriteString(fmt.Sprintf("| Heures théoriques | %s |\n", format.ToDuration(bucket.Theoretical)))
	sb.WriteString(fmt.Sprintf("| Écart | %s |\n", format.ToSignedDuration(bucket.Delta)))

	dayCount := 0
	for _, week := range bucket.Weeks {
		dayCount += len(week.Days)
	}
	sb.WriteString(fmt.Sprintf("| Jours enregistrés | %d |\n", dayCount))
	sb.WriteString("\n")

	sb.WriteString("## Semaines\n\n")
	sb.WriteString("| Semaine | Heures | Écart |\n")
	sb.WriteString("|---------|--------|-------|\n")
	for _, week := range bucket.Weeks {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			week.Key, format.ToDuration(week.Worked), format.ToSignedDuration(week.Delta)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Journées\n\n")
	sb.WriteString("| Date | Arrivée | Départ | Heures | Écart |\n")
	sb.WriteString("|------|---------|--------|--------|-------|\n")
	for _, week := range bucket.Weeks {
		for _, day := range week.Days {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				day.Date, day.Record.Arrival, day.Record.Departure,
				format.ToDuration(day.Record.WorkedHours),
				format.ToSignedDuration(day.Record.Delta)))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("---\n*Généré le %s*\n", time.Now().Format("2006-01-02 15:04")))

	return sb.String()
}

// WriteMonth writes the markdown report to path, creating parent
// directories as needed.
func (w *Writer) WriteMonth(path string, bucket aggregate.MonthBucket, label string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(w.MonthMarkdown(bucket, label)), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
