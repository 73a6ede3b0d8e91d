package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Coks-Coks/Peli-Tracking/internal/aggregate"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	plusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	minusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func styleDelta(label, sign string) string {
	if sign == "minus" {
		return minusStyle.Render(label)
	}
	return plusStyle.Render(label)
}

func renderLine(line DayLine) string {
	if line.Empty {
		return fmt.Sprintf("%s (%s) : %s", line.Date, line.DayName, dimStyle.Render("—"))
	}
	return fmt.Sprintf("%s (%s) : %s → %s | %s (%s)",
		line.Date, line.DayName, line.Arrival, line.Departure,
		line.WorkedLabel, styleDelta(line.DeltaLabel, line.DeltaSign))
}

func renderSummary(label string, s Summary) string {
	return fmt.Sprintf("%s : %s sur %s\nÉcart : %s",
		label, s.WorkedLabel, s.TheoreticalLabel, styleDelta(s.DeltaLabel, s.DeltaSign))
}

// RenderWeek renders the current week: five slots, then the fixed-target
// weekly footer.
func RenderWeek(cw aggregate.CurrentWeekView) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Semaine en cours"))
	sb.WriteString("\n")
	for _, line := range WeekLines(cw) {
		sb.WriteString(renderLine(line))
		sb.WriteString("\n")
	}
	sb.WriteString(renderSummary("Total semaine", SummaryOf(cw.Worked, cw.Theoretical, cw.Delta)))
	sb.WriteString("\n")
	return sb.String()
}

// RenderMonth renders a month bucket's weekday rows and footer.
func RenderMonth(bucket aggregate.MonthBucket) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(MonthLabel(bucket.Key)))
	sb.WriteString("\n")

	lines := MonthLines(bucket)
	if len(lines) == 0 {
		sb.WriteString("Aucune donnée\n")
		return sb.String()
	}
	for _, line := range lines {
		sb.WriteString(renderLine(line))
		sb.WriteString("\n")
	}
	sb.WriteString(renderSummary("Total", SummaryOf(bucket.Worked, bucket.Theoretical, bucket.Delta)))
	sb.WriteString("\n")
	return sb.String()
}

// RenderYear renders a year's totals.
func RenderYear(bucket aggregate.YearBucket) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Année %d", bucket.Year)))
	sb.WriteString("\n")
	if len(bucket.Months) == 0 {
		sb.WriteString("Aucune donnée\n")
		return sb.String()
	}
	sb.WriteString(renderSummary("Heures travaillées", SummaryOf(bucket.Worked, bucket.Theoretical, bucket.Delta)))
	sb.WriteString("\n")
	return sb.String()
}
