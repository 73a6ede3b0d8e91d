// Package chart renders a month's worked hours as a stacked SVG bar
// chart: red below the daily target, green for the reached target, yellow
// for the surplus.
package chart

import (
	"fmt"
	"strings"

	"github.com/Coks-Coks/Peli-Tracking/internal/aggregate"
	"github.com/Coks-Coks/Peli-Tracking/internal/work"
)

const (
	colorBelow = "#d32f2f"
	colorAt    = "#4CAF50"
	colorAbove = "#FFC107"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateMonthSVG renders one month's stacked bars. Labels show the day
// of month; the dashed line marks the 8h30 daily target.
func (g *Generator) GenerateMonthSVG(title string, series aggregate.ChartSeries) string {
	width := 600
	height := 300
	padding := 40
	maxHours := 12.0

	barCount := len(series.Labels)
	if barCount == 0 {
		barCount = 1
	}
	barWidth := float64(width-2*padding) / float64(barCount)

	plotHeight := float64(height - 2*padding)
	scale := plotHeight / maxHours

	var bars strings.Builder
	for i := range series.Labels {
		x := float64(padding) + float64(i)*barWidth + 2
		y := float64(height - padding)

		segments := []struct {
			hours float64
			color string
		}{
			{series.Below[i], colorBelow},
			{series.AtTarget[i], colorAt},
			{series.Above[i], colorAbove},
		}
		for _, seg := range segments {
			if seg.hours <= 0 {
				continue
			}
			segHeight := seg.hours * scale
			if y-segHeight < float64(padding) {
				segHeight = y - float64(padding)
			}
			y -= segHeight
			bars.WriteString(fmt.Sprintf(`<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" rx="2"/>
    `, x, y, barWidth-4, segHeight, seg.color))
		}
	}

	targetY := float64(height-padding) - work.TheoHoursPerDay*scale

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">
  <rect width="%d" height="%d" fill="#f5f7fa" rx="10"/>
  <text x="%d" y="25" text-anchor="middle" font-size="16" font-weight="bold" fill="#2c3e50">%s</text>

  <!-- Target line (8h30) -->
  <line x1="%d" y1="%.0f" x2="%d" y2="%.0f" stroke="#E74C3C" stroke-width="1" stroke-dasharray="5,5"/>

  <!-- Bars -->
  %s
  <!-- X-axis labels -->
  %s
  <!-- Grid lines -->
  %s
</svg>`,
		width, height, width, height,
		width, height,
		width/2, title,
		padding, targetY, width-padding, targetY,
		bars.String(),
		g.generateXLabels(series.Labels, float64(padding), barWidth, float64(height-padding)),
		g.generateGridLines(maxHours, height, padding, width),
	)
}

func (g *Generator) generateXLabels(labels []string, padding, barWidth, y float64) string {
	var sb strings.Builder
	for i, label := range labels {
		// "2024-01-15" -> "15"
		if len(label) >= 2 {
			label = label[len(label)-2:]
		}
		x := padding + float64(i)*barWidth + barWidth/2
		sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" text-anchor="middle" font-size="10" fill="#7f8c8d">%s</text>`,
			x, y+15, label))
	}
	return sb.String()
}

func (g *Generator) generateGridLines(maxHours float64, height, padding, width int) string {
	var sb strings.Builder
	for i := 1; i <= 4; i++ {
		y := float64(height) - float64(padding) - (float64(i)/4.0)*float64(height-2*padding)
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.0f" x2="%d" y2="%.0f" stroke="#E0E0E0"/>`,
			padding, y, width-padding, y))
	}
	return sb.String()
}
