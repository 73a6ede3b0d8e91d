package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Coks-Coks/Peli-Tracking/internal/aggregate"
	"github.com/Coks-Coks/Peli-Tracking/internal/chart"
	"github.com/Coks-Coks/Peli-Tracking/internal/csvio"
	"github.com/Coks-Coks/Peli-Tracking/internal/format"
	"github.com/Coks-Coks/Peli-Tracking/internal/report"
	"github.com/Coks-Coks/Peli-Tracking/internal/store"
	"github.com/Coks-Coks/Peli-Tracking/internal/view"
	"github.com/Coks-Coks/Peli-Tracking/internal/work"
)

var saveCmd = &cobra.Command{
	Use:     "save <date> <arrival> <departure>",
	Aliases: []string{"add", "s"},
	Short:   "Record a day's arrival and departure",
	Long: `Record or overwrite one day's entry. Worked hours are the presence
time minus the one hour lunch break; the delta compares them to the
8h30 daily target. Overwriting an existing date requires --force.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, arrival, departure := args[0], args[1], args[2]
		if date == "" || arrival == "" || departure == "" {
			return fmt.Errorf("date, arrival and departure are all required")
		}
		if _, err := time.Parse(store.DateLayout, date); err != nil {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
		}

		rec, err := store.NewDayRecord(arrival, departure)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		outcome, err := db.Put(date, rec, force)
		if err != nil {
			return err
		}
		if outcome == store.OutcomeRequiresConfirmation {
			fmt.Printf("An entry already exists for %s. Re-run with --force to overwrite it.\n", date)
			return nil
		}

		fmt.Printf("%s: %s → %s | %s (%s)\n\n", date, arrival, departure,
			format.ToDuration(rec.WorkedHours), format.ToSignedDuration(rec.Delta))
		return printWeek()
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a day's entry",
	Long:    `Delete the entry recorded for a date. Requires --force to confirm; deleting a date with no entry does nothing.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]

		force, _ := cmd.Flags().GetBool("force")
		outcome, err := db.Delete(date, force)
		if err != nil {
			return err
		}
		switch outcome {
		case store.OutcomeNoop:
			fmt.Printf("No entry for %s\n", date)
		case store.OutcomeRequiresConfirmation:
			fmt.Printf("Delete the entry for %s? Re-run with --force to confirm.\n", date)
		case store.OutcomeApplied:
			fmt.Printf("Entry for %s deleted\n", date)
		}
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w"},
	Short:   "Show the current week",
	Long: `Display the five weekdays of the current week. Days without an entry
show a placeholder; the weekly target stays fixed at 42h30 whether or
not every day is filled in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printWeek()
	},
}

var monthCmd = &cobra.Command{
	Use:     "month [YYYY-MM]",
	Aliases: []string{"m"},
	Short:   "Show a month's entries",
	Long: `Display a month's weekday entries and totals. Defaults to the current
month. Use --chart to also write the stacked bar chart as SVG.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := time.Now().Format("2006-01")
		if len(args) > 0 {
			key = args[0]
			if _, err := time.Parse("2006-01", key); err != nil {
				return fmt.Errorf("invalid month: %s (use YYYY-MM)", key)
			}
		}

		records, err := db.Get()
		if err != nil {
			return err
		}
		bucket := aggregate.Month(records, key)
		fmt.Print(view.RenderMonth(bucket))

		chartPath, _ := cmd.Flags().GetString("chart")
		if chartPath != "" {
			series := aggregate.MonthChartSeries(records, key)
			svg := chart.New().GenerateMonthSVG(view.MonthLabel(key), series)
			if err := os.WriteFile(chartPath, []byte(svg), 0644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Printf("Chart written to %s\n", chartPath)
		}
		return nil
	},
}

var yearCmd = &cobra.Command{
	Use:     "year [YYYY]",
	Aliases: []string{"y"},
	Short:   "Show a year's totals",
	Long:    `Display a year's worked and theoretical hours. Defaults to the current year.`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year: %s", args[0])
			}
			year = parsed
		}

		records, err := db.Get()
		if err != nil {
			return err
		}
		fmt.Print(view.RenderYear(aggregate.Year(records, year)))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"exp"},
	Short:   "Export all entries to CSV",
	Long: `Export every stored entry as semicolon-separated CSV, dates ascending.
Writes to the configured export name by default; use -o to choose a
path, or "-o -" for stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := db.Get()
		if err != nil {
			return err
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = cfg.ExportName
		}

		codec := csvio.Codec{DecimalComma: cfg.DecimalComma}
		if outputPath == "-" {
			return codec.Export(os.Stdout, records)
		}

		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := codec.Export(f, records); err != nil {
			return err
		}
		fmt.Printf("Exported %d entries to %s\n", len(records), outputPath)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from CSV, replacing everything",
	Long: `Import a CSV export. The import replaces ALL stored entries; when
entries already exist, --force is required. Rows with a missing date,
arrival or departure are skipped silently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, err := db.Get()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if len(existing) > 0 && !force {
			fmt.Printf("Import replaces the %d stored entries. Re-run with --force to confirm.\n", len(existing))
			return nil
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		codec := csvio.Codec{DecimalComma: cfg.DecimalComma}
		records, err := codec.Import(f)
		if err != nil {
			return fmt.Errorf("failed to read CSV: %w", err)
		}
		if err := db.ReplaceAll(records); err != nil {
			return err
		}

		fmt.Printf("Imported %d entries\n\n", len(records))
		return printWeek()
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <YYYY-MM>",
	Short: "Write a month's markdown report",
	Long:  `Write a markdown summary of one month: totals, week breakdown and day table.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if _, err := time.Parse("2006-01", key); err != nil {
			return fmt.Errorf("invalid month: %s (use YYYY-MM)", key)
		}

		records, err := db.Get()
		if err != nil {
			return err
		}
		bucket := aggregate.Month(records, key)

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = key + ".md"
		}

		if err := report.New().WriteMonth(outputPath, bucket, view.MonthLabel(key)); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", outputPath)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings and work rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Config: DB=%s | Export=%s | DecimalComma=%t\n",
			cfg.DatabasePath, cfg.ExportName, cfg.DecimalComma)
		fmt.Printf("Rules: Daily: %s | Weekly: %s | Lunch: %s\n",
			format.ToDuration(work.TheoHoursPerDay),
			format.ToDuration(work.TheoWeeklyHours),
			format.ToDuration(work.LunchBreakHours))
		return nil
	},
}

func printWeek() error {
	records, err := db.Get()
	if err != nil {
		return err
	}
	fmt.Print(view.RenderWeek(aggregate.CurrentWeek(records, time.Now())))
	return nil
}

func init() {
	saveCmd.Flags().BoolP("force", "f", false, "Overwrite an existing entry without asking")

	deleteCmd.Flags().BoolP("force", "f", false, "Delete without asking")

	monthCmd.Flags().String("chart", "", "Write the month's stacked bar chart to this SVG file")

	exportCmd.Flags().StringP("output", "o", "", "Output file (config ExportName if empty, \"-\" for stdout)")

	importCmd.Flags().BoolP("force", "f", false, "Replace existing entries without asking")

	reportCmd.Flags().StringP("output", "o", "", "Output file (<month>.md if empty)")
}
