package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Coks-Coks/Peli-Tracking/internal/config"
	"github.com/Coks-Coks/Peli-Tracking/internal/store"
)

var (
	cfg *config.Config
	db  *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "peli",
	Short: "Personal work-hour tracking",
	Long:  `Peli records daily arrival and departure times, totals worked hours against the 8h30 daily target, and rolls them up by week, month and year.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			return err
		}
		db, err = store.New(cfg.DatabasePath)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(yearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
