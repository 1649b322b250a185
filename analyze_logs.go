package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Govind-619/OrderLadder/scripts"
)

func analyzeLogsCmd() *cobra.Command {
	var (
		logDir string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "analyze-logs",
		Short: "Summarize a day of payment logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return err
				}
				day = parsed
			}

			stats, err := scripts.AnalyzeLogs(logDir, day)
			if err != nil {
				return err
			}
			scripts.PrintReport(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&logDir, "dir", "logs", "log directory")
	cmd.Flags().StringVar(&date, "date", "", "day to analyze (YYYY-MM-DD), defaults to today")
	return cmd
}
