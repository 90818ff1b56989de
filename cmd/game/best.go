package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"go-tower-keep/internal/records"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the best run on record",
	RunE:  runBest,
}

func runBest(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	store, closeRecords, err := openRecords(settings)
	if err != nil {
		return err
	}
	defer closeRecords()

	ms, kills, err := records.Best(context.Background(), store)
	if err != nil {
		return err
	}
	if ms == 0 && kills == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs on record yet.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Best time: %s\nBest kills: %d\n", records.FormatDuration(float64(ms)), kills)
	return nil
}
