package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go-tower-keep/internal/app"
	"go-tower-keep/internal/input"
	"go-tower-keep/internal/records"
	"go-tower-keep/pkg/logger"
)

var (
	simLimit  time.Duration
	simRuns   int
	simSubmit bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play runs headless with the autopilot and print the results as JSON",
	RunE:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&simLimit, "limit", 0, "stop a run after this much game time (0 plays until defeat)")
	simCmd.Flags().IntVar(&simRuns, "runs", 1, "number of runs, seeded seed, seed+1, ...")
	simCmd.Flags().BoolVar(&simSubmit, "submit", false, "submit each finished run to the best-run records")
}

func runSim(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	opts, err := gameOptions(settings)
	if err != nil {
		return err
	}
	store, closeRecords, err := openRecords(settings)
	if err != nil {
		return err
	}
	defer closeRecords()

	log := logger.Component("sim")
	enc := json.NewEncoder(cmd.OutOrStdout())
	for i := 0; i < simRuns; i++ {
		runOpts := opts
		if opts.Seed != 0 {
			runOpts.Seed = opts.Seed + int64(i)
		}
		g, err := app.NewGame(runOpts)
		if err != nil {
			return err
		}
		result := app.RunHeadless(g, input.NewBot(), float64(simLimit.Milliseconds()))
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		if !simSubmit || !g.Over() {
			continue
		}
		outcome, err := records.Submit(context.Background(), store, result.Record())
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"run_id":       result.RunID.String(),
			"new_duration": outcome.NewDuration,
			"new_kills":    outcome.NewKills,
		}).Info("run submitted")
	}
	return nil
}
