package main

import (
	"fmt"

	"go-tower-keep/internal/app"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/records"
)

var (
	configPath string
	levelPath  string
	seed       int64
)

// loadSettings reads the config and applies the command line overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, err
	}
	if levelPath != "" {
		settings.Level = levelPath
	}
	if seed != 0 {
		settings.Seed = seed
	}
	return settings, nil
}

// gameOptions turns settings into the options of a run.
func gameOptions(settings config.Settings) (app.Options, error) {
	level, err := defs.LoadOrDefault(settings.Level)
	if err != nil {
		return app.Options{}, fmt.Errorf("load level: %w", err)
	}
	tuning := settings.Tuning
	return app.Options{
		Level:  &level,
		Tuning: &tuning,
		Seed:   settings.Seed,
	}, nil
}

func openRecords(settings config.Settings) (records.Store, func() error, error) {
	store, closeFn, err := records.Open(settings.Records)
	if err != nil {
		return nil, nil, fmt.Errorf("open records: %w", err)
	}
	return store, closeFn, nil
}
