package records

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"go-tower-keep/internal/config"
	"go-tower-keep/pkg/logger"
)

// Entry is what a finished run contributes to the records.
type Entry struct {
	DurationMs float64
	Kills      int
}

// Outcome reports the bests as they were before the submission and which of
// them the submission replaced.
type Outcome struct {
	PreviousDurationMs int64
	PreviousKills      int
	NewDuration        bool
	NewKills           bool
}

// Best returns the stored best duration and kill count. Missing keys are 0.
func Best(ctx context.Context, store Store) (durationMs int64, kills int, err error) {
	durationMs, err = readInt(ctx, store, config.BestDurationKey)
	if err != nil {
		return 0, 0, err
	}
	k, err := readInt(ctx, store, config.BestKillsKey)
	if err != nil {
		return 0, 0, err
	}
	return durationMs, int(k), nil
}

// Submit compares e against the stored bests and overwrites each one it
// beats. Duration and kills are compared independently.
func Submit(ctx context.Context, store Store, e Entry) (Outcome, error) {
	prevDuration, prevKills, err := Best(ctx, store)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{PreviousDurationMs: prevDuration, PreviousKills: prevKills}

	duration := int64(math.Floor(e.DurationMs))
	if duration > prevDuration {
		if err := store.Set(ctx, config.BestDurationKey, strconv.FormatInt(duration, 10)); err != nil {
			return out, err
		}
		out.NewDuration = true
	}
	if e.Kills > prevKills {
		if err := store.Set(ctx, config.BestKillsKey, strconv.Itoa(e.Kills)); err != nil {
			return out, err
		}
		out.NewKills = true
	}

	if out.NewDuration || out.NewKills {
		logger.Component("records").WithFields(logrus.Fields{
			"duration_ms":   duration,
			"kills":         e.Kills,
			"new_duration":  out.NewDuration,
			"new_kills":     out.NewKills,
			"previous_ms":   prevDuration,
			"previous_kill": prevKills,
		}).Info("best run improved")
	}
	return out, nil
}

func readInt(ctx context.Context, store Store, key string) (int64, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s=%q", ErrCorruptRecord, key, raw)
	}
	return int64(math.Floor(v)), nil
}
