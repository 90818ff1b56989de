package state

import (
	"context"
	"time"

	"go-tower-keep/internal/app"
	"go-tower-keep/internal/records"
)

// recordsTimeout bounds a records read or write so a slow store never stalls
// the window for long.
const recordsTimeout = 2 * time.Second

// Session is what every state of the windowed game shares.
type Session struct {
	Options app.Options
	Records records.Store
}

func (s *Session) newGame() (*app.Game, error) {
	return app.NewGame(s.Options)
}

func (s *Session) best() (int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), recordsTimeout)
	defer cancel()
	return records.Best(ctx, s.Records)
}

func (s *Session) submit(result app.RunResult) (records.Outcome, error) {
	ctx, cancel := context.WithTimeout(context.Background(), recordsTimeout)
	defer cancel()
	return records.Submit(ctx, s.Records, result.Record())
}
