package records

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tower-keep/internal/config"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{0, "0s"},
		{4400, "4s"},
		{59000, "59s"},
		{60000, "1m 0s"},
		{125000, "2m 5s"},
		{3600000, "60m 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.ms), "ms=%v", tt.ms)
	}
}

func TestSubmitEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	out, err := Submit(ctx, store, Entry{DurationMs: 61234.9, Kills: 12})
	require.NoError(t, err)
	assert.True(t, out.NewDuration)
	assert.True(t, out.NewKills)
	assert.Zero(t, out.PreviousDurationMs)
	assert.Zero(t, out.PreviousKills)

	v, ok, err := store.Get(ctx, config.BestDurationKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "61234", v)

	v, _, _ = store.Get(ctx, config.BestKillsKey)
	assert.Equal(t, "12", v)
}

func TestSubmitComparesIndependently(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, config.BestDurationKey, "90000"))
	require.NoError(t, store.Set(ctx, config.BestKillsKey, "3"))

	// Shorter run, more kills.
	out, err := Submit(ctx, store, Entry{DurationMs: 50000, Kills: 4})
	require.NoError(t, err)
	assert.False(t, out.NewDuration)
	assert.True(t, out.NewKills)
	assert.Equal(t, int64(90000), out.PreviousDurationMs)
	assert.Equal(t, 3, out.PreviousKills)

	d, k, err := Best(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), d)
	assert.Equal(t, 4, k)

	// Equal values do not count as improvements.
	out, err = Submit(ctx, store, Entry{DurationMs: 90000.7, Kills: 4})
	require.NoError(t, err)
	assert.False(t, out.NewDuration)
	assert.False(t, out.NewKills)
}

func TestSubmitCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, config.BestKillsKey, "lots"))

	_, err := Submit(ctx, store, Entry{DurationMs: 1000, Kills: 1})
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "records.json")
	store := NewFileStore(path)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Submit(ctx, store, Entry{DurationMs: 12000, Kills: 2})
	require.NoError(t, err)

	// A second store on the same path sees the persisted values.
	d, k, err := Best(ctx, NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, int64(12000), d)
	assert.Equal(t, 2, k)
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := NewFileStore(path).Get(context.Background(), config.BestKillsKey)
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestOpen(t *testing.T) {
	store, closeFn, err := Open(config.RecordsConfig{Backend: config.RecordsMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	assert.NoError(t, closeFn())

	store, _, err = Open(config.RecordsConfig{Backend: config.RecordsFile, File: filepath.Join(t.TempDir(), "r.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, _, err = Open(config.RecordsConfig{Backend: "sqlite"})
	assert.Error(t, err)

	_, _, err = Open(config.RecordsConfig{Backend: config.RecordsRedis})
	assert.Error(t, err, "redis needs an address")
}
