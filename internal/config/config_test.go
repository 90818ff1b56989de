package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
	require.NoError(t, DefaultSettings().Validate())
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero player hp", func(tu *Tuning) { tu.Player.MaxHP = 0 }},
		{"negative enemy speed", func(tu *Tuning) { tu.Enemy.Speed = -1 }},
		{"variance above interval", func(tu *Tuning) { tu.Tower.FireVariance = tu.Tower.FireInterval + 1 }},
		{"zero anim duration", func(tu *Tuning) { tu.Attack.AnimDuration = 0 }},
		{"no enemy frames", func(tu *Tuning) { tu.Animation.EnemyFrames = 0 }},
		{"negative reward spread", func(tu *Tuning) { tu.KillReward.TowerHealSpread = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, "towerkeep.yaml", `
seed: 42
records:
  backend: redis
  redis:
    db: 3
tuning:
  tower:
    damage_scales_with_hp: false
    fire_interval: 1500
  enemy:
    aggro_radius: 80
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, RecordsRedis, s.Records.Backend)
	assert.Equal(t, 3, s.Records.Redis.DB)
	assert.Equal(t, "localhost:6379", s.Records.Redis.Addr, "unset keys keep defaults")

	assert.False(t, s.Tuning.Tower.DamageScalesWithHP)
	assert.Equal(t, 1500.0, s.Tuning.Tower.FireInterval)
	assert.Equal(t, 80.0, s.Tuning.Enemy.AggroRadius)
	assert.Equal(t, 50, s.Tuning.Tower.ProjectileDamage, "unset tuning keeps defaults")
	assert.Equal(t, 0.015, s.Tuning.Enemy.Speed)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TOWERKEEP_SEED", "7")
	t.Setenv("TOWERKEEP_RECORDS_BACKEND", "file")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, RecordsFile, s.Records.Backend)
}

func TestLoadEnvOverridesTuning(t *testing.T) {
	t.Setenv("TOWERKEEP_TUNING_ENEMY_SPEED", "0.5")
	t.Setenv("TOWERKEEP_TUNING_PLAYER_MAX_HP", "250")
	t.Setenv("TOWERKEEP_TUNING_TOWER_DAMAGE_SCALES_WITH_HP", "false")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Tuning.Enemy.Speed)
	assert.Equal(t, 250, s.Tuning.Player.MaxHP)
	assert.False(t, s.Tuning.Tower.DamageScalesWithHP)
	assert.Equal(t, DefaultTuning().Spawn, s.Tuning.Spawn, "untouched keys keep defaults")
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := writeConfig(t, "towerkeep.yaml", "tuning:\n  enemy:\n    aggro_radius: 80\n")
	t.Setenv("TOWERKEEP_TUNING_ENEMY_AGGRO_RADIUS", "65")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 65.0, s.Tuning.Enemy.AggroRadius)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, "bad.yaml", "tuning:\n  player:\n    max_hp: 0\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidTuning)

	path = writeConfig(t, "backend.yaml", "records:\n  backend: sqlite\n")
	_, err = Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
