// internal/config/settings.go
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TOWERKEEP_SEED.
const EnvPrefix = "TOWERKEEP"

const (
	RecordsMemory = "memory"
	RecordsFile   = "file"
	RecordsRedis  = "redis"
)

// Settings is everything a run needs besides the level itself.
type Settings struct {
	// Seed drives every random draw of the simulation. 0 picks one from the wall clock.
	Seed    int64         `mapstructure:"seed"`
	Level   string        `mapstructure:"level"`
	Records RecordsConfig `mapstructure:"records"`
	Tuning  Tuning        `mapstructure:"tuning"`
}

// RecordsConfig selects where best-run records live.
type RecordsConfig struct {
	Backend string      `mapstructure:"backend"`
	File    string      `mapstructure:"file"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DefaultSettings returns settings for a local run with in-memory records.
func DefaultSettings() Settings {
	return Settings{
		Records: RecordsConfig{
			Backend: RecordsMemory,
			File:    "towerkeep-records.json",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Tuning: DefaultTuning(),
	}
}

// Load overlays the optional config file at path and TOWERKEEP_* environment
// variables onto DefaultSettings. An empty path skips the file.
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env overrides only reach Unmarshal for keys viper already knows.
	v.SetDefault("seed", s.Seed)
	v.SetDefault("level", s.Level)
	v.SetDefault("records.backend", s.Records.Backend)
	v.SetDefault("records.file", s.Records.File)
	v.SetDefault("records.redis.addr", s.Records.Redis.Addr)
	v.SetDefault("records.redis.password", s.Records.Redis.Password)
	v.SetDefault("records.redis.db", s.Records.Redis.DB)
	if err := setTuningDefaults(v, s.Tuning); err != nil {
		return Settings{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the records backend and the tuning.
func (s Settings) Validate() error {
	switch s.Records.Backend {
	case RecordsMemory, RecordsFile, RecordsRedis:
	default:
		return fmt.Errorf("unknown records backend %q", s.Records.Backend)
	}
	return s.Tuning.Validate()
}

// setTuningDefaults registers every tuning leaf as a viper default so that
// TOWERKEEP_TUNING_* variables reach Unmarshal.
func setTuningDefaults(v *viper.Viper, t Tuning) error {
	tree := map[string]any{}
	if err := mapstructure.Decode(t, &tree); err != nil {
		return fmt.Errorf("flatten tuning: %w", err)
	}
	setLeafDefaults(v, "tuning", tree)
	return nil
}

func setLeafDefaults(v *viper.Viper, prefix string, tree map[string]any) {
	for key, val := range tree {
		path := prefix + "." + key
		if sub, ok := val.(map[string]any); ok {
			setLeafDefaults(v, path, sub)
			continue
		}
		v.SetDefault(path, val)
	}
}
