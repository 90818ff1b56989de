package records

import (
	"fmt"

	"go-tower-keep/internal/config"
)

// Open builds the store selected by cfg. The returned close func releases
// any connection the store holds.
func Open(cfg config.RecordsConfig) (Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.RecordsMemory, "":
		return NewMemoryStore(), noop, nil
	case config.RecordsFile:
		return NewFileStore(cfg.File), noop, nil
	case config.RecordsRedis:
		client, err := DialRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewRedisStore(&RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		return store, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown records backend %q", cfg.Backend)
	}
}
