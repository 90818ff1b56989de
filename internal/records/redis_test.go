package records

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"go-tower-keep/internal/config"
)

type RedisStoreTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	client *redis.Client
	store  *RedisStore
	ctx    context.Context
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	client, err := DialRedis(s.server.Addr(), "", 0)
	s.Require().NoError(err)
	s.client = client
	s.ctx = context.Background()

	store, err := NewRedisStore(&RedisConfig{Client: client})
	s.Require().NoError(err)
	s.store = store
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
}

func (s *RedisStoreTestSuite) TestNewRedisStore() {
	testCases := []struct {
		name   string
		config *RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &RedisConfig{}, errMsg: "client cannot be nil"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			store, err := NewRedisStore(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(store)
		})
	}
}

func (s *RedisStoreTestSuite) TestMissingKey() {
	v, ok, err := s.store.Get(s.ctx, config.BestDurationKey)
	s.NoError(err)
	s.False(ok)
	s.Empty(v)
}

func (s *RedisStoreTestSuite) TestSubmitWritesThrough() {
	out, err := Submit(s.ctx, s.store, Entry{DurationMs: 45678.2, Kills: 9})
	s.Require().NoError(err)
	s.True(out.NewDuration)
	s.True(out.NewKills)

	got, err := s.server.Get(config.BestDurationKey)
	s.Require().NoError(err)
	s.Equal("45678", got)
	got, err = s.server.Get(config.BestKillsKey)
	s.Require().NoError(err)
	s.Equal("9", got)
}

func (s *RedisStoreTestSuite) TestReadsExistingBest() {
	s.Require().NoError(s.server.Set(config.BestDurationKey, "100000"))
	s.Require().NoError(s.server.Set(config.BestKillsKey, "1"))

	out, err := Submit(s.ctx, s.store, Entry{DurationMs: 2000, Kills: 5})
	s.Require().NoError(err)
	s.False(out.NewDuration)
	s.True(out.NewKills)

	got, _ := s.server.Get(config.BestDurationKey)
	s.Equal("100000", got)
}

func (s *RedisStoreTestSuite) TestServerDown() {
	s.server.Close()
	_, _, err := s.store.Get(s.ctx, config.BestKillsKey)
	s.Error(err)
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestOpenRedisBackend() {
	store, closeFn, err := Open(config.RecordsConfig{
		Backend: config.RecordsRedis,
		Redis:   config.RedisConfig{Addr: s.server.Addr()},
	})
	s.Require().NoError(err)
	defer func() { s.NoError(closeFn()) }()

	s.Require().NoError(store.Set(s.ctx, config.BestKillsKey, "4"))
	got, err := s.server.Get(config.BestKillsKey)
	s.Require().NoError(err)
	s.Equal("4", got)
}
