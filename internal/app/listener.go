package app

import (
	"github.com/sirupsen/logrus"

	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
)

// poolObserveInterval throttles the enemy pool debug line.
const poolObserveInterval = 1000.0

// GameEventListener logs gameplay milestones and keeps the run statistics.
type GameEventListener struct {
	log   *logrus.Entry
	stats RunStats

	// spawnedAt holds the spawn time of every living enemy.
	spawnedAt map[entity.Handle]float64

	observed       bool
	lastObservedAt float64
}

func NewGameEventListener(log *logrus.Entry) *GameEventListener {
	return &GameEventListener{
		log:       log,
		spawnedAt: make(map[entity.Handle]float64),
	}
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		l.stats.Spawned++
		if d, ok := e.Data.(event.EnemySpawnedData); ok {
			l.stats.PeakEnemies = max(l.stats.PeakEnemies, d.PoolSize)
			l.spawnedAt[d.Enemy] = e.Time
		}
	case event.EnemyKilled:
		d, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		switch d.By {
		case event.KilledByPlayer:
			l.stats.PlayerKills++
		case event.KilledByTower:
			l.stats.TowerKills++
		}
		fields := logrus.Fields{
			"enemy":      d.Enemy.Index,
			"generation": d.Enemy.Generation,
			"by":         d.By,
			"tower_heal": d.TowerHeal,
		}
		if at, ok := l.spawnedAt[d.Enemy]; ok {
			delete(l.spawnedAt, d.Enemy)
			life := int(e.Time - at)
			l.stats.LongestEnemyLifeMs = max(l.stats.LongestEnemyLifeMs, life)
			fields["life_ms"] = life
		}
		l.log.WithFields(fields).Debug("enemy killed")
	case event.PlayerDamaged:
		if d, ok := e.Data.(event.DamageData); ok {
			l.stats.PlayerDamage += d.Amount
		}
	case event.PlayerHealed:
		if d, ok := e.Data.(event.DamageData); ok {
			l.stats.PlayerHealed += d.Amount
		}
	case event.TowerDamaged:
		if d, ok := e.Data.(event.DamageData); ok {
			l.stats.TowerDamage += d.Amount
		}
	case event.TowerDestroyed:
		l.stats.TowerDestroyedAt = int(e.Time)
		l.log.WithField("at", e.Time).Info("tower destroyed")
	case event.ProjectileFired:
		l.stats.ShotsFired++
	case event.SpawnSourceOpened:
		l.stats.SourcesOpened++
		if d, ok := e.Data.(event.SpawnSourceOpenedData); ok {
			l.log.WithFields(logrus.Fields{
				"x": d.Position.X,
				"y": d.Position.Y,
			}).Info("spawn source opened")
		}
	case event.PlayerDied:
		if d, ok := e.Data.(event.PlayerDiedData); ok {
			l.log.WithFields(logrus.Fields{
				"kills":       d.Kills,
				"duration_ms": int64(d.DurationMs),
			}).Info("player died")
		}
	}
}

// ObservePool logs the enemy pool size at most once per second.
func (l *GameEventListener) ObservePool(now float64, pool *entity.EnemyPool) {
	if l.observed && now-l.lastObservedAt < poolObserveInterval {
		return
	}
	l.observed = true
	l.lastObservedAt = now
	l.log.WithFields(logrus.Fields{
		"pool":  pool.Size(),
		"alive": pool.AliveCount(),
	}).Debug("enemy pool")
}

func (l *GameEventListener) Stats() RunStats {
	return l.stats
}
