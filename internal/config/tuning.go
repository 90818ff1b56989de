package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned by Tuning.Validate.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Times are milliseconds, speeds are
// world units per millisecond.
type Tuning struct {
	Player     PlayerTuning     `mapstructure:"player"`
	Enemy      EnemyTuning      `mapstructure:"enemy"`
	Spawn      SpawnTuning      `mapstructure:"spawn"`
	Tower      TowerTuning      `mapstructure:"tower"`
	Attack     AttackTuning     `mapstructure:"attack"`
	Animation  AnimationTuning  `mapstructure:"animation"`
	KillReward KillRewardTuning `mapstructure:"kill_reward"`
}

type PlayerTuning struct {
	MaxHP           int     `mapstructure:"max_hp"`
	Speed           float64 `mapstructure:"speed"`
	AutohealTimeout float64 `mapstructure:"autoheal_timeout"`
	HealInterval    float64 `mapstructure:"heal_interval"`
	HealAmount      int     `mapstructure:"heal_amount"`
	AttackDamage    int     `mapstructure:"attack_damage"`
}

type EnemyTuning struct {
	MaxHP       int     `mapstructure:"max_hp"`
	Speed       float64 `mapstructure:"speed"`
	AggroRadius float64 `mapstructure:"aggro_radius"`
	// EnragedSpeedMultiplier applies once the tower has fallen.
	EnragedSpeedMultiplier float64 `mapstructure:"enraged_speed_multiplier"`
	AttackTimeout          float64 `mapstructure:"attack_timeout"`
	DamageToPlayer         int     `mapstructure:"damage_to_player"`
	DamageToTower          int     `mapstructure:"damage_to_tower"`
}

type SpawnTuning struct {
	IntervalMin    float64 `mapstructure:"interval_min"`
	IntervalSpread float64 `mapstructure:"interval_spread"`
}

type TowerTuning struct {
	MaxHP            int     `mapstructure:"max_hp"`
	ProjectileSpeed  float64 `mapstructure:"projectile_speed"`
	ProjectileDamage int     `mapstructure:"projectile_damage"`
	FireInterval     float64 `mapstructure:"fire_interval"`
	FireVariance     float64 `mapstructure:"fire_variance"`
	// DamageScalesWithHP multiplies projectile damage by the tower's hp fraction.
	DamageScalesWithHP bool `mapstructure:"damage_scales_with_hp"`
}

type AttackTuning struct {
	AnimDuration float64 `mapstructure:"anim_duration"`
}

type AnimationTuning struct {
	EnemyFrameInterval float64 `mapstructure:"enemy_frame_interval"`
	EnemyFrames        int     `mapstructure:"enemy_frames"`
}

// KillRewardTuning is the tower heal granted when the player kills an enemy:
// Min plus a random amount in [0, Spread).
type KillRewardTuning struct {
	TowerHealMin    int `mapstructure:"tower_heal_min"`
	TowerHealSpread int `mapstructure:"tower_heal_spread"`
}

// DefaultTuning returns the stock balance.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			MaxHP:           100,
			Speed:           0.06,
			AutohealTimeout: 5000,
			HealInterval:    500,
			HealAmount:      3,
			AttackDamage:    20,
		},
		Enemy: EnemyTuning{
			MaxHP:                  100,
			Speed:                  0.015,
			AggroRadius:            50,
			EnragedSpeedMultiplier: 1.4,
			AttackTimeout:          600,
			DamageToPlayer:         4,
			DamageToTower:          1,
		},
		Spawn: SpawnTuning{
			IntervalMin:    2000,
			IntervalSpread: 1000,
		},
		Tower: TowerTuning{
			MaxHP:              100,
			ProjectileSpeed:    0.06,
			ProjectileDamage:   50,
			FireInterval:       2000,
			FireVariance:       300,
			DamageScalesWithHP: true,
		},
		Attack: AttackTuning{
			AnimDuration: 200,
		},
		Animation: AnimationTuning{
			EnemyFrameInterval: 200,
			EnemyFrames:        2,
		},
		KillReward: KillRewardTuning{
			TowerHealMin:    5,
			TowerHealSpread: 6,
		},
	}
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Player.MaxHP <= 0 || t.Enemy.MaxHP <= 0 || t.Tower.MaxHP <= 0:
		return fmt.Errorf("%w: max hp must be positive", ErrInvalidTuning)
	case t.Player.Speed < 0 || t.Enemy.Speed < 0 || t.Tower.ProjectileSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidTuning)
	case t.Spawn.IntervalMin < 0 || t.Spawn.IntervalSpread < 0:
		return fmt.Errorf("%w: spawn interval must not be negative", ErrInvalidTuning)
	case t.Tower.FireVariance < 0 || t.Tower.FireVariance > t.Tower.FireInterval:
		return fmt.Errorf("%w: fire variance must be within [0, fire_interval]", ErrInvalidTuning)
	case t.Attack.AnimDuration <= 0:
		return fmt.Errorf("%w: attack anim duration must be positive", ErrInvalidTuning)
	case t.Animation.EnemyFrames <= 0:
		return fmt.Errorf("%w: enemy frames must be positive", ErrInvalidTuning)
	case t.KillReward.TowerHealSpread < 0:
		return fmt.Errorf("%w: kill reward spread must not be negative", ErrInvalidTuning)
	}
	return nil
}
