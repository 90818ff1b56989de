package component

import (
	"fmt"

	"go-tower-keep/internal/clock"
	"go-tower-keep/internal/utils"
	"go-tower-keep/pkg/geom"
)

// Health is a hit point counter clamped to [0, Max].
type Health struct {
	Value int
	Max   int
}

func NewHealth(max int) Health {
	return Health{Value: max, Max: max}
}

// Decrease subtracts n, stopping at 0.
func (h *Health) Decrease(n int) {
	h.Value -= n
	if h.Value < 0 {
		h.Value = 0
	}
}

// Increase adds n, stopping at Max.
func (h *Health) Increase(n int) {
	h.Value += n
	if h.Value > h.Max {
		h.Value = h.Max
	}
}

func (h Health) IsDead() bool { return h.Value <= 0 }

// Fraction is Value/Max, 0 for a zero Max.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Value) / float64(h.Max)
}

// ActorKind tells which table an Actor indexes.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorEnemy
)

// Actor identifies anything that can swing a weapon.
type Actor struct {
	Kind  ActorKind
	Index int
}

func PlayerActor() Actor         { return Actor{Kind: ActorPlayer} }
func EnemyActor(index int) Actor { return Actor{Kind: ActorEnemy, Index: index} }

// Key is the position table key of the actor.
func (a Actor) Key() string {
	if a.Kind == ActorPlayer {
		return "player"
	}
	return fmt.Sprintf("enemy_%d", a.Index)
}

func (a Actor) String() string { return a.Key() }

// Attack is an in-flight swing. Its presence in the attack table means the
// actor is mid-attack.
type Attack struct {
	StartedAt float64
	// Direction is a unit vector, zero when the actor aimed at itself.
	Direction geom.Vector2
	// Position is the actor position when the swing started.
	Position geom.Vector2
	// DamageProcessed is set once the swing has hurt someone.
	DamageProcessed bool
}

func (a *Attack) Elapsed(now float64) float64 {
	return now - a.StartedAt
}

// Fresh reports whether the swing started during the current tick.
func (a *Attack) Fresh(now, delta float64) bool {
	return a.StartedAt >= now-delta
}

// Alpha fades the slash from 1 to 0 over duration.
func (a *Attack) Alpha(now, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return utils.Clamp(1-a.Elapsed(now)/duration, 0, 1)
}

// Cooldown gates how often an actor may start an attack.
type Cooldown struct {
	LastAt clock.Stamp
}

// Ready reports whether timeout has passed since the last attack.
func (c Cooldown) Ready(now, timeout float64) bool {
	return c.LastAt.Expired(now, timeout)
}
