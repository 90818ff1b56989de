// internal/entity/pool.go
package entity

import (
	"iter"

	"go-tower-keep/internal/component"
	"go-tower-keep/pkg/geom"
)

// Handle addresses an enemy slot. Generation tells apart successive
// occupants of the same slot.
type Handle struct {
	Index      int
	Generation uint32
}

// EnemyPool is a grow-only arena of enemy slots. Dead slots keep their data
// until the next Create reuses them.
type EnemyPool struct {
	slots []component.Enemy
}

func NewEnemyPool() *EnemyPool {
	return &EnemyPool{}
}

// Size is the number of slots, dead or alive.
func (p *EnemyPool) Size() int { return len(p.slots) }

// Create revives the first dead slot at pos, or appends a new slot when every
// slot is alive.
func (p *EnemyPool) Create(pos geom.Vector2, maxHP int) Handle {
	for i := range p.slots {
		if p.slots[i].IsDead() {
			p.slots[i].Reset(pos, maxHP)
			return p.HandleOf(i)
		}
	}
	p.slots = append(p.slots, component.Enemy{
		Position: pos,
		Health:   component.NewHealth(maxHP),
	})
	return p.HandleOf(len(p.slots) - 1)
}

// At returns slot i. It panics when i is out of range.
func (p *EnemyPool) At(i int) *component.Enemy {
	return &p.slots[i]
}

// HandleOf returns the current handle of slot i.
func (p *EnemyPool) HandleOf(i int) Handle {
	return Handle{Index: i, Generation: p.slots[i].Generation}
}

// Get resolves a handle. It fails for stale handles and dead enemies.
func (p *EnemyPool) Get(h Handle) (*component.Enemy, bool) {
	if h.Index < 0 || h.Index >= len(p.slots) {
		return nil, false
	}
	e := &p.slots[h.Index]
	if e.Generation != h.Generation || e.IsDead() {
		return nil, false
	}
	return e, true
}

// Alive yields living slots in index order. Slots may be mutated while
// iterating.
func (p *EnemyPool) Alive() iter.Seq2[int, *component.Enemy] {
	return func(yield func(int, *component.Enemy) bool) {
		for i := range p.slots {
			if p.slots[i].IsDead() {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}

// AliveCount counts living slots.
func (p *EnemyPool) AliveCount() int {
	n := 0
	for range p.Alive() {
		n++
	}
	return n
}
