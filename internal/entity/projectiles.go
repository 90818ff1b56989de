package entity

import (
	"go-tower-keep/internal/component"
	"go-tower-keep/pkg/geom"
)

// ProjectilePool recycles tower shots. Slots are never removed.
type ProjectilePool struct {
	slots []component.Projectile
}

func NewProjectilePool() *ProjectilePool {
	return &ProjectilePool{}
}

// Fire activates the first inactive slot, or appends one, at pos aimed along
// direction. It returns the slot index.
func (p *ProjectilePool) Fire(pos, direction geom.Vector2) int {
	for i := range p.slots {
		if !p.slots[i].Active {
			p.slots[i] = component.Projectile{Position: pos, Direction: direction, Active: true}
			return i
		}
	}
	p.slots = append(p.slots, component.Projectile{Position: pos, Direction: direction, Active: true})
	return len(p.slots) - 1
}

func (p *ProjectilePool) Size() int { return len(p.slots) }

func (p *ProjectilePool) At(i int) *component.Projectile { return &p.slots[i] }

// Active returns pointers to the active slots in index order.
func (p *ProjectilePool) Active() []*component.Projectile {
	var out []*component.Projectile
	for i := range p.slots {
		if p.slots[i].Active {
			out = append(out, &p.slots[i])
		}
	}
	return out
}
