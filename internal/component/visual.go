// internal/component/visual.go
package component

import "go-tower-keep/internal/clock"

// DamageFlash marks the moment an entity was last hurt so renderers can tint it.
type DamageFlash struct {
	At clock.Stamp
}

func (f *DamageFlash) Trigger(now float64) { f.At.Mark(now) }

// Active reports whether the flash is still visible.
func (f DamageFlash) Active(now, duration float64) bool {
	return f.At.IsSet() && now-f.At.Time() < duration
}
