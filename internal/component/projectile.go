// internal/component/projectile.go
package component

import "go-tower-keep/pkg/geom"

// Projectile is a tower shot. Direction is the aim vector captured at fire
// time and normalized on use. Inactive slots are recycled.
type Projectile struct {
	Position  geom.Vector2
	Direction geom.Vector2
	Active    bool
}
