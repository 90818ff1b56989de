// internal/system/utils.go
package system

import (
	"go-tower-keep/internal/entity"
	"go-tower-keep/pkg/geom"
)

// closestEnemy finds the living enemy nearest to from. Ties go to the lower
// slot index.
func closestEnemy(pool *entity.EnemyPool, from geom.Vector2) (int, geom.Vector2, bool) {
	bestIdx, bestDist := -1, 0.0
	var bestPos geom.Vector2
	for i, e := range pool.Alive() {
		d := e.Position.DistanceTo(from)
		if bestIdx < 0 || d < bestDist {
			bestIdx, bestDist, bestPos = i, d, e.Position
		}
	}
	return bestIdx, bestPos, bestIdx >= 0
}
