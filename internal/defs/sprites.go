// internal/defs/sprites.go
package defs

import (
	"errors"
	"fmt"
	"strings"

	"go-tower-keep/pkg/geom"
)

// ErrUnknownSprite is returned for a key that has neither an exact nor a
// prefix entry.
var ErrUnknownSprite = errors.New("unknown sprite")

// Sprite keys known to the simulation. Keys ending in "_" are prefixes shared
// by numbered instances, e.g. "enemy_12" resolves to "enemy_".
const (
	SpritePlayer     = "player"
	SpriteEnemy      = "enemy_"
	SpriteSlash      = "slash"
	SpriteWall       = "wall_"
	SpriteTowerDown  = "tower-down"
	SpriteTowerUp    = "tower-up"
	SpriteProjectile = "projectile"
)

// SpriteLibrary maps sprite keys to their size in world units. The core only
// needs the sizes for hurt-boxes and hit-boxes.
type SpriteLibrary struct {
	sizes map[string]geom.Vector2
}

// NewSpriteLibrary copies sizes into a new library.
func NewSpriteLibrary(sizes map[string]geom.Vector2) *SpriteLibrary {
	lib := &SpriteLibrary{sizes: make(map[string]geom.Vector2, len(sizes))}
	for k, v := range sizes {
		lib.sizes[k] = v
	}
	return lib
}

// DefaultSprites returns the stock sprite sizes.
func DefaultSprites() map[string]geom.Vector2 {
	return map[string]geom.Vector2{
		SpritePlayer:     geom.Vec(16, 16),
		SpriteEnemy:      geom.Vec(16, 16),
		SpriteSlash:      geom.Vec(16, 16),
		SpriteWall:       geom.Vec(8, 8),
		SpriteTowerDown:  geom.Vec(32, 24),
		SpriteTowerUp:    geom.Vec(32, 24),
		SpriteProjectile: geom.Vec(2, 2),
	}
}

// Size looks key up, falling back to its prefix up to and including the
// first underscore.
func (l *SpriteLibrary) Size(key string) (geom.Vector2, error) {
	if size, ok := l.sizes[key]; ok {
		return size, nil
	}
	if i := strings.IndexByte(key, '_'); i >= 0 {
		if size, ok := l.sizes[key[:i+1]]; ok {
			return size, nil
		}
	}
	return geom.Vector2{}, fmt.Errorf("%w: %q", ErrUnknownSprite, key)
}

// MustSize is Size for keys that are known to exist; it panics otherwise.
func (l *SpriteLibrary) MustSize(key string) geom.Vector2 {
	size, err := l.Size(key)
	if err != nil {
		panic(err)
	}
	return size
}

// Keys lists the registered keys.
func (l *SpriteLibrary) Keys() []string {
	keys := make([]string, 0, len(l.sizes))
	for k := range l.sizes {
		keys = append(keys, k)
	}
	return keys
}
