// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go-tower-keep/pkg/logger"
)

// LoadLevel reads a level file. Missing sprite entries are filled from
// DefaultSprites so level files only list what they change.
func LoadLevel(path string) (LevelDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}

	level, err := ParseLevel(file)
	if err != nil {
		return LevelDefinition{}, err
	}

	logger.Component("defs").WithField("level", level.Name).
		Debugf("Loaded level with %d spawns, %d scheduled, %d walls", len(level.Spawns), len(level.Scheduled), len(level.Walls))
	return level, nil
}

// ParseLevel decodes a level from JSON.
func ParseLevel(data []byte) (LevelDefinition, error) {
	var level LevelDefinition
	if err := json.Unmarshal(data, &level); err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}

	sprites := DefaultSprites()
	for k, v := range level.Sprites {
		sprites[k] = v
	}
	level.Sprites = sprites

	if err := level.Validate(); err != nil {
		return LevelDefinition{}, err
	}
	return level, nil
}

// LoadOrDefault loads path, or returns DefaultLevel for an empty path.
func LoadOrDefault(path string) (LevelDefinition, error) {
	if path == "" {
		return DefaultLevel(), nil
	}
	return LoadLevel(path)
}
