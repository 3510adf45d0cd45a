package factory

import (
	"log"

	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel turns parsed level data into the level singleton, its walls
// and its elevators.
func CreateLevel(ecs *ecs.ECS, data *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	size := data.TileSize
	cell := int(size)
	pw, ph := float64(data.Width)*size, float64(data.Height)*size

	levelData := components.LevelData{
		Space:    resolv.NewSpace(int(pw), int(ph), cell, cell),
		Width:    data.Width,
		Height:   data.Height,
		TileSize: size,
		Walls:    make([]bool, len(data.Walls)),
		Water:    make([]components.WaterKind, len(data.Walls)),
	}
	copy(levelData.Walls, data.Walls)
	for i, name := range data.Water {
		if i < len(levelData.Water) {
			levelData.Water[i] = components.ParseWaterKind(name)
		}
	}
	for _, s := range data.Spawns {
		levelData.Starts = append(levelData.Starts, components.Vector{X: s.X, Y: s.Y})
	}
	components.Level.SetValue(level, levelData)

	walls := 0
	for ty := 0; ty < data.Height; ty++ {
		for tx := 0; tx < data.Width; tx++ {
			if data.Walls[data.TileIndex(tx, ty)] {
				CreateWall(ecs, float64(tx)*size, float64(ty)*size, size, size)
				walls++
			}
		}
	}

	for _, path := range data.Elevators {
		CreateElevator(ecs, path)
	}

	log.Printf("[level] created %dx%d level: %d walls, %d elevators, %d starts",
		data.Width, data.Height, walls, len(data.Elevators), len(levelData.Starts))
	return level
}
