package systems

import (
	"math/rand"

	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the clock singleton, seeding its RNG from the
// round config on first use.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
		components.Clock.SetValue(entry, components.ClockData{
			Rand: rand.New(rand.NewSource(cfg.Round.Seed)),
		})
	}
	return components.Clock.Get(entry)
}

// Advance moves the clock forward one frame.
func Advance(e *ecs.ECS, dt float64) {
	c := GetOrCreateClock(e)
	c.DT = dt
	c.Time += dt
	c.Frame++
}

func deltaTime(e *ecs.ECS) float64 {
	return GetOrCreateClock(e).DT
}

func random(e *ecs.ECS) *rand.Rand {
	return GetOrCreateClock(e).Rand
}

// GetLevel returns the loaded level, or nil before one is created.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// PlaySFX queues a sound for the host to play.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	entry, ok := components.SoundQueue.First(e.World)
	if !ok {
		entry = archetypes.SoundQueue.Spawn(e)
	}
	q := components.SoundQueue.Get(entry)
	q.PendingSFX = append(q.PendingSFX, sound)
}

// DrainSounds returns and clears the queued sounds.
func DrainSounds(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.SoundQueue.First(e.World)
	if !ok {
		return nil
	}
	q := components.SoundQueue.Get(entry)
	out := q.PendingSFX
	q.PendingSFX = nil
	return out
}
