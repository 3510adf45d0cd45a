package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck wraps a system so it only runs while not paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Create(components.Pause)
	}
	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

func IsPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).IsPaused
}

func SetPaused(e *ecs.ECS, paused bool) {
	GetOrCreatePause(e).IsPaused = paused
}
