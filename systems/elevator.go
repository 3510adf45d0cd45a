package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateElevators advances every elevator along its path. Must run BEFORE
// UpdatePlayers so riders see this frame's displacement.
func UpdateElevators(e *ecs.ECS) {
	dt := deltaTime(e)
	tags.Elevator.Each(e.World, func(entry *donburi.Entry) {
		el := components.Elevator.Get(entry)
		obj := components.Object.Get(entry)

		progress, _, done := el.Tween.Update(float32(dt))
		if done {
			el.Tween.Reset()
		}

		target := el.Start.Add(el.Travel.Scale(float64(progress)))
		el.Delta = components.Vector{X: target.X - obj.X, Y: target.Y - obj.Y}
		if dt > 0 {
			el.Velocity = el.Delta.Scale(1 / dt)
		}
		obj.X, obj.Y = target.X, target.Y
		obj.Update()
	})
}
