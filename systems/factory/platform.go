package factory

import (
	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateElevator builds a platform that travels its path and back.
func CreateElevator(ecs *ecs.ECS, path leveldata.ElevatorPath) *donburi.Entry {
	elevator := archetypes.Elevator.Spawn(ecs)

	obj := resolv.NewObject(path.X, path.Y, path.W, path.H, tags.ResolvElevator)
	obj.SetShape(resolv.NewRectangle(0, 0, path.W, path.H))
	addToSpace(ecs, elevator, obj)

	// The elevator follows a *gween.Sequence of progress tweens, there and back.
	d := float32(path.Duration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, d, ease.Linear),
		gween.New(1, 0, d, ease.Linear),
	)
	components.Elevator.SetValue(elevator, components.ElevatorData{
		Tween:  tw,
		Start:  components.Vector{X: path.X, Y: path.Y},
		Travel: components.Vector{X: path.DX, Y: path.DY},
	})

	return elevator
}
