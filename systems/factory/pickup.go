package factory

import (
	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePickup places a weapon or bonus on the map with its top left at x, y.
func CreatePickup(ecs *ecs.ECS, x, y, size float64, data components.PickupData) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvPickup)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	addToSpace(ecs, pickup, obj)
	components.Pickup.SetValue(pickup, data)

	return pickup
}
