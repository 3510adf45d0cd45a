package factory

import (
	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateShot(ecs *ecs.ECS, x, y, w, h float64, data components.ShotData) *donburi.Entry {
	shot := archetypes.Shot.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvShot)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, shot, obj)
	components.Shot.SetValue(shot, data)

	return shot
}
