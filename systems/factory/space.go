package factory

import (
	"github.com/automoto/duelcore/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// addToSpace links obj to its entry and registers it with the level space,
// if one exists.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if space := components.Level.Get(levelEntry).Space; space != nil {
			space.Add(obj)
		}
	}
}

// Destroy removes an entry and its collision object from the world.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	ecs.World.Remove(entry.Entity())
}
