package archetypes

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Effect,
		components.Water,
		components.Sprite,
		components.Controls,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Elevator = newArchetype(
		tags.Elevator,
		components.Object,
		components.Elevator,
	)
	Shot = newArchetype(
		tags.Shot,
		components.Shot,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	SoundQueue = newArchetype(
		components.SoundQueue,
	)
	BonusSpawner = newArchetype(
		components.BonusSpawner,
	)
	MessageQueue = newArchetype(
		components.MessageQueue,
	)
	FeedbackQueue = newArchetype(
		components.FeedbackQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
