package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances the player clips. Finished clips are seen by
// the next frame's systems.
func UpdateAnimations(e *ecs.ECS) {
	dt := deltaTime(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if sprite.Clip != nil {
			sprite.Clip.Update(dt, sprite.Speed)
		}
	})
}
