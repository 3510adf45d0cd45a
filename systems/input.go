package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/input"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls samples every player's control sources for this frame.
func UpdateControls(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		c := components.Controls.Get(entry)
		c.State = input.Sample(c.Controls)
	})
}
