package factory

import (
	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerOptions describes who controls a new player.
type PlayerOptions struct {
	// Index identifies the player in scores and network state. Arena.AddPlayer
	// picks the next free one when it is negative.
	Index    int
	Person   *profile.Person
	Controls *input.PlayerControls
	// Listener may be nil to accept all damage and kills.
	Listener components.EventListener
}

// CreatePlayer spawns a standing, unarmed player at x, y. It is not in
// the game until a round starts.
func CreatePlayer(ecs *ecs.ECS, x, y float64, opts PlayerOptions) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := cfg.Player.Width * cfg.BlockSize
	h := cfg.Player.Height * cfg.BlockSize
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, player, obj)

	person := opts.Person
	if person == nil {
		person = profile.NewPerson("")
	}
	components.Player.SetValue(player, components.PlayerData{
		Index:       opts.Index,
		Person:      person,
		Listener:    opts.Listener,
		Lifecycle:   components.Alive,
		Orientation: components.Right,
		Life:        cfg.Player.MaxLife,
		Air:         cfg.Player.MaxAir,
		BodyAlpha:   1,
		Alpha:       1,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Width:  w,
		Height: h,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Orientation: components.Right,
		Visible:     true,
		Alpha:       1,
		Speed:       1,
	})
	components.Sprite.Get(player).SetAnimation(cfg.AnimStand)
	components.Controls.SetValue(player, components.ControlsData{
		Controls: opts.Controls,
	})

	return player
}
