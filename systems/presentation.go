package systems

import (
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePresentation picks each player's clip and sprite state. It must
// run after UpdateShots so deaths from this frame's hits are shown.
func UpdatePresentation(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		Present(entry)
	})
}

// Present derives the sprite from the player's flags and collider facts.
// The only thing it changes besides the sprite is retiring the dying state
// once the dying clip has finished.
func Present(entry *donburi.Entry) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	sprite := components.Sprite.Get(entry)

	anim, speed := selectAnimation(entry, p, phys, sprite)
	sprite.SetAnimation(anim)
	sprite.Speed = speed
	sprite.Orientation = p.Orientation
	sprite.Alpha = p.BodyAlpha * p.Alpha

	sprite.Gun.Orientation = p.Orientation
	sprite.Gun.Visible = p.HasGun() && p.IsAlive() && !p.IsPicking()
	sprite.Gun.Alpha = p.Alpha
}

func selectAnimation(entry *donburi.Entry, p *components.PlayerData, phys *components.PhysicsData, sprite *components.SpriteData) (cfg.AnimID, float64) {
	sprite.Visible = true

	if !p.IsAlive() && !p.IsGhost() {
		if !p.IsLying() {
			sprite.Visible = false
			return cfg.AnimStand, 1
		}
		if p.IsDying() {
			if sprite.Anim == cfg.AnimDying && sprite.Finished() {
				p.Lifecycle = components.Dead
			}
			return cfg.AnimDying, 1
		}
		switch {
		case !phys.OnHardSurface():
			return cfg.AnimDeadFall, 1
		case sprite.Anim == cfg.AnimDeadFall:
			return cfg.AnimDeadHit, 1
		case sprite.Finished():
			return cfg.AnimDeadLying, 1
		}
		return sprite.Anim, 1
	}

	switch {
	case p.IsPicking():
		return cfg.AnimPick, 1
	case p.IsKneeling():
		return cfg.AnimDuck, 1
	case phys.OnElevator != nil:
		if !p.IsMoving() {
			return cfg.AnimStand, 1
		}
		return cfg.AnimWalk, Speed(entry)
	case !phys.OnGround:
		if phys.Rising() {
			return cfg.AnimJump, velocityScale(phys)
		}
		return cfg.AnimFall, velocityScale(phys)
	case !p.IsMoving():
		return cfg.AnimStand, 1
	}
	return cfg.AnimWalk, velocityScale(phys)
}

// velocityScale is the clip speed for a body moving at its velocity,
// where running at MaxSpeed plays at speed 1.
func velocityScale(phys *components.PhysicsData) float64 {
	return phys.Velocity().Length() / (cfg.Player.MaxSpeed * cfg.BlockSize)
}
