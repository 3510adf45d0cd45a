package systems

import (
	"math"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Speed is the displacement multiplier applied to the body this frame.
func Speed(entry *donburi.Entry) float64 {
	p := components.Player.Get(entry)
	rule := effectRuleOf(entry)
	spd := 1.0

	if IsUnderWater(entry) && !rule.Snorkel {
		spd *= cfg.Player.UnderwaterFactor
	}
	if p.TempSkinTime > 0 {
		spd *= cfg.Player.TemporarySkinSlow
	}

	switch {
	case rule.SpeedFactor > 0:
		spd *= rule.SpeedFactor
	case !p.HasGun():
		spd *= cfg.Player.UnarmedFactor
	default:
		spd *= cfg.Player.ArmedBase - p.Life/cfg.Player.ArmedLifeDivisor
	}
	return spd
}

func moveHorizontal(entry *donburi.Entry, dt float64) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	maxSpeed := cfg.Player.MaxSpeed * cfg.BlockSize
	// Twice the friction so the net pull matches it.
	accel := cfg.Player.Acceleration * cfg.BlockSize * dt

	if p.Flags.Has(components.FlagMoveLeft) {
		if phys.SpeedX > -maxSpeed {
			phys.SpeedX = math.Max(phys.SpeedX-accel, -maxSpeed)
		}
		if phys.SpeedX < 0 {
			p.Orientation = components.Left
		}
	}
	if p.Flags.Has(components.FlagMoveRight) {
		if phys.SpeedX < maxSpeed {
			phys.SpeedX = math.Min(phys.SpeedX+accel, maxSpeed)
		}
		if phys.SpeedX > 0 {
			p.Orientation = components.Right
		}
	}
}

func moveVertical(e *ecs.ECS, entry *donburi.Entry) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	jump := cfg.Player.JumpVelocity * cfg.BlockSize

	if p.Flags.Has(components.FlagMoveUp) && !phys.Rising() && phys.OnHardSurface() {
		if !phys.UnderHardSurface {
			phys.AccelY -= jump
			PlaySFX(e, cfg.SoundJump)
		}
		// Leaving an elevator keeps its momentum
		if phys.OnElevator != nil {
			phys.AccelY += components.Elevator.Get(phys.OnElevator).Velocity.Y
		}
	}

	superJump := effectRuleOf(entry).SuperDoubleJump
	armed := p.Flags.HasAll(components.FlagDoubleJumpDebounce | components.FlagDoubleJumpReset)
	if p.Flags.Has(components.FlagDoubleJump) || (phys.Rising() && armed && superJump) {
		if phys.Rising() && superJump {
			phys.AccelY -= jump
		} else {
			phys.SpeedY = -jump
		}
		p.Flags.Clear(components.FlagDoubleJumpReset | components.FlagDoubleJumpDebounce)
	}
}

// makeMove runs the movement pipeline for one frame.
func makeMove(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	p := components.Player.Get(entry)
	speed := Speed(entry)

	moveVertical(e, entry)
	moveHorizontal(entry, dt)
	collideWithElevators(entry, dt, speed)
	collideWithLevel(e, entry, dt, speed)

	if sprite := components.Sprite.Get(entry); p.IsPicking() && sprite.Anim == cfg.AnimPick && sprite.Finished() {
		p.Flags.Clear(components.FlagPick)
		p.Flags.Set(components.FlagHasGun)
	}
	if p.IsKneeling() {
		p.Flags.Clear(components.FlagMoveSides)
	}
}

// updateDimensions resizes the collision box for the current posture,
// keeping the feet in place.
func updateDimensions(entry *donburi.Entry) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	height := cfg.Player.Height
	switch {
	case p.IsKneeling():
		height = cfg.Player.KneelHeight
	case p.IsLying():
		height = cfg.Player.LyingHeight
	}
	w := cfg.Player.Width * cfg.BlockSize
	h := height * cfg.BlockSize
	phys.Width, phys.Height = w, h
	if obj.W == w && obj.H == h {
		return
	}

	obj.Y += obj.H - h
	obj.W, obj.H = w, h
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Update()
}
