package systems

import (
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// checkKeys turns this frame's controller state into player flags.
func checkKeys(e *ecs.ECS, entry *donburi.Entry) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	state := components.Controls.Get(entry).State

	if !p.IsAlive() && !p.IsGhost() {
		return
	}

	if state.Has(cfg.ButtonStatus) {
		components.Sprite.Get(entry).IndicatorTime = cfg.Player.IndicatorTime
	}

	if p.IsPicking() {
		return
	}

	if !p.IsKneeling() {
		setFlagIf(&p.Flags, components.FlagMoveLeft, state.Has(cfg.ButtonLeft))
		setFlagIf(&p.Flags, components.FlagMoveRight, state.Has(cfg.ButtonRight))

		p.Flags.Clear(components.FlagDoubleJump)
		if state.Has(cfg.ButtonUp) {
			if !p.Flags.Has(components.FlagMoveUp) && !phys.OnHardSurface() && p.Flags.Has(components.FlagDoubleJumpReset) {
				if p.Flags.Has(components.FlagDoubleJumpDebounce) {
					p.Flags.Set(components.FlagDoubleJump)
				} else {
					p.Flags.Set(components.FlagDoubleJumpDebounce)
				}
			}
			p.Flags.Set(components.FlagMoveUp)
		} else {
			p.Flags.Clear(components.FlagMoveUp)
		}

		if phys.OnHardSurface() {
			p.Flags.Set(components.FlagDoubleJumpReset)
			p.Flags.Clear(components.FlagDoubleJumpDebounce)
		}

		if state.Has(cfg.ButtonPick) {
			dropped := DropWeapon(e, entry)
			pick(e, entry, dropped)
		}
	}

	if !p.IsGhost() {
		if state.Has(cfg.ButtonShoot) {
			Shoot(e, entry)
			p.Flags.Clear(components.FlagShootDebounce)
			p.Flags.Set(components.FlagShoot)
		} else {
			p.Flags.Set(components.FlagShootDebounce)
			if p.Flags.Has(components.FlagShoot) {
				Shoot(e, entry)
				p.Flags.Clear(components.FlagShoot)
			}
		}
	}

	p.Flags.Clear(components.FlagKnee)
	if state.Has(cfg.ButtonDown) {
		fall(entry)
	}
}

func setFlagIf(f *components.Flags, flag components.Flags, on bool) {
	if on {
		f.Set(flag)
	} else {
		f.Clear(flag)
	}
}

// fall kneels on a surface or cuts a rising jump short.
func fall(entry *donburi.Entry) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	if phys.OnHardSurface() {
		p.Flags.Set(components.FlagKnee)
	} else if phys.Rising() {
		phys.SpeedY = 0
	}
}

func pick(e *ecs.ECS, entry *donburi.Entry, dropped *donburi.Entry) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	if !phys.OnHardSurface() || p.IsMoving() {
		return
	}
	skip := donburi.Null
	if dropped != nil {
		skip = dropped.Entity()
	}
	CheckWeapon(e, entry, skip)
}
