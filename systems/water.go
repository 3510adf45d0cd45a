package systems

import (
	"math"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func drainFactor(kind components.WaterKind) float64 {
	switch kind {
	case components.WaterRed:
		return cfg.Water.RedDrain
	case components.WaterGreen:
		return cfg.Water.GreenDrain
	case components.WaterBlue:
		return cfg.Water.BlueDrain
	}
	return 0
}

// IsUnderWater reports whether the head was submerged at the last check.
func IsUnderWater(entry *donburi.Entry) bool {
	return components.Water.Get(entry).Head != components.WaterNone
}

// checkWater samples the level at head and feet height and updates air.
func checkWater(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	w := components.Water.Get(entry)
	level := GetLevel(e)
	if level == nil {
		*w = components.WaterData{}
		return
	}

	obj := components.Object.Get(entry).Object
	x := obj.X + obj.W/2
	bottom := obj.Y + obj.H
	head := level.WaterAt(x, bottom-obj.H*cfg.Player.HeadFraction)

	if head != components.WaterNone {
		w.Head = head
		w.Feet = head
		if !effectRuleOf(entry).Snorkel {
			AirHit(e, entry, dt*cfg.Water.AirDrainRate*drainFactor(head))
		}
		return
	}

	w.Head = components.WaterNone
	AirHit(e, entry, -cfg.Water.AirRegenFactor*cfg.Water.AirDrainRate*dt)

	feet := level.WaterAt(x, bottom-obj.H*cfg.Player.FeetFraction)
	if feet != components.WaterNone && w.Feet == components.WaterNone {
		PlaySFX(e, cfg.SoundSplash)
	}
	w.Feet = feet
}

// AirHit drains air, or refills it for negative amounts. Once the air is
// gone the drain is dealt as environmental damage.
func AirHit(e *ecs.ECS, entry *donburi.Entry, amount float64) {
	p := components.Player.Get(entry)
	p.Air = math.Max(0, math.Min(p.Air-amount, cfg.Player.MaxAir))
	if p.Air == 0 && amount > 0 && Hit(e, entry, amount) {
		PlaySFX(e, cfg.SoundDrowned)
	}
}
