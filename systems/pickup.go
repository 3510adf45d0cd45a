package systems

import (
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pickupsTouching lists the pickups overlapping the player's box.
func pickupsTouching(entry *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(entry).Object
	b := boxOf(obj)
	var out []*donburi.Entry
	for _, o := range nearby(obj, 0, 0, tags.ResolvPickup) {
		pe, ok := o.Data.(*donburi.Entry)
		if !ok || !pe.Valid() || !overlaps(b, boxOf(o)) {
			continue
		}
		out = append(out, pe)
	}
	return out
}

// CheckBonus consumes the first bonus the player touches.
func CheckBonus(e *ecs.ECS, entry *donburi.Entry) {
	for _, pe := range pickupsTouching(entry) {
		pk := components.Pickup.Get(pe)
		if pk.Kind == components.PickupWeapon {
			continue
		}
		applyBonus(e, entry, *pk)
		factory.Destroy(e, pe)
		PlaySFX(e, cfg.SoundPickBonus)
		return
	}
}

func applyBonus(e *ecs.ECS, entry *donburi.Entry, pk components.PickupData) {
	p := components.Player.Get(entry)
	switch pk.Kind {
	case components.PickupEffect:
		SetEffect(e, entry, pk.Effect, pk.Duration)
	case components.PickupPlusLife:
		AddLife(entry, cfg.Bonus.PlusLife)
		PostMessage(e, entry, "Life +%d", int(cfg.Bonus.PlusLife))
	case components.PickupMinusLife:
		PostMessage(e, entry, "Life -%d", int(cfg.Bonus.MinusLife))
		Hit(e, entry, cfg.Bonus.MinusLife)
	case components.PickupFullLife:
		AddLife(entry, cfg.Player.MaxLife)
		PostMessage(e, entry, "Full life")
	case components.PickupBullets:
		if p.Weapon != nil {
			p.Ammo += pk.Bullets
			PostMessage(e, entry, "Bullets +%d", pk.Bullets)
		}
	case components.PickupTemporarySkin:
		UseTemporarySkin(e, entry)
	}
}

// CheckWeapon swaps in a weapon lying under the player. skip is a pickup
// that must not be taken, usually the gun just dropped.
func CheckWeapon(e *ecs.ECS, entry *donburi.Entry, skip donburi.Entity) {
	if !components.Player.Get(entry).IsAlive() {
		return
	}
	for _, pe := range pickupsTouching(entry) {
		if pe.Entity() == skip {
			continue
		}
		pk := components.Pickup.Get(pe)
		if pk.Kind != components.PickupWeapon || pk.Weapon == nil {
			continue
		}
		PickWeapon(e, entry, pk.Weapon, pk.Bullets, pk.ReloadRemaining)
		factory.Destroy(e, pe)
		return
	}
}

// AddPlayerGun leaves the carried gun on the floor where the player stands.
func AddPlayerGun(e *ecs.ECS, entry *donburi.Entry) *donburi.Entry {
	p := components.Player.Get(entry)
	if p.Weapon == nil {
		return nil
	}
	obj := components.Object.Get(entry).Object
	size := cfg.BlockSize / 2
	x := obj.X + (obj.W-size)/2
	y := obj.Y + obj.H - size
	return factory.CreatePickup(e, x, y, size, components.PickupData{
		Kind:            components.PickupWeapon,
		Weapon:          p.Weapon,
		Bullets:         p.Ammo,
		ReloadRemaining: p.TimeToReload,
	})
}

var bonusKinds = []components.PickupKind{
	components.PickupEffect,
	components.PickupEffect,
	components.PickupEffect,
	components.PickupPlusLife,
	components.PickupMinusLife,
	components.PickupFullLife,
	components.PickupBullets,
	components.PickupTemporarySkin,
}

// UpdatePickupSpawns places a random bonus on a free dry tile every
// BonusInterval seconds while fewer than MaxBonuses are out.
func UpdatePickupSpawns(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil {
		return
	}
	entry, ok := components.BonusSpawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.BonusSpawner.Get(entry)
	spawner.Cooldown -= deltaTime(e)
	if spawner.Cooldown > 0 {
		return
	}
	spawner.Cooldown = cfg.Round.BonusInterval

	bonuses := 0
	tags.Pickup.Each(e.World, func(pe *donburi.Entry) {
		if components.Pickup.Get(pe).Kind != components.PickupWeapon {
			bonuses++
		}
	})
	if bonuses >= cfg.Round.MaxBonuses {
		return
	}

	rng := random(e)
	size := cfg.BlockSize / 2
	for try := 0; try < 20; try++ {
		tx, ty := rng.Intn(level.Width), rng.Intn(level.Height)
		x := (float64(tx) + 0.25) * level.TileSize
		y := (float64(ty) + 0.5) * level.TileSize
		if level.IsWall(x, y) || level.WaterAt(x, y) != components.WaterNone || occupied(level.Space, x, y, size) {
			continue
		}
		data := components.PickupData{Kind: bonusKinds[rng.Intn(len(bonusKinds))]}
		switch data.Kind {
		case components.PickupEffect:
			data.Effect = components.EffectType(1 + rng.Intn(int(components.EffectCount)-1))
			data.Duration = cfg.Round.BonusDuration
		case components.PickupBullets:
			data.Bullets = 5 + rng.Intn(10)
		}
		factory.CreatePickup(e, x, y, size, data)
		return
	}
}

func occupied(space *resolv.Space, x, y, size float64) bool {
	b := box{x, y, size, size}
	for _, o := range space.Objects() {
		solid := o.HasTags(tags.ResolvPickup) || o.HasTags(tags.ResolvElevator)
		if solid && overlaps(b, boxOf(o)) {
			return true
		}
	}
	return false
}
