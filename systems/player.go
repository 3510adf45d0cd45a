package systems

import (
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayers(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		UpdatePlayer(e, entry)
	})
}

// UpdatePlayer runs one frame of a single player.
func UpdatePlayer(e *ecs.ECS, entry *donburi.Entry) {
	dt := deltaTime(e)
	p := components.Player.Get(entry)

	checkWater(e, entry, dt)
	if p.IsAlive() {
		CheckBonus(e, entry)
	}
	checkKeys(e, entry)
	updateDimensions(entry)
	makeMove(e, entry, dt)

	if p.IsLying() && p.HasGun() {
		SetEffect(e, entry, components.EffectNone, 0)
		DropWeapon(e, entry)
	}

	updateReload(entry, dt)
	tickEffect(e, entry, dt)

	if p.Life > 1 && p.Life < cfg.Player.MaxLife && p.TimeSinceHit > cfg.Player.HPRegenDelay {
		AddLife(entry, dt*float64(p.RoundKills)*cfg.Player.HPRegenFactor)
	}

	if p.TempSkinTime > 0 {
		p.TempSkinTime -= dt
		if p.TempSkinTime <= 0 {
			p.TempSkinTime = 0
		}
	}

	sprite := components.Sprite.Get(entry)
	if sprite.IndicatorTime > 0 {
		sprite.IndicatorTime = max(0, sprite.IndicatorTime-dt)
	}

	p.TimeSinceHit += dt
	if p.InGame {
		p.RoundTime += dt
	}
	checkStuck(e, entry, dt)
}

// ValidatePlayer checks the player's invariants against the live config.
func ValidatePlayer(entry *donburi.Entry) error {
	p := components.Player.Get(entry)
	return p.Validate(cfg.Player.MaxLife, cfg.Player.MaxAir, effectRuleOf(entry).InfiniteAmmo)
}
