package systems

import (
	"log"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartRound puts the player back in the game at x, y with a fresh body,
// the given weapon and a short spawn invulnerability.
func StartRound(e *ecs.ECS, entry *donburi.Entry, weapon components.Weapon, ammo int, x, y float64) {
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	sprite := components.Sprite.Get(entry)

	p.Lifecycle = components.Alive
	p.Flags = 0
	p.Weapon = weapon
	if weapon != nil {
		p.Flags = components.FlagHasGun
		sprite.Gun = weapon.MakeSprite()
	} else {
		sprite.Gun = components.GunSprite{}
	}
	p.Orientation = components.Left
	if random(e).Intn(2) == 1 {
		p.Orientation = components.Right
	}
	p.InGame = true
	p.Life = cfg.Player.MaxLife
	p.Air = cfg.Player.MaxAir
	p.Ammo = ammo
	p.TimeToReload = 0
	if weapon != nil && weapon.Chargeable() {
		p.TimeToReload = ReloadInterval(entry)
	}
	p.TempSkinTime = 0
	p.RoundKills = 0
	p.RoundTime = 0
	p.TimeSinceHit = 0
	p.TimeStuckInWall = 0
	p.BodyAlpha = 1
	p.Alpha = 1
	p.DamagedBy = nil

	*phys = components.PhysicsData{}
	*components.Water.Get(entry) = components.WaterData{}
	updateDimensions(entry)
	placeBody(entry, x, y)

	// Reset the slot so the spawn invulnerability never stacks on a
	// leftover one.
	*components.Effect.Get(entry) = components.EffectData{}
	SetEffect(e, entry, components.EffectInvulnerability, cfg.Round.StartInvulnerability)

	sprite.IndicatorTime = cfg.Player.IndicatorTime
	sprite.Clip = nil
	sprite.SetAnimation(cfg.AnimStand)

	if p.Person != nil {
		p.Person.AddGames(1)
	}
}

// EndRound books the round time into the profile.
func EndRound(entry *donburi.Entry) {
	p := components.Player.Get(entry)
	if p.Person == nil {
		return
	}
	p.Person.AddTotalGameTime(int(p.RoundTime))
	if p.IsAlive() {
		p.Person.AddTimeAlive(int(p.RoundTime))
	}
}

// MakeGhost turns a dead player into a spectator that can fly around but
// takes no part in combat.
func MakeGhost(entry *donburi.Entry) bool {
	p := components.Player.Get(entry)
	if !p.IsDead() || p.IsGhost() {
		return false
	}
	p.Flags.Set(components.FlagGhost)
	p.Flags.Clear(components.FlagLying | components.FlagHasGun)
	p.BodyAlpha = cfg.Round.GhostAlpha
	p.InGame = false
	updateDimensions(entry)
	return true
}

// UseTemporarySkin slows the player down for a random while.
func UseTemporarySkin(e *ecs.ECS, entry *donburi.Entry) {
	p := components.Player.Get(entry)
	d := cfg.Player.TempSkinMin
	if cfg.Player.TempSkinRandom > 0 {
		d += float64(random(e).Intn(cfg.Player.TempSkinRandom))
	}
	p.TempSkinTime = d
	PostMessage(e, entry, "Temporary skin for %d seconds", int(d))
}

func placeBody(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry).Object
	obj.X, obj.Y = x, y
	obj.Update()
	updateColliderFacts(entry)
}

// checkStuck is the wall watchdog: a body left inside solid geometry for
// too long is moved to the first starting position.
func checkStuck(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	p := components.Player.Get(entry)
	if !components.Physics.Get(entry).InWall {
		p.TimeStuckInWall = 0
		return
	}
	p.TimeStuckInWall += dt
	if p.TimeStuckInWall > cfg.Player.StuckTimeout {
		Unstuck(e, entry)
	}
}

// Unstuck moves the player to the first starting position.
func Unstuck(e *ecs.ECS, entry *donburi.Entry) {
	p := components.Player.Get(entry)
	p.TimeStuckInWall = 0
	level := GetLevel(e)
	if level == nil || len(level.StartingPositions()) == 0 {
		return
	}
	start := level.StartingPositions()[0]
	log.Printf("[player] player %d stuck in a wall, moving to %.0f,%.0f", p.Index, start.X, start.Y)

	phys := components.Physics.Get(entry)
	phys.SpeedX, phys.SpeedY, phys.AccelY = 0, 0, 0
	phys.External = components.Vector{}
	placeBody(entry, start.X, start.Y)
}
