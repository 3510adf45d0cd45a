package systems

import (
	"math"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots presses the switches of bot-controlled players.
// Must run BEFORE UpdateControls so the presses are sampled this frame.
func UpdateBots(e *ecs.ECS) {
	dt := deltaTime(e)
	level := GetLevel(e)
	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		bot := components.Bot.Get(entry)
		if bot.Switches == nil {
			return
		}
		bot.DecisionTimer -= dt
		if bot.DecisionTimer > 0 {
			return
		}
		diff := cfg.Bot.Difficulties[bot.Difficulty]
		bot.DecisionTimer = diff.ReactionDelay
		input.Set(bot.Switches, decideBot(e, level, entry, bot, diff))
	})
}

func decideBot(e *ecs.ECS, level *components.LevelData, entry *donburi.Entry, bot *components.BotData, diff cfg.BotDifficultyConfig) input.ControllerState {
	var s input.ControllerState
	p := components.Player.Get(entry)
	phys := components.Physics.Get(entry)
	if !p.IsAlive() || p.IsPicking() {
		bot.AIState = components.BotStateIdle
		return s
	}

	me := centerOf(entry)
	target := findNearestTarget(e, entry, me)
	bot.Target = donburi.Null
	if target != nil {
		bot.Target = target.Entity()
	}
	updateBotState(bot, target, p, me, diff)

	// Releasing a held trigger fires chargeable weapons
	if bot.ShootHeld {
		bot.ShootHeld = false
		return s
	}

	var goal components.Vector
	switch bot.AIState {
	case components.BotStateIdle:
		return s
	case components.BotStateScavenge:
		weapon := nearestWeaponPickup(e, me)
		if weapon == nil {
			return s
		}
		goal = weapon.Sub(components.Vector{X: 0, Y: cfg.BlockSize / 2})
		if math.Abs(goal.X-me.X) < cfg.BlockSize/2 && phys.OnHardSurface() {
			return s.With(cfg.ButtonPick)
		}
	default:
		goal = centerOf(target)
	}

	dx := goal.X - me.X
	dy := goal.Y - me.Y

	if bot.AIState == components.BotStateRetreat {
		dx = -dx
	}

	if bot.AIState == components.BotStateAttack {
		facing := p.Orientation.Sign()*dx > 0
		if !facing {
			s = s.With(horizontal(dx))
		} else if math.Abs(dy) < diff.AimTolerance*cfg.BlockSize && hasLineOfSight(level, me, goal) {
			s = s.With(cfg.ButtonShoot)
			bot.ShootHeld = p.Weapon != nil && p.Weapon.Chargeable()
		} else {
			s = s.With(horizontal(dx))
		}
	} else if math.Abs(dx) > cfg.BlockSize/2 {
		s = s.With(horizontal(dx))
	}

	// Jump when the goal is above or the way ahead is blocked
	blocked := p.IsMoving() && phys.SpeedX == 0
	if phys.OnHardSurface() && (dy < -cfg.BlockSize || blocked) {
		s = s.With(cfg.ButtonUp)
	}
	return s
}

func horizontal(dx float64) cfg.ButtonID {
	if dx < 0 {
		return cfg.ButtonLeft
	}
	return cfg.ButtonRight
}

func updateBotState(bot *components.BotData, target *donburi.Entry, p *components.PlayerData, me components.Vector, diff cfg.BotDifficultyConfig) {
	switch {
	case !p.HasGun() || p.Ammo <= 0:
		bot.AIState = components.BotStateScavenge
	case target == nil:
		bot.AIState = components.BotStateIdle
	case p.Life < diff.RetreatThreshold*cfg.Player.MaxLife:
		bot.AIState = components.BotStateRetreat
	case centerOf(target).Sub(me).Length() < diff.AttackRange*cfg.BlockSize:
		bot.AIState = components.BotStateAttack
	default:
		bot.AIState = components.BotStateChase
	}
}

// findNearestTarget returns the closest living opponent in the game.
func findNearestTarget(e *ecs.ECS, self *donburi.Entry, me components.Vector) *donburi.Entry {
	var nearest *donburi.Entry
	nearestDist := math.MaxFloat64
	tags.Player.Each(e.World, func(other *donburi.Entry) {
		op := components.Player.Get(other)
		if sameEntry(other, self) || !op.IsAlive() || !op.InGame {
			return
		}
		if dist := centerOf(other).Sub(me).Length(); dist < nearestDist {
			nearestDist = dist
			nearest = other
		}
	})
	return nearest
}

func nearestWeaponPickup(e *ecs.ECS, me components.Vector) *components.Vector {
	var best *components.Vector
	bestDist := math.MaxFloat64
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		if components.Pickup.Get(entry).Kind != components.PickupWeapon {
			return
		}
		c := centerOf(entry)
		if dist := c.Sub(me).Length(); dist < bestDist {
			bestDist = dist
			best = &c
		}
	})
	return best
}

// hasLineOfSight walks the level tiles between two points.
func hasLineOfSight(level *components.LevelData, from, to components.Vector) bool {
	if level == nil {
		return true
	}
	d := to.Sub(from)
	dist := d.Length()
	if dist == 0 {
		return true
	}
	step := level.TileSize / 4
	dir := d.Scale(1 / dist)
	for t := step; t < dist; t += step {
		p := from.Add(dir.Scale(t))
		if level.IsWall(p.X, p.Y) {
			return false
		}
	}
	return true
}
