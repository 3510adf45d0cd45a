package systems

import (
	"math"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func listenerOf(entry *donburi.Entry) components.EventListener {
	if l := components.Player.Get(entry).Listener; l != nil {
		return l
	}
	return DefaultListener{}
}

func centerOf(entry *donburi.Entry) components.Vector {
	return boxOf(components.Object.Get(entry).Object).Center()
}

// AddLife changes life by delta, clamped to [0, MaxLife].
func AddLife(entry *donburi.Entry, delta float64) {
	p := components.Player.Get(entry)
	p.Life = math.Max(0, math.Min(cfg.Player.MaxLife, p.Life+delta))
}

// HitByShot resolves a shot reaching the target and reports whether it
// killed. Knockback is applied even when the damage itself is refused.
func HitByShot(e *ecs.ECS, target *donburi.Entry, shot *components.ShotData, amount float64, directHit bool, hitPoint, shotVector components.Vector) bool {
	p := components.Player.Get(target)
	phys := components.Physics.Get(target)

	estimated := centerOf(target).Sub(hitPoint)
	if directHit {
		estimated.X = shotVector.X
	}
	push := estimated.Unit().Scale(amount * cfg.Combat.ShotForceFactor * cfg.BlockSize)
	phys.External = phys.External.Add(push)

	if IsInvulnerable(target) || !p.InGame {
		return false
	}
	if !p.IsAlive() {
		shot.OnHitPlayer(target, directHit, hitPoint)
		return false
	}

	shooter := playerEntry(e, shot.Shooter)
	if !listenerOf(target).OnDamageByShot(target, shooter, shot, amount, directHit) {
		return false
	}

	p.TimeSinceHit = 0
	AddLife(target, -amount)
	PlaySFX(e, cfg.SoundGotHit)

	if shooter != nil {
		sp := components.Player.Get(shooter)
		if !sameEntry(shooter, target) {
			if p.DamagedBy == nil {
				p.DamagedBy = map[donburi.Entity]float64{}
			}
			p.DamagedBy[shooter.Entity()] += amount
			if sp.Person != nil {
				sp.Person.AddTotalDamage(int(math.Round(amount)))
			}
		}
		if directHit {
			if sp.Person != nil {
				sp.Person.AddHits(1)
			}
			if effectRuleOf(shooter).LifeSteal {
				AddLife(shooter, amount)
			}
		}
	}

	if p.Life <= 0 {
		Die(target)
		if hitPoint.X < centerOf(target).X {
			p.Orientation = components.Left
		} else {
			p.Orientation = components.Right
		}
		shot.OnKillPlayer(target, directHit, hitPoint)
		return true
	}
	shot.OnHitPlayer(target, directHit, hitPoint)
	return false
}

// Hit deals environmental damage and reports whether it killed.
func Hit(e *ecs.ECS, entry *donburi.Entry, amount float64) bool {
	p := components.Player.Get(entry)
	if IsInvulnerable(entry) || !p.IsAlive() {
		return false
	}
	listener := listenerOf(entry)
	if !listener.OnDamageByEnv(entry, amount) {
		return false
	}

	p.TimeSinceHit = 0
	AddLife(entry, -amount)

	if p.Life <= 0 {
		Die(entry)
		if listener.OnKillByEnv(entry) && p.Person != nil {
			p.Person.AddDeaths(1)
		}
		return true
	}
	return false
}

// Die starts the dying sequence. Only a living player can die.
func Die(entry *donburi.Entry) {
	p := components.Player.Get(entry)
	if !p.IsAlive() {
		return
	}
	p.Lifecycle = components.Dying
	p.Flags.Set(components.FlagLying)
	p.Flags.Clear(components.FlagMoveUp | components.FlagMoveDown | components.FlagMoveSides |
		components.FlagKnee | components.FlagPick)

	sprite := components.Sprite.Get(entry)
	sprite.Gun.Visible = false
	if p.Person != nil {
		p.Person.AddTimeAlive(int(p.RoundTime))
	}
}

// ProcessShot settles a finished shot for its shooter: suicide, kills and
// assists, and the related sounds.
func ProcessShot(e *ecs.ECS, shooter *donburi.Entry, shot *components.ShotData, hit, killed []*donburi.Entry) {
	suicide := containsEntry(killed, shooter)

	if suicide {
		PlaySFX(e, cfg.SoundSuicide)
		var others []*donburi.Entry
		for _, v := range killed {
			if !sameEntry(v, shooter) {
				others = append(others, v)
			}
		}
		if listenerOf(shooter).OnSuicide(shooter, others) {
			sp := components.Player.Get(shooter)
			if sp.Person != nil {
				sp.Person.AddPenalties(1)
				sp.Person.AddDeaths(1)
			}
		}
	} else if len(killed) > 0 {
		PlaySFX(e, cfg.SoundKilledOther)
	}

	for _, victim := range killed {
		if sameEntry(victim, shooter) {
			continue
		}
		PlaySFX(e, cfg.SoundWasKilled)
		if listenerOf(victim).OnKillByPlayer(victim, shooter, shot, suicide) {
			awardKill(e, victim, shooter)
		}
	}

	if !containsEntry(hit, shooter) && len(hit) > 0 {
		PlaySFX(e, cfg.SoundHitOther)
	}
}

func awardKill(e *ecs.ECS, victim, killer *donburi.Entry) {
	vp := components.Player.Get(victim)
	if vp.Person != nil {
		vp.Person.AddDeaths(1)
	}
	if killer != nil && killer.Valid() {
		kp := components.Player.Get(killer)
		kp.RoundKills++
		if kp.Person != nil {
			kp.Person.AddKills(1)
		}
	}

	for id, dmg := range vp.DamagedBy {
		if killer != nil && id == killer.Entity() {
			continue
		}
		he := playerEntry(e, id)
		if he == nil {
			continue
		}
		helper := components.Player.Get(he)
		if helper.Person != nil {
			helper.Person.AddAssistances(1)
			helper.Person.AddAssistedDamage(int(math.Round(dmg)))
		}
	}
	vp.DamagedBy = nil
}

func containsEntry(list []*donburi.Entry, entry *donburi.Entry) bool {
	for _, x := range list {
		if sameEntry(x, entry) {
			return true
		}
	}
	return false
}

// playerEntry resolves a stored player id. It returns nil once that
// player is gone, even if the id has been handed to another entity.
func playerEntry(e *ecs.ECS, id donburi.Entity) *donburi.Entry {
	if !e.World.Valid(id) {
		return nil
	}
	entry := e.World.Entry(id)
	if !entry.HasComponent(components.Player) {
		return nil
	}
	return entry
}

// sameEntry compares entries by entity; nil only matches nil.
func sameEntry(a, b *donburi.Entry) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Entity() == b.Entity()
}
