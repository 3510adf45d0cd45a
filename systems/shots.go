package systems

import (
	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShots moves every shot and resolves what it runs into. All hits of
// a frame are settled here, before presentation runs.
func UpdateShots(e *ecs.ECS) {
	dt := deltaTime(e)
	level := GetLevel(e)

	var shots []*donburi.Entry
	tags.Shot.Each(e.World, func(entry *donburi.Entry) {
		shots = append(shots, entry)
	})

	for _, entry := range shots {
		shot := components.Shot.Get(entry)
		obj := components.Object.Get(entry).Object

		shot.TimeLeft -= dt
		if shot.TimeLeft <= 0 {
			factory.Destroy(e, entry)
			continue
		}

		obj.X += shot.Velocity.X * dt
		obj.Y += shot.Velocity.Y * dt
		obj.Update()

		b := boxOf(obj)
		if level != nil && (b.X+b.W < 0 || b.Y+b.H < 0 || b.X > level.PixelWidth() || b.Y > level.PixelHeight()) {
			factory.Destroy(e, entry)
			continue
		}

		target := directTarget(obj, shot)
		hitWall := target == nil && embedded(obj, tags.ResolvSolid)
		if target == nil && !hitWall {
			continue
		}

		resolveShot(e, shot, target, b.Center())
		queueFeedback(e, shot.Feedback)
		factory.Destroy(e, entry)
	}
}

// directTarget finds a player body the shot overlaps. The shooter and
// ghosts are never hit directly.
func directTarget(obj *resolv.Object, shot *components.ShotData) *donburi.Entry {
	b := boxOf(obj)
	for _, o := range nearby(obj, 0, 0, tags.ResolvPlayer) {
		victim, ok := o.Data.(*donburi.Entry)
		if !ok || !victim.Valid() || victim.Entity() == shot.Shooter {
			continue
		}
		if components.Player.Get(victim).IsGhost() || !overlaps(b, boxOf(o)) {
			continue
		}
		return victim
	}
	return nil
}

func resolveShot(e *ecs.ECS, shot *components.ShotData, target *donburi.Entry, at components.Vector) {
	var hit, killed []*donburi.Entry
	record := func(victim *donburi.Entry, dead bool) {
		hit = append(hit, victim)
		if dead {
			killed = append(killed, victim)
		}
	}

	if target != nil {
		wasAlive := components.Player.Get(target).IsAlive()
		dead := HitByShot(e, target, shot, shot.Damage, true, at, shot.Velocity)
		if wasAlive {
			record(target, dead)
		}
	}

	if shot.BlastRange > 0 {
		tags.Player.Each(e.World, func(victim *donburi.Entry) {
			p := components.Player.Get(victim)
			if sameEntry(victim, target) || p.IsGhost() {
				return
			}
			dist := centerOf(victim).Sub(at).Length()
			if dist >= shot.BlastRange {
				return
			}
			amount := shot.Damage * (1 - dist/shot.BlastRange)
			wasAlive := p.IsAlive()
			dead := HitByShot(e, victim, shot, amount, false, at, shot.Velocity)
			if wasAlive {
				record(victim, dead)
			}
		})
	}

	if shooter := playerEntry(e, shot.Shooter); shooter != nil {
		ProcessShot(e, shooter, shot, hit, killed)
	}
}

func queueFeedback(e *ecs.ECS, fb []components.ShotFeedback) {
	if len(fb) == 0 {
		return
	}
	entry, ok := components.FeedbackQueue.First(e.World)
	if !ok {
		entry = archetypes.FeedbackQueue.Spawn(e)
	}
	q := components.FeedbackQueue.Get(entry)
	q.Pending = append(q.Pending, fb...)
}

// DrainFeedback returns and clears the impacts of spent shots.
func DrainFeedback(e *ecs.ECS) []components.ShotFeedback {
	entry, ok := components.FeedbackQueue.First(e.World)
	if !ok {
		return nil
	}
	q := components.FeedbackQueue.Get(entry)
	out := q.Pending
	q.Pending = nil
	return out
}
