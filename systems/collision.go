package systems

import (
	"math"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const touchEpsilon = 1e-6

type box struct {
	X, Y, W, H float64
}

func boxOf(o *resolv.Object) box {
	return box{o.X, o.Y, o.W, o.H}
}

func (b box) Center() components.Vector {
	return components.Vector{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

func overlapX(a, b box) bool {
	return a.X < b.X+b.W-touchEpsilon && a.X+a.W > b.X+touchEpsilon
}

func overlapY(a, b box) bool {
	return a.Y < b.Y+b.H-touchEpsilon && a.Y+a.H > b.Y+touchEpsilon
}

func overlaps(a, b box) bool {
	return overlapX(a, b) && overlapY(a, b)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// nearby returns the tagged objects in the cells obj would touch after
// moving dx, dy, padded one pixel along the direction of travel so that
// flush neighbours are included.
func nearby(obj *resolv.Object, dx, dy float64, tag string) []*resolv.Object {
	check := obj.Check(dx+sign(dx), dy+sign(dy), tag)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tag)
}

// sweepX returns how far obj can move horizontally before touching a tagged
// object, and whether it was stopped. Objects it already overlaps are
// ignored so a body can always leave a wall.
func sweepX(obj *resolv.Object, dx float64, tag string) (float64, bool) {
	if dx == 0 {
		return 0, false
	}
	b := boxOf(obj)
	hit := false
	for _, o := range nearby(obj, dx, 0, tag) {
		ob := boxOf(o)
		if !overlapY(b, ob) || overlaps(b, ob) {
			continue
		}
		if dx > 0 && ob.X >= b.X+b.W-touchEpsilon {
			if gap := ob.X - (b.X + b.W); gap < dx {
				dx = math.Max(gap, 0)
				hit = true
			}
		} else if dx < 0 && ob.X+ob.W <= b.X+touchEpsilon {
			if gap := ob.X + ob.W - b.X; gap > dx {
				dx = math.Min(gap, 0)
				hit = true
			}
		}
	}
	return dx, hit
}

func sweepY(obj *resolv.Object, dy float64, tag string) (float64, bool) {
	if dy == 0 {
		return 0, false
	}
	b := boxOf(obj)
	hit := false
	for _, o := range nearby(obj, 0, dy, tag) {
		ob := boxOf(o)
		if !overlapX(b, ob) || overlaps(b, ob) {
			continue
		}
		if dy > 0 && ob.Y >= b.Y+b.H-touchEpsilon {
			if gap := ob.Y - (b.Y + b.H); gap < dy {
				dy = math.Max(gap, 0)
				hit = true
			}
		} else if dy < 0 && ob.Y+ob.H <= b.Y+touchEpsilon {
			if gap := ob.Y + ob.H - b.Y; gap > dy {
				dy = math.Min(gap, 0)
				hit = true
			}
		}
	}
	return dy, hit
}

// surfaceBelow finds a tagged object the feet rest on.
func surfaceBelow(obj *resolv.Object, tag string) *resolv.Object {
	probe := cfg.Physics.SurfaceProbe
	b := boxOf(obj)
	feet := b.Y + b.H
	for _, o := range nearby(obj, 0, probe, tag) {
		ob := boxOf(o)
		if overlapX(b, ob) && ob.Y >= feet-touchEpsilon && ob.Y <= feet+probe {
			return o
		}
	}
	return nil
}

// surfaceAbove finds a tagged object directly over the head.
func surfaceAbove(obj *resolv.Object, tag string) *resolv.Object {
	probe := cfg.Physics.SurfaceProbe
	b := boxOf(obj)
	for _, o := range nearby(obj, 0, -probe, tag) {
		ob := boxOf(o)
		top := ob.Y + ob.H
		if overlapX(b, ob) && top <= b.Y+touchEpsilon && top >= b.Y-probe {
			return o
		}
	}
	return nil
}

// embedded reports whether obj overlaps any tagged object.
func embedded(obj *resolv.Object, tag string) bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	b := boxOf(obj)
	for _, o := range check.ObjectsByTags(tag) {
		if overlaps(b, boxOf(o)) {
			return true
		}
	}
	return false
}

// collideWithElevators lands a falling or standing body on an elevator and
// carries it along.
func collideWithElevators(entry *donburi.Entry, dt, speed float64) {
	phys := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	vy := phys.SpeedY + phys.AccelY
	if vy < 0 {
		phys.OnElevator = nil
		return
	}

	probe := cfg.Physics.SurfaceProbe
	fall := vy * speed * dt
	b := boxOf(obj)
	feet := b.Y + b.H

	var found *resolv.Object
	for _, o := range nearby(obj, 0, fall+probe, tags.ResolvElevator) {
		el, ok := o.Data.(*donburi.Entry)
		if !ok || !el.Valid() {
			continue
		}
		ob := boxOf(o)
		if !overlapX(b, ob) {
			continue
		}
		prevTop := ob.Y - components.Elevator.Get(el).Delta.Y
		if feet > prevTop+probe || feet+fall < ob.Y-probe {
			continue
		}
		if found == nil || ob.Y < found.Y {
			found = o
		}
	}

	if found == nil {
		phys.OnElevator = nil
		return
	}

	el := found.Data.(*donburi.Entry)
	delta := components.Elevator.Get(el).Delta
	obj.Y = found.Y - b.H
	obj.Update()
	if dx, _ := sweepX(obj, delta.X, tags.ResolvSolid); dx != 0 {
		obj.X += dx
	}
	obj.Update()
	phys.SpeedY = 0
	phys.OnElevator = el
}

// collideWithLevel integrates the body against the level walls and
// refreshes the collider facts.
func collideWithLevel(e *ecs.ECS, entry *donburi.Entry, dt, speed float64) {
	phys := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	phys.SpeedX += phys.External.X
	phys.SpeedY += phys.AccelY + phys.External.Y
	phys.AccelY = 0
	phys.External = components.Vector{}
	if phys.OnElevator == nil {
		maxFall := cfg.Physics.MaxFallSpeed * cfg.BlockSize
		phys.SpeedY = math.Min(phys.SpeedY+cfg.Physics.Gravity*cfg.BlockSize*dt, maxFall)
	}

	friction := cfg.Physics.Friction * cfg.BlockSize * dt
	if math.Abs(phys.SpeedX) <= friction {
		phys.SpeedX = 0
	} else {
		phys.SpeedX -= sign(phys.SpeedX) * friction
	}

	dx := phys.SpeedX * speed * dt
	dy := phys.SpeedY * speed * dt
	if phys.OnElevator != nil && dy > 0 {
		dy = 0
	}

	if moved, hit := sweepX(obj, dx, tags.ResolvSolid); hit {
		obj.X += moved
		phys.SpeedX = 0
	} else {
		obj.X += dx
	}
	obj.Update()

	if moved, hit := sweepY(obj, dy, tags.ResolvSolid); hit {
		obj.Y += moved
		phys.SpeedY = 0
	} else {
		obj.Y += dy
	}

	if level := GetLevel(e); level != nil {
		obj.X = math.Max(0, math.Min(obj.X, level.PixelWidth()-obj.W))
		obj.Y = math.Max(0, math.Min(obj.Y, level.PixelHeight()-obj.H))
	}
	obj.Update()

	updateColliderFacts(entry)
}

func updateColliderFacts(entry *donburi.Entry) {
	phys := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	if phys.OnElevator != nil {
		el := phys.OnElevator
		if !el.Valid() {
			phys.OnElevator = nil
		} else {
			eb := boxOf(components.Object.Get(el).Object)
			b := boxOf(obj)
			if !overlapX(b, eb) || math.Abs(b.Y+b.H-eb.Y) > cfg.Physics.SurfaceProbe {
				phys.OnElevator = nil
			}
		}
	}
	phys.OnGround = !phys.Rising() && surfaceBelow(obj, tags.ResolvSolid) != nil
	phys.UnderHardSurface = surfaceAbove(obj, tags.ResolvSolid) != nil
	phys.InWall = embedded(obj, tags.ResolvSolid)
}
