package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Weapon is anything a player can carry and fire.
type Weapon interface {
	Name() string
	Chargeable() bool
	// ReloadInterval is the base time between shots, before effects.
	ReloadInterval() float64
	// Shoot releases one volley from the shooter in the given direction.
	Shoot(e *ecs.ECS, shooter *donburi.Entry, orientation Orientation)
	MakeSprite() GunSprite
}

// GunSprite is the presentation of a carried weapon.
type GunSprite struct {
	Weapon      string
	Visible     bool
	Orientation Orientation
	Alpha       float64
}
