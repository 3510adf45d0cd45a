package components

import "github.com/yohamta/donburi"

type PickupKind int

const (
	PickupWeapon PickupKind = iota
	PickupEffect
	PickupPlusLife
	PickupMinusLife
	PickupFullLife
	PickupBullets
	PickupTemporarySkin
)

type PickupData struct {
	Kind PickupKind

	// Weapon pickups
	Weapon          Weapon
	Bullets         int
	ReloadRemaining float64

	// Effect pickups
	Effect   EffectType
	Duration float64
}

var Pickup = donburi.NewComponentType[PickupData]()
