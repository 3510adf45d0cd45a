package netcomponents

import "github.com/yohamta/donburi"

// NetPlayerStateData is what clients need to draw and label a player.
type NetPlayerStateData struct {
	Index       int
	Name        string
	Anim        int // config.AnimID
	Frame       int
	Orientation int // -1 left, 1 right
	Visible     bool
	Alpha       float64

	Lifecycle int
	Flags     uint32
	Life      float64
	Air       float64

	Weapon     string
	GunVisible bool
	Ammo       int
	Effect     int // components.EffectType
	EffectLeft float64

	LastSequence uint32 // Last input sequence processed by the server
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
