package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectType names the timed status effect a player carries.
type EffectType int

const (
	EffectNone EffectType = iota
	EffectInvulnerability
	EffectFastReload
	EffectPowerfulShots
	EffectInvisibility
	EffectSplitFire
	EffectVampireShots
	EffectInfiniteAmmo
	EffectSnorkel
	EffectFastMovement
	EffectCount
)

var effectNames = [EffectCount]string{
	"none", "invulnerability", "fast-reload", "powerful-shots", "invisibility",
	"split-fire", "vampire-shots", "infinite-ammo", "snorkel", "fast-movement",
}

func (t EffectType) String() string {
	if t < 0 || t >= EffectCount {
		return "unknown"
	}
	return effectNames[t]
}

// EffectData is the single status-effect slot.
type EffectData struct {
	Type      EffectType
	Duration  float64
	Remaining float64
	// Pulse drives the body alpha while an effect blinks.
	Pulse *gween.Sequence
}

var Effect = donburi.NewComponentType[EffectData]()
