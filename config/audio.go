package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundGotHit
	SoundHitOther
	SoundWasKilled
	SoundKilledOther
	SoundSuicide
	SoundDrowned
	SoundSplash
	SoundPickWeapon
	SoundPickBonus
	SoundJump
)

var soundNames = map[SoundID]string{
	SoundNone:        "none",
	SoundGotHit:      "got-hit",
	SoundHitOther:    "hit-other",
	SoundWasKilled:   "was-killed",
	SoundKilledOther: "killed-other",
	SoundSuicide:     "suicide",
	SoundDrowned:     "drowned",
	SoundSplash:      "splash",
	SoundPickWeapon:  "pick-weapon",
	SoundPickBonus:   "pick-bonus",
	SoundJump:        "jump",
}

func (s SoundID) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return "unknown"
}
