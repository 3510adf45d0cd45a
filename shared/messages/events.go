package messages

// KillEvent is broadcast when a player dies
type KillEvent struct {
	VictimIndex int
	KillerIndex int // -1 if environmental
	Weapon      string
	Suicide     bool
}

// SoundEvent is broadcast for every sound the simulation queued
type SoundEvent struct {
	Sound int // config.SoundID
}

// ImpactEvent is broadcast for the cosmetic result of a shot
type ImpactEvent struct {
	Kind        int // components.FeedbackKind
	TargetIndex int
	X, Y        float64
}

// ChatMessage is a line of text shown to one player
type ChatMessage struct {
	PlayerIndex int
	Text        string
}

// RoundEvent is broadcast when a round starts or ends
type RoundEvent struct {
	Round       int
	Started     bool
	WinnerIndex int // -1 for a draw; only set when a round ends
}
