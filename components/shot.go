package components

import "github.com/yohamta/donburi"

type FeedbackKind int

const (
	FeedbackBlood FeedbackKind = iota
	FeedbackGib
	FeedbackDeadBody
)

// ShotFeedback is a cosmetic impact for the renderer to show.
type ShotFeedback struct {
	Kind   FeedbackKind
	Target donburi.Entity
	At     Vector
}

type ShotData struct {
	Shooter     donburi.Entity
	Weapon      Weapon
	Damage      float64
	Velocity    Vector
	Orientation Orientation
	BlastRange  float64
	TimeLeft    float64
	Feedback    []ShotFeedback
}

var Shot = donburi.NewComponentType[ShotData]()

// OnHitPlayer records a hit on a living or dead body.
func (s *ShotData) OnHitPlayer(target *donburi.Entry, directHit bool, hitPoint Vector) {
	kind := FeedbackBlood
	if p := Player.Get(target); !p.IsAlive() {
		kind = FeedbackDeadBody
	}
	s.Feedback = append(s.Feedback, ShotFeedback{Kind: kind, Target: target.Entity(), At: hitPoint})
}

// OnKillPlayer records a killing hit.
func (s *ShotData) OnKillPlayer(target *donburi.Entry, directHit bool, hitPoint Vector) {
	s.Feedback = append(s.Feedback, ShotFeedback{Kind: FeedbackGib, Target: target.Entity(), At: hitPoint})
}

// FeedbackQueueData collects the impacts of spent shots (singleton component)
type FeedbackQueueData struct {
	Pending []ShotFeedback
}

var FeedbackQueue = donburi.NewComponentType[FeedbackQueueData]()
