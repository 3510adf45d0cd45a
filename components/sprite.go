package components

import (
	"github.com/automoto/duelcore/assets/animations"
	cfg "github.com/automoto/duelcore/config"
	"github.com/yohamta/donburi"
)

// SpriteData is what the renderer needs to draw a player this frame.
type SpriteData struct {
	Anim        cfg.AnimID
	Clip        *animations.Animation
	Speed       float64
	Orientation Orientation
	Visible     bool
	Alpha       float64
	Gun         GunSprite
	// Seconds left to show the status indicators.
	IndicatorTime float64
}

var Sprite = donburi.NewComponentType[SpriteData]()

// SetAnimation switches clips, restarting only when the clip changes.
func (s *SpriteData) SetAnimation(id cfg.AnimID) {
	if s.Anim == id && s.Clip != nil {
		return
	}
	s.Anim = id
	s.Clip = animations.NewAnimation(cfg.PlayerAnimations[id])
}

// Finished reports whether the current play-once clip has completed.
func (s *SpriteData) Finished() bool {
	return s.Clip != nil && s.Clip.Finished()
}
