package components

import (
	cfg "github.com/automoto/duelcore/config"
	"github.com/yohamta/donburi"
)

// SoundQueueData collects the sounds requested this frame (singleton component)
type SoundQueueData struct {
	PendingSFX []cfg.SoundID
}

var SoundQueue = donburi.NewComponentType[SoundQueueData]()
