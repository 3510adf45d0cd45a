package components

import (
	"github.com/automoto/duelcore/input"
	"github.com/yohamta/donburi"
)

type ControlsData struct {
	Controls *input.PlayerControls
	State    input.ControllerState
}

var Controls = donburi.NewComponentType[ControlsData]()
