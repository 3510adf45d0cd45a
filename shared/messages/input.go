package messages

import "github.com/automoto/duelcore/config"

// PlayerInput is sent from client to server each frame with the player's input state.
type PlayerInput struct {
	Sequence  uint32                   // Incrementing ID, echoed back in NetPlayerState
	Buttons   map[config.ButtonID]bool // Which buttons are currently pressed
	Timestamp int64                    // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Buttons:  make(map[config.ButtonID]bool),
	}
}
