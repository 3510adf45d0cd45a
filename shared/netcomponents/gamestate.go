package netcomponents

import "github.com/yohamta/donburi"

type MatchState int

const (
	MatchStateWaiting MatchState = iota
	MatchStatePlaying
	MatchStateFinished
)

type NetGameStateData struct {
	Scores     map[int]int // player index -> kills this round
	Round      int
	Timer      float64 // seconds into the round
	MatchState MatchState
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
