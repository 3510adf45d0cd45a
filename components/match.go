package components

import "github.com/yohamta/donburi"

type RoundState int

const (
	RoundWaiting RoundState = iota
	RoundPlaying
	RoundOver
)

func (s RoundState) String() string {
	switch s {
	case RoundWaiting:
		return "waiting"
	case RoundPlaying:
		return "playing"
	case RoundOver:
		return "over"
	}
	return "unknown"
}

// PlayerScore tracks a player's results over the match
type PlayerScore struct {
	PlayerIndex int
	Kills       int
	Wins        int
}

// MatchData stores the round state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State       RoundState
	Round       int
	Timer       float64       // seconds into the round, or left of the result screen
	Scores      []PlayerScore // indexed by PlayerIndex
	WinnerIndex int           // -1 for a draw or no round finished yet
}

var Match = donburi.NewComponentType[MatchData]()

// GetPlayerScore returns the score for a player, creating it if needed
func (m *MatchData) GetPlayerScore(playerIndex int) *PlayerScore {
	for len(m.Scores) <= playerIndex {
		m.Scores = append(m.Scores, PlayerScore{PlayerIndex: len(m.Scores)})
	}
	return &m.Scores[playerIndex]
}
