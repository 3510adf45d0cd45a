package components

import (
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input"
	"github.com/yohamta/donburi"
)

type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateRetreat
	BotStateScavenge
)

// BotData drives a player's switches instead of a human.
type BotData struct {
	Difficulty cfg.BotDifficulty
	Switches   *[cfg.ButtonCount]input.Switch
	AIState    BotState

	DecisionTimer float64
	Target        donburi.Entity
	// Shoot is held for one decision so chargeable weapons release.
	ShootHeld bool
}

var Bot = donburi.NewComponentType[BotData]()
