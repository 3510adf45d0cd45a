// Package arena wires the player simulation into a runnable match: one
// donburi world, the level, the players and the fixed system order.
package arena

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/automoto/duelcore/systems"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Arena struct {
	ecs *ecs.ECS
}

// New builds the world for a level and registers the systems.
func New(level *leveldata.Level) *Arena {
	e := ecs.NewECS(donburi.NewWorld())

	systems.GetOrCreateClock(e)
	systems.GetOrCreateMatch(e)
	systems.GetOrCreatePause(e)
	archetypes.BonusSpawner.Spawn(e)
	factory.CreateLevel(e, level)

	e.AddSystem(systems.WithPauseCheck(systems.UpdateBots)) // Must run before UpdateControls
	e.AddSystem(systems.WithPauseCheck(systems.UpdateElevators))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateControls))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayers))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePickupSpawns))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateShots))
	// All hits are resolved before any clip is chosen
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePresentation))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMessages))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))
	e.AddSystem(systems.UpdateNetState)

	return &Arena{ecs: e}
}

func (a *Arena) ECS() *ecs.ECS { return a.ecs }

func (a *Arena) World() donburi.World { return a.ecs.World }

// Step advances the simulation by dt seconds.
func (a *Arena) Step(dt float64) {
	systems.Advance(a.ecs, dt)
	a.ecs.Update()
}

// AddPlayer spawns a player at the first starting position. It joins the
// game with the next round.
func (a *Arena) AddPlayer(opts factory.PlayerOptions) *donburi.Entry {
	x, y := 0.0, 0.0
	if level := systems.GetLevel(a.ecs); level != nil && len(level.StartingPositions()) > 0 {
		start := level.StartingPositions()[0]
		x, y = start.X, start.Y
	}
	if opts.Index < 0 {
		opts.Index = a.nextIndex()
	}
	entry := factory.CreatePlayer(a.ecs, x, y, opts)
	name := "?"
	if opts.Person != nil {
		name = opts.Person.Name
	}
	log.Printf("[arena] player %d (%s) joined", opts.Index, name)
	return entry
}

// AddBot spawns a computer-controlled player.
func (a *Arena) AddBot(person *profile.Person, difficulty cfg.BotDifficulty) *donburi.Entry {
	controls, switches := input.Switches()
	entry := a.AddPlayer(factory.PlayerOptions{
		Index:    -1,
		Person:   person,
		Controls: controls,
	})
	entry.AddComponent(components.Bot)
	components.Bot.SetValue(entry, components.BotData{
		Difficulty: difficulty,
		Switches:   switches,
	})
	return entry
}

// RemovePlayer books the player's round and takes them out of the world.
func (a *Arena) RemovePlayer(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	p := components.Player.Get(entry)
	if p.InGame {
		systems.EndRound(entry)
	}
	log.Printf("[arena] player %d left", p.Index)
	systems.DropWeapon(a.ecs, entry)
	factory.Destroy(a.ecs, entry)
}

func (a *Arena) nextIndex() int {
	next := 0
	for _, entry := range systems.Players(a.ecs) {
		if i := components.Player.Get(entry).Index; i >= next {
			next = i + 1
		}
	}
	return next
}

// Players lists the players ordered by index.
func (a *Arena) Players() []*donburi.Entry {
	return systems.Players(a.ecs)
}

// StartRound starts a round right away.
func (a *Arena) StartRound() {
	systems.BeginRound(a.ecs)
}

// EndRound ends the current round right away.
func (a *Arena) EndRound() {
	if a.Match().State == components.RoundPlaying {
		systems.FinishRound(a.ecs)
	}
}

func (a *Arena) Match() *components.MatchData {
	return systems.GetOrCreateMatch(a.ecs)
}

func (a *Arena) SetPaused(paused bool) {
	systems.SetPaused(a.ecs, paused)
}

// DrainSounds returns the sounds queued since the last call.
func (a *Arena) DrainSounds() []cfg.SoundID {
	return systems.DrainSounds(a.ecs)
}

// DrainFeedback returns the shot impacts since the last call.
func (a *Arena) DrainFeedback() []components.ShotFeedback {
	return systems.DrainFeedback(a.ecs)
}

// Messages lists the lines currently shown to a player.
func (a *Arena) Messages(entry *donburi.Entry) []string {
	return systems.MessagesFor(a.ecs, entry)
}

// Validate checks every player's invariants.
func (a *Arena) Validate() error {
	var errs []error
	for _, entry := range a.Players() {
		if err := systems.ValidatePlayer(entry); err != nil {
			errs = append(errs, fmt.Errorf("player %d: %w", components.Player.Get(entry).Index, err))
		}
	}
	return errors.Join(errs...)
}
