package systems

import (
	"log"
	"sort"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateMatch returns the singleton Match component, creating if needed.
func GetOrCreateMatch(e *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Match))
		components.Match.SetValue(entry, components.MatchData{WinnerIndex: -1})
	}
	return components.Match.Get(entry)
}

// Players returns the player entries ordered by index.
func Players(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Player.Get(out[i]).Index < components.Player.Get(out[j]).Index
	})
	return out
}

// BeginRound clears the map and starts every player at a shuffled starting
// position with a random weapon from the table.
func BeginRound(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	players := Players(e)
	level := GetLevel(e)
	if level == nil || len(players) == 0 || len(level.StartingPositions()) == 0 {
		match.State = components.RoundWaiting
		return
	}

	var leftovers []*donburi.Entry
	tags.Shot.Each(e.World, func(entry *donburi.Entry) { leftovers = append(leftovers, entry) })
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) { leftovers = append(leftovers, entry) })
	for _, entry := range leftovers {
		factory.Destroy(e, entry)
	}
	if entry, ok := components.BonusSpawner.First(e.World); ok {
		components.BonusSpawner.Get(entry).Cooldown = cfg.Round.BonusInterval
	}

	rng := random(e)
	starts := level.StartingPositions()
	order := rng.Perm(len(starts))
	weapons := Weapons()

	for i, entry := range players {
		start := starts[order[i%len(order)]]
		w := weapons[rng.Intn(len(weapons))].(*ProjectileWeapon)
		StartRound(e, entry, w, w.Def.Bullets, start.X, start.Y)
	}

	match.State = components.RoundPlaying
	match.Round++
	match.Timer = 0
	match.WinnerIndex = -1
	log.Printf("[match] round %d started with %d players", match.Round, len(players))
}

// UpdateMatch ends the round once at most one player is left standing and
// starts the next one after the result delay.
func UpdateMatch(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	dt := deltaTime(e)

	switch match.State {
	case components.RoundWaiting:
		if len(Players(e)) >= cfg.Round.MinPlayers {
			BeginRound(e)
		}

	case components.RoundPlaying:
		match.Timer += dt
		alive, started := 0, 0
		for _, entry := range Players(e) {
			p := components.Player.Get(entry)
			if p.IsDead() && !p.IsGhost() && cfg.Round.GhostMode {
				MakeGhost(entry)
			}
			if p.IsAlive() && p.InGame {
				alive++
			}
			if p.InGame || p.IsGhost() {
				started++
			}
		}
		if (started >= cfg.Round.MinPlayers && alive <= 1) || alive == 0 {
			FinishRound(e)
		}

	case components.RoundOver:
		match.Timer -= dt
		if match.Timer <= 0 {
			match.State = components.RoundWaiting
		}
	}
}

// FinishRound books the round into the profiles and scores. The last
// player alive wins.
func FinishRound(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.WinnerIndex = -1

	var survivors []*donburi.Entry
	for _, entry := range Players(e) {
		p := components.Player.Get(entry)
		EndRound(entry)
		score := match.GetPlayerScore(p.Index)
		score.Kills += p.RoundKills
		if p.IsAlive() && p.InGame {
			survivors = append(survivors, entry)
		}
		p.InGame = false
	}
	if len(survivors) == 1 {
		p := components.Player.Get(survivors[0])
		match.WinnerIndex = p.Index
		match.GetPlayerScore(p.Index).Wins++
		if p.Person != nil {
			p.Person.AddWins(1)
		}
	}

	match.State = components.RoundOver
	match.Timer = cfg.Round.RoundOverDelay
	log.Printf("[match] round %d over, winner %d", match.Round, match.WinnerIndex)
}
