package systems

import (
	"testing"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
)

func TestBeginRound(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "")
	b := spawnPlayer(t, e, "bob", 6, 5, "")
	a.player().InGame, b.player().InGame = false, false
	games := a.person().Games

	BeginRound(e)

	match := GetOrCreateMatch(e)
	if match.State != components.RoundPlaying || match.Round != 1 {
		t.Fatalf("state = %v round = %d, want playing round 1", match.State, match.Round)
	}
	starts := GetLevel(e).StartingPositions()
	for _, tp := range []testPlayer{a, b} {
		p := tp.player()
		if !p.InGame || !p.IsAlive() || !p.HasGun() || p.Weapon == nil {
			t.Fatalf("%s not started: %+v", p.Person.Name, p)
		}
		if !IsInvulnerable(tp.entry) {
			t.Fatalf("%s has no spawn invulnerability", p.Person.Name)
		}
		pos := components.Vector{X: tp.object().X, Y: tp.object().Y}
		if pos != starts[0] && pos != starts[1] {
			t.Fatalf("%s at %v, not on a start", p.Person.Name, pos)
		}
		if p.Person.Games != games+1 {
			t.Fatalf("games = %d, want %d", p.Person.Games, games+1)
		}
	}
	if a.object().X == b.object().X {
		t.Fatal("both players on the same start")
	}
}

func TestRoundNeedsTwoPlayers(t *testing.T) {
	e := newTestECS(t, box10...)
	spawnPlayer(t, e, "ann", 2, 5, "pistol")

	Advance(e, frame)
	UpdateMatch(e)

	if GetOrCreateMatch(e).State != components.RoundWaiting {
		t.Fatal("round started with one player")
	}
}

func TestLastPlayerStandingWins(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")
	b := spawnPlayer(t, e, "bob", 6, 5, "pistol")
	BeginRound(e)
	SetEffect(e, a.entry, components.EffectNone, 0)
	SetEffect(e, b.entry, components.EffectNone, 0)

	a.player().RoundKills = 1
	Hit(e, b.entry, 500)
	Advance(e, frame)
	UpdateMatch(e)

	match := GetOrCreateMatch(e)
	if match.State != components.RoundOver || match.WinnerIndex != a.player().Index {
		t.Fatalf("state = %v winner = %d, want over with %d", match.State, match.WinnerIndex, a.player().Index)
	}
	if score := match.GetPlayerScore(a.player().Index); score.Wins != 1 || score.Kills != 1 {
		t.Fatalf("score = %+v, want one win and one kill", score)
	}
	if a.person().Wins != 1 {
		t.Fatalf("profile wins = %d, want 1", a.person().Wins)
	}
	if a.player().InGame || b.player().InGame {
		t.Fatal("players still in game after the round")
	}

	for i := 0; i < int(cfg.Round.RoundOverDelay/frame)+5; i++ {
		Advance(e, frame)
		UpdateMatch(e)
	}
	if match.Round != 2 || match.State != components.RoundPlaying {
		t.Fatalf("round = %d state = %v, want round 2 playing", match.Round, match.State)
	}
	if !b.player().IsAlive() {
		t.Fatal("loser not respawned")
	}
}

func TestDrawWhenNobodySurvives(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")
	b := spawnPlayer(t, e, "bob", 6, 5, "pistol")
	BeginRound(e)
	for _, tp := range []testPlayer{a, b} {
		SetEffect(e, tp.entry, components.EffectNone, 0)
		Hit(e, tp.entry, 500)
	}

	Advance(e, frame)
	UpdateMatch(e)

	match := GetOrCreateMatch(e)
	if match.State != components.RoundOver || match.WinnerIndex != -1 {
		t.Fatalf("state = %v winner = %d, want a draw", match.State, match.WinnerIndex)
	}
}

func TestGhosts(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")

	if MakeGhost(a.entry) {
		t.Fatal("living player became a ghost")
	}
	Hit(e, a.entry, 500)
	if MakeGhost(a.entry) {
		t.Fatal("dying player became a ghost")
	}

	a.player().Lifecycle = components.Dead
	if !MakeGhost(a.entry) {
		t.Fatal("dead player not turned into a ghost")
	}
	p := a.player()
	if !p.IsGhost() || p.IsLying() || p.InGame || p.BodyAlpha != cfg.Round.GhostAlpha {
		t.Fatalf("ghost state wrong: %+v", p)
	}
	if MakeGhost(a.entry) {
		t.Fatal("ghost turned into a ghost twice")
	}
	if err := ValidatePlayer(a.entry); err != nil {
		t.Fatal(err)
	}

	// Ghosts are never hit
	b := spawnPlayer(t, e, "bob", 6, 5, "pistol")
	before := p.Life
	HitByShot(e, a.entry, shotFrom(b, 50), 50, true, centerOf(a.entry), components.Vector{X: -200})
	if p.Life != before {
		t.Fatal("ghost damaged")
	}
}
