package systems

import (
	"math"
	"testing"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 1.0 / 60

// box10 is a closed room with its floor top at y=96 and spawns on row 5.
var box10 = []string{
	"##########",
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"#.S...S..#",
	"##########",
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// testLevel builds a level from rows of tiles: '#' wall, 'b'/'r'/'g'
// water, 'S' a spawn on an empty tile.
func testLevel(rows ...string) *leveldata.Level {
	l := &leveldata.Level{
		Width:    len(rows[0]),
		Height:   len(rows),
		TileSize: cfg.BlockSize,
	}
	l.Walls = make([]bool, l.Width*l.Height)
	l.Water = make([]string, l.Width*l.Height)
	for y, row := range rows {
		for x, c := range row {
			i := l.TileIndex(x, y)
			switch c {
			case '#':
				l.Walls[i] = true
			case 'b':
				l.Water[i] = "blue"
			case 'r':
				l.Water[i] = "red"
			case 'g':
				l.Water[i] = "green"
			case 'S':
				l.Spawns = append(l.Spawns, leveldata.SpawnPoint{
					X:     float64(x) * l.TileSize,
					Y:     float64(y) * l.TileSize,
					Index: len(l.Spawns),
				})
			}
		}
	}
	return l
}

func newTestECS(t *testing.T, rows ...string) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateClock(e)
	GetOrCreateMatch(e)
	factory.CreateLevel(e, testLevel(rows...))
	return e
}

type testPlayer struct {
	entry    *donburi.Entry
	switches *[cfg.ButtonCount]input.Switch
}

func (tp testPlayer) player() *components.PlayerData {
	return components.Player.Get(tp.entry)
}

func (tp testPlayer) physics() *components.PhysicsData {
	return components.Physics.Get(tp.entry)
}

func (tp testPlayer) object() *components.ObjectData {
	return components.Object.Get(tp.entry)
}

func (tp testPlayer) person() *profile.Person {
	return tp.player().Person
}

// press holds exactly the given buttons.
func (tp testPlayer) press(buttons ...cfg.ButtonID) {
	var s input.ControllerState
	for _, b := range buttons {
		s = s.With(b)
	}
	input.Set(tp.switches, s)
}

// spawnPlayer puts a player in the game at a tile, armed with the named
// weapon ("" for none) and without spawn invulnerability.
func spawnPlayer(t *testing.T, e *ecs.ECS, name string, tx, ty int, weapon string) testPlayer {
	t.Helper()
	controls, switches := input.Switches()
	index := len(Players(e))
	entry := factory.CreatePlayer(e, 0, 0, factory.PlayerOptions{
		Index:    index,
		Person:   profile.NewPerson(name),
		Controls: controls,
	})

	var w components.Weapon
	ammo := 0
	if weapon != "" {
		pw, err := NewWeapon(weapon)
		if err != nil {
			t.Fatalf("NewWeapon(%q): %v", weapon, err)
		}
		w, ammo = pw, pw.Def.Bullets
	}
	StartRound(e, entry, w, ammo, float64(tx)*cfg.BlockSize, float64(ty)*cfg.BlockSize)
	SetEffect(e, entry, components.EffectNone, 0)
	components.Player.Get(entry).Orientation = components.Right
	return testPlayer{entry: entry, switches: switches}
}

// step runs one frame of the player pipeline in arena order.
func step(e *ecs.ECS, dt float64) {
	Advance(e, dt)
	UpdateElevators(e)
	UpdateControls(e)
	UpdatePlayers(e)
	UpdateShots(e)
	UpdatePresentation(e)
	UpdateAnimations(e)
	UpdateMessages(e)
}

func steps(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		step(e, frame)
	}
}

func hasSound(sounds []cfg.SoundID, want cfg.SoundID) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}
