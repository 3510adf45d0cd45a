package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/duelcore/arena"
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input/ebitenctl"
	"github.com/automoto/duelcore/levels"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/automoto/duelcore/systems"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/automoto/duelcore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
)

const scale = 3

var (
	wallColor   = color.RGBA{0x55, 0x55, 0x66, 0xff}
	waterColor  = color.RGBA{0x22, 0x55, 0xcc, 0x99}
	shotColor   = color.RGBA{0xff, 0xee, 0x88, 0xff}
	pickupColor = color.RGBA{0x44, 0xdd, 0x66, 0xff}
	playerColor = []color.RGBA{
		{0xe0, 0x40, 0x40, 0xff},
		{0x40, 0x90, 0xe0, 0xff},
		{0xe0, 0xc0, 0x40, 0xff},
		{0xa0, 0x50, 0xe0, 0xff},
	}
)

// Game is a local hot-seat viewer: keyboard players and bots in one arena,
// drawn as plain boxes.
type Game struct {
	arena *arena.Arena
	level *components.LevelData
	pixel *ebiten.Image
}

func NewGame(level *leveldata.Level, schemes []string, bots int) (*Game, error) {
	a := arena.New(level)
	for _, scheme := range schemes {
		controls, err := ebitenctl.Keyboard(scheme)
		if err != nil {
			return nil, err
		}
		a.AddPlayer(factory.PlayerOptions{
			Index:    -1,
			Person:   profile.NewPerson(scheme),
			Controls: controls,
			Listener: systems.LoggingListener{},
		})
	}
	for i, id := range ebitenctl.ConnectedGamepads() {
		a.AddPlayer(factory.PlayerOptions{
			Index:    -1,
			Person:   profile.NewPerson(fmt.Sprintf("pad %d", i+1)),
			Controls: ebitenctl.Gamepad(id),
		})
	}
	for i := 0; i < bots; i++ {
		a.AddBot(profile.NewPerson(fmt.Sprintf("bot %d", i+1)), config.BotDifficultyNormal)
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Game{
		arena: a,
		level: systems.GetLevel(a.ECS()),
		pixel: pixel,
	}, nil
}

func (g *Game) Update() error {
	g.arena.Step(1 / float64(ebiten.TPS()))
	g.arena.DrainSounds()
	g.arena.DrainFeedback()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	l := g.level
	for ty := 0; ty < l.Height; ty++ {
		for tx := 0; tx < l.Width; tx++ {
			x, y := float64(tx)*l.TileSize, float64(ty)*l.TileSize
			i := ty*l.Width + tx
			switch {
			case l.Walls[i]:
				g.rect(screen, x, y, l.TileSize, l.TileSize, wallColor, 1)
			case l.Water[i] != components.WaterNone:
				g.rect(screen, x, y, l.TileSize, l.TileSize, waterColor, 1)
			}
		}
	}

	world := g.arena.World()
	tags.Elevator.Each(world, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		g.rect(screen, o.X, o.Y, o.W, o.H, wallColor, 1)
	})
	tags.Pickup.Each(world, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		g.rect(screen, o.X, o.Y, o.W, o.H, pickupColor, 1)
	})
	tags.Shot.Each(world, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		g.rect(screen, o.X, o.Y, o.W, o.H, shotColor, 1)
	})

	for _, entry := range g.arena.Players() {
		p := components.Player.Get(entry)
		sprite := components.Sprite.Get(entry)
		if !sprite.Visible {
			continue
		}
		o := components.Object.Get(entry)
		c := playerColor[p.Index%len(playerColor)]
		g.rect(screen, o.X, o.Y, o.W, o.H, c, float32(sprite.Alpha))
		if sprite.Gun.Visible {
			gx := o.X + o.W
			if sprite.Orientation == components.Left {
				gx = o.X - o.W/2
			}
			g.rect(screen, gx, o.Y+o.H*0.3, o.W/2, o.H*0.15, shotColor, float32(sprite.Gun.Alpha))
		}
		if sprite.IndicatorTime > 0 {
			label := fmt.Sprintf("%d %s %s", int(p.Life), sprite.Anim, p.Person.Name)
			ebitenutil.DebugPrintAt(screen, label, int(o.X)*scale, int(o.Y)*scale-16)
		}
	}

	match := g.arena.Match()
	hud := fmt.Sprintf("round %d  %s", match.Round, match.State)
	for _, s := range match.Scores {
		hud += fmt.Sprintf("  P%d: %d kills %d wins", s.PlayerIndex, s.Kills, s.Wins)
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) rect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w*scale, h*scale)
	op.GeoM.Translate(x*scale, y*scale)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(g.pixel, op)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(g.level.PixelWidth()) * scale, int(g.level.PixelHeight()) * scale
}

func main() {
	bots := flag.Int("bots", 1, "Number of bots to add")
	tuning := flag.String("tuning", "", "YAML tuning file")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	level, err := leveldata.LoadLevel(levels.FS, config.Server.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	game, err := NewGame(level, []string{"arrows", "wasd"}, *bots)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("duelcore")
	ebiten.SetTPS(config.Server.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
