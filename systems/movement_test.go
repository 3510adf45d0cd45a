package systems

import (
	"math"
	"testing"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
)

func TestStandingOnFloor(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")

	steps(e, 30)

	if y := a.object().Y; y != 80 {
		t.Fatalf("y = %v, want 80", y)
	}
	if !a.physics().OnGround {
		t.Fatal("not on ground")
	}
	if got := components.Sprite.Get(a.entry).Anim; got != cfg.AnimStand {
		t.Fatalf("anim = %v, want stand", got)
	}
}

func TestWalkLeftTurnsAndMoves(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 6, 5, "pistol")
	startX := a.object().X

	a.press(cfg.ButtonLeft)
	steps(e, 20)

	if a.object().X >= startX {
		t.Fatalf("x = %v, want less than %v", a.object().X, startX)
	}
	if a.player().Orientation != components.Left {
		t.Fatal("orientation not left")
	}
	if got := components.Sprite.Get(a.entry).Anim; got != cfg.AnimWalk {
		t.Fatalf("anim = %v, want walk", got)
	}

	a.press()
	steps(e, 60)
	if a.physics().SpeedX != 0 {
		t.Fatalf("speed x = %v after release, want 0", a.physics().SpeedX)
	}
}

func TestWalkStopsAtWall(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")

	a.press(cfg.ButtonLeft)
	steps(e, 120)

	if x := a.object().X; !near(x, 16) {
		t.Fatalf("x = %v, want flush with the wall at 16", x)
	}
	if a.physics().InWall {
		t.Fatal("body ended inside the wall")
	}
}

func TestJump(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")

	a.press(cfg.ButtonUp)
	step(e, frame)

	phys := a.physics()
	if !phys.Rising() {
		t.Fatalf("speed y = %v, want rising", phys.SpeedY)
	}
	if phys.OnGround {
		t.Fatal("still on ground after jumping")
	}
	if !hasSound(DrainSounds(e), cfg.SoundJump) {
		t.Fatal("no jump sound")
	}
	if got := components.Sprite.Get(a.entry).Anim; got != cfg.AnimJump {
		t.Fatalf("anim = %v, want jump", got)
	}

	// Holding up does not jump again on landing until released
	a.press()
	steps(e, 120)
	if !a.physics().OnGround || !near(a.object().Y, 80) {
		t.Fatalf("did not land: y = %v", a.object().Y)
	}
}

func TestDoubleJump(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")

	// Jump, then two more presses in the air: the first arms, the second fires
	presses := []bool{true, false, true, false}
	for _, p := range presses {
		if p {
			a.press(cfg.ButtonUp)
		} else {
			a.press()
		}
		step(e, frame)
	}
	before := a.physics().SpeedY
	if !a.player().Flags.Has(components.FlagDoubleJumpDebounce) {
		t.Fatal("second press did not arm the double jump")
	}

	a.press(cfg.ButtonUp)
	step(e, frame)

	after := a.physics().SpeedY
	jump := -cfg.Player.JumpVelocity * cfg.BlockSize
	gravity := cfg.Physics.Gravity * cfg.BlockSize * frame
	if !near(after, jump+gravity) {
		t.Fatalf("speed y = %v, want %v", after, jump+gravity)
	}
	if after >= before {
		t.Fatalf("double jump did not boost: %v -> %v", before, after)
	}
	if a.player().Flags.Has(components.FlagDoubleJumpReset) {
		t.Fatal("double jump reset still set")
	}

	// No third jump before landing
	a.press()
	step(e, frame)
	a.press(cfg.ButtonUp)
	step(e, frame)
	if a.player().Flags.Has(components.FlagDoubleJumpDebounce) {
		t.Fatal("double jump re-armed in the air")
	}
}

func TestKneelStopsSidewaysMotion(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 4, 5, "pistol")

	a.press(cfg.ButtonDown, cfg.ButtonRight)
	step(e, frame)

	p := a.player()
	if !p.IsKneeling() {
		t.Fatal("not kneeling")
	}
	if p.Flags.Has(components.FlagMoveRight) {
		t.Fatal("kneeling player still moving right")
	}
	want := cfg.Player.KneelHeight * cfg.BlockSize
	if h := a.object().H; h != want {
		t.Fatalf("height = %v, want %v", h, want)
	}
	if bottom := a.object().Y + a.object().H; !near(bottom, 96) {
		t.Fatalf("feet at %v, want 96", bottom)
	}
	if got := components.Sprite.Get(a.entry).Anim; got != cfg.AnimDuck {
		t.Fatalf("anim = %v, want duck", got)
	}

	a.press()
	step(e, frame)
	if a.player().IsKneeling() || a.object().H != cfg.Player.Height*cfg.BlockSize {
		t.Fatal("did not stand up after releasing down")
	}
}

func TestSpeedFactors(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 2, 5, "pistol")
	p := a.player()

	tests := []struct {
		name  string
		setup func()
		want  float64
	}{
		{"armed at full life", func() {}, cfg.Player.ArmedBase - cfg.Player.MaxLife/cfg.Player.ArmedLifeDivisor},
		{"armed and hurt", func() { p.Life = 50 }, cfg.Player.ArmedBase - 50/cfg.Player.ArmedLifeDivisor},
		{"unarmed", func() { p.Flags.Clear(components.FlagHasGun) }, cfg.Player.UnarmedFactor},
		{"fast movement", func() {
			SetEffect(e, a.entry, components.EffectFastMovement, 5)
		}, cfg.Bonus.FastMovementFactor},
		{"temporary skin", func() {
			p.Flags.Clear(components.FlagHasGun)
			p.TempSkinTime = 3
		}, cfg.Player.TemporarySkinSlow * cfg.Player.UnarmedFactor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Life = cfg.Player.MaxLife
			p.Flags.Set(components.FlagHasGun)
			p.TempSkinTime = 0
			SetEffect(e, a.entry, components.EffectNone, 0)
			tt.setup()
			if got := Speed(a.entry); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Speed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStuckPlayerIsMovedToStart(t *testing.T) {
	e := newTestECS(t, box10...)
	a := spawnPlayer(t, e, "ann", 6, 5, "pistol")

	placeBody(a.entry, 0, 32)
	if !a.physics().InWall {
		t.Fatal("body in the wall not detected")
	}

	checkStuck(e, a.entry, cfg.Player.StuckTimeout/2)
	if a.object().X != 0 {
		t.Fatal("moved before the timeout")
	}
	checkStuck(e, a.entry, cfg.Player.StuckTimeout)

	start := GetLevel(e).StartingPositions()[0]
	if a.object().X != start.X || a.object().Y != start.Y {
		t.Fatalf("at %v,%v, want first start %v,%v", a.object().X, a.object().Y, start.X, start.Y)
	}
	if a.player().TimeStuckInWall != 0 {
		t.Fatal("stuck timer not reset")
	}
}
