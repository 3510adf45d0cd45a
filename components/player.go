package components

import (
	"errors"
	"fmt"

	"github.com/automoto/duelcore/profile"
	"github.com/yohamta/donburi"
)

// Lifecycle is the primary player state.
type Lifecycle int

const (
	Alive Lifecycle = iota
	Dying
	Dead
)

func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Dead:
		return "dead"
	}
	return "unknown"
}

type Orientation int

const (
	Left  Orientation = -1
	Right Orientation = 1
)

// Sign is -1 for Left and 1 for Right.
func (o Orientation) Sign() float64 {
	if o == Left {
		return -1
	}
	return 1
}

func (o Orientation) Opposite() Orientation {
	if o == Left {
		return Right
	}
	return Left
}

// Flags are the secondary player states.
type Flags uint32

const (
	FlagMoveLeft Flags = 1 << iota
	FlagMoveRight
	FlagMoveUp
	FlagMoveDown
	FlagKnee
	FlagPick
	FlagHasGun
	FlagLying
	FlagShoot
	FlagShootDebounce
	FlagDoubleJump
	FlagDoubleJumpDebounce
	FlagDoubleJumpReset
	FlagGhost

	FlagMoveSides = FlagMoveLeft | FlagMoveRight
	FlagMoving    = FlagMoveLeft | FlagMoveRight | FlagMoveUp
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// HasAll reports whether every bit of flag is set.
func (f Flags) HasAll(flag Flags) bool { return f&flag == flag }

func (f *Flags) Set(flag Flags) { *f |= flag }
func (f *Flags) Clear(flag Flags) { *f &^= flag }

type PlayerData struct {
	Index    int
	Person   *profile.Person
	Listener EventListener

	Lifecycle   Lifecycle
	Flags       Flags
	Orientation Orientation
	InGame      bool

	Life float64
	Air  float64

	Weapon       Weapon
	Ammo         int
	TimeToReload float64

	TimeSinceHit    float64
	TimeStuckInWall float64
	TempSkinTime    float64
	RoundTime       float64
	RoundKills      int

	BodyAlpha float64
	Alpha     float64

	// Damage dealt to this player this life, by shooter entity.
	DamagedBy map[donburi.Entity]float64
}

var Player = donburi.NewComponentType[PlayerData]()

func (p *PlayerData) IsAlive() bool { return p.Lifecycle == Alive }
func (p *PlayerData) IsDying() bool { return p.Lifecycle == Dying }
func (p *PlayerData) IsDead() bool { return p.Lifecycle == Dead }
func (p *PlayerData) IsGhost() bool { return p.Flags.Has(FlagGhost) }

func (p *PlayerData) IsKneeling() bool { return p.Flags.Has(FlagKnee) }
func (p *PlayerData) IsPicking() bool { return p.Flags.Has(FlagPick) }
func (p *PlayerData) IsLying() bool { return p.Flags.Has(FlagLying) }
func (p *PlayerData) HasGun() bool { return p.Flags.Has(FlagHasGun) }
func (p *PlayerData) IsMoving() bool { return p.Flags.Has(FlagMoving) }

var ErrInvariant = errors.New("player invariant violated")

// Validate checks the relations between lifecycle, flags and gauges.
func (p *PlayerData) Validate(maxLife, maxAir float64, infiniteAmmo bool) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
	}
	if p.Life < 0 || p.Life > maxLife {
		return fail("life %v outside [0, %v]", p.Life, maxLife)
	}
	if p.Air < 0 || p.Air > maxAir {
		return fail("air %v outside [0, %v]", p.Air, maxAir)
	}
	if p.Ammo < 0 && !infiniteAmmo {
		return fail("ammo %d below zero", p.Ammo)
	}
	if p.IsPicking() && p.HasGun() {
		return fail("has gun while picking")
	}
	if !p.IsAlive() && !p.IsGhost() {
		if !p.IsLying() {
			return fail("%s player not lying", p.Lifecycle)
		}
		if p.Flags.Has(FlagKnee | FlagPick | FlagMoveLeft | FlagMoveRight | FlagMoveUp | FlagMoveDown) {
			return fail("%s player has motion flags %b", p.Lifecycle, p.Flags)
		}
	}
	if p.IsGhost() && !p.IsDead() {
		return fail("ghost while %s", p.Lifecycle)
	}
	return nil
}
