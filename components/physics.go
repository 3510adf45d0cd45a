package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(f float64) Vector { return Vector{v.X * f, v.Y * f} }
func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }

// Unit returns v scaled to length 1, or the zero vector.
func (v Vector) Unit() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// PhysicsData is the player's physical body. Speeds are world pixels per
// second; positive Y points down.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
	// Pending vertical impulse, consumed by the next integration.
	AccelY float64
	// Knockback from hits, added to the speed by the next integration.
	External Vector

	Width  float64
	Height float64

	OnGround         bool
	OnElevator       *donburi.Entry
	UnderHardSurface bool
	InWall           bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

// OnHardSurface reports standing on a wall or an elevator.
func (p *PhysicsData) OnHardSurface() bool {
	return p.OnGround || p.OnElevator != nil
}

func (p *PhysicsData) Rising() bool {
	return p.SpeedY < 0
}

func (p *PhysicsData) Velocity() Vector {
	return Vector{p.SpeedX, p.SpeedY}
}
