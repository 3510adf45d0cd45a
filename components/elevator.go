package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ElevatorData moves a platform along a straight path and back.
type ElevatorData struct {
	Tween  *gween.Sequence
	Start  Vector
	Travel Vector
	// Displacement and velocity of the last step.
	Delta    Vector
	Velocity Vector
}

var Elevator = donburi.NewComponentType[ElevatorData]()
