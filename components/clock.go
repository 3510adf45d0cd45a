package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock singleton.
type ClockData struct {
	DT    float64
	Time  float64
	Frame int
	Rand  *rand.Rand
}

var Clock = donburi.NewComponentType[ClockData]()
