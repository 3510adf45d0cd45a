package components

import "github.com/yohamta/donburi"

type WaterKind int

const (
	WaterNone WaterKind = iota
	WaterBlue
	WaterRed
	WaterGreen
)

// ParseWaterKind maps a level tile property to a kind.
func ParseWaterKind(s string) WaterKind {
	switch s {
	case "blue":
		return WaterBlue
	case "red":
		return WaterRed
	case "green":
		return WaterGreen
	}
	return WaterNone
}

// WaterData records which water the head and feet were in last frame.
type WaterData struct {
	Head WaterKind
	Feet WaterKind
}

var Water = donburi.NewComponentType[WaterData]()
