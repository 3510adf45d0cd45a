// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Width     int // tiles
	Height    int // tiles
	TileSize  float64
	Walls     []bool   // row-major, Width*Height
	Water     []string // row-major water kind name, "" when dry
	Spawns    []SpawnPoint
	Elevators []ElevatorPath
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// ElevatorPath is a platform that travels DX, DY from its start and back.
type ElevatorPath struct {
	X, Y, W, H float64
	DX, DY     float64
	Duration   float64 // seconds one way
}

// TileIndex returns the row-major index of a tile.
func (l *Level) TileIndex(x, y int) int {
	return y*l.Width + x
}
