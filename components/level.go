package components

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData is the loaded arena. Tiles are indexed row-major from the top
// left corner.
type LevelData struct {
	Space    *resolv.Space
	Width    int
	Height   int
	TileSize float64
	Walls    []bool
	Water    []WaterKind
	Starts   []Vector
}

var Level = donburi.NewComponentType[LevelData]()

func (l *LevelData) index(x, y float64) (int, bool) {
	tx := int(math.Floor(x / l.TileSize))
	ty := int(math.Floor(y / l.TileSize))
	if tx < 0 || ty < 0 || tx >= l.Width || ty >= l.Height {
		return 0, false
	}
	return ty*l.Width + tx, true
}

// WaterAt returns the water kind at a world position. Positions outside the
// level are dry.
func (l *LevelData) WaterAt(x, y float64) WaterKind {
	i, ok := l.index(x, y)
	if !ok || l.Water == nil {
		return WaterNone
	}
	return l.Water[i]
}

// IsWall reports a solid tile at a world position. Outside the level
// counts as solid.
func (l *LevelData) IsWall(x, y float64) bool {
	i, ok := l.index(x, y)
	if !ok {
		return true
	}
	return l.Walls[i]
}

// StartingPositions lists the spawn points in level order.
func (l *LevelData) StartingPositions() []Vector {
	return l.Starts
}

func (l *LevelData) PixelWidth() float64 { return float64(l.Width) * l.TileSize }
func (l *LevelData) PixelHeight() float64 { return float64(l.Height) * l.TileSize }
