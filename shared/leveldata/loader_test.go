package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/duelcore/levels"
)

func TestLoadBundledArena(t *testing.T) {
	l, err := LoadLevel(levels.FS, "arena.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if l.Width != 20 || l.Height != 12 || l.TileSize != 16 {
		t.Fatalf("size = %dx%d@%v, want 20x12@16", l.Width, l.Height, l.TileSize)
	}

	walls := 0
	for _, w := range l.Walls {
		if w {
			walls++
		}
	}
	if walls != 74 {
		t.Fatalf("wall tiles = %d, want 74", walls)
	}
	if !l.Walls[l.TileIndex(0, 0)] || l.Walls[l.TileIndex(1, 1)] {
		t.Fatal("corner/open tiles decoded wrong")
	}

	if got := l.Water[l.TileIndex(8, 9)]; got != "blue" {
		t.Fatalf("water at (8,9) = %q, want blue", got)
	}
	if got := l.Water[l.TileIndex(7, 9)]; got != "" {
		t.Fatalf("water at (7,9) = %q, want dry", got)
	}

	if len(l.Spawns) != 4 {
		t.Fatalf("spawns = %d, want 4", len(l.Spawns))
	}
	for i := 1; i < len(l.Spawns); i++ {
		if l.Spawns[i-1].X > l.Spawns[i].X {
			t.Fatalf("spawns not sorted left to right: %+v", l.Spawns)
		}
	}

	if len(l.Elevators) != 1 {
		t.Fatalf("elevators = %d, want 1", len(l.Elevators))
	}
	if e := l.Elevators[0]; e.DY != -64 || e.Duration != 3 || e.W != 32 {
		t.Fatalf("elevator = %+v", e)
	}
}

const noWallsTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="decor" width="2" height="1">
  <data encoding="csv">
0,0
</data>
 </layer>
</map>
`

func TestLoadLevelRequiresWalls(t *testing.T) {
	fsys := fstest.MapFS{"bare.tmx": {Data: []byte(noWallsTMX)}}
	_, err := LoadLevel(fsys, "bare.tmx")
	if err == nil || !strings.Contains(err.Error(), "walls") {
		t.Fatalf("err = %v, want missing walls layer", err)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatal("LoadLevel on a missing file succeeded")
	}
}

func TestLoadAllLevels(t *testing.T) {
	all, names, err := LoadAllLevels(levels.FS, ".")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) == 0 || all[names[0]] == nil {
		t.Fatalf("LoadAllLevels = %v, %v", all, names)
	}
}
