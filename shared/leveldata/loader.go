package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	wallsLayer     = "walls"
	waterLayer     = "water"
	spawnGroup     = "PlayerSpawn"
	elevatorsGroup = "Elevators"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	n := levelMap.Width * levelMap.Height
	data := &Level{
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: float64(levelMap.TileWidth),
		Walls:    make([]bool, n),
		Water:    make([]string, n),
	}

	foundWalls := false
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case wallsLayer:
			foundWalls = true
			for i, tile := range layer.Tiles {
				if i < n && !tile.IsNil() {
					data.Walls[i] = true
				}
			}
		case waterLayer:
			for i, tile := range layer.Tiles {
				if i >= n || tile.IsNil() {
					continue
				}
				kind := "blue"
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if v := tilesetTile.Properties.GetString("water"); v != "" {
						kind = v
					}
				}
				data.Water[i] = kind
			}
		}
	}
	if !foundWalls {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, wallsLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case spawnGroup:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case elevatorsGroup:
			for _, o := range og.Objects {
				path := ElevatorPath{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					DX:       o.Properties.GetFloat("dx"),
					DY:       o.Properties.GetFloat("dy"),
					Duration: o.Properties.GetFloat("duration"),
				}
				if path.Duration <= 0 {
					return nil, fmt.Errorf("load TMX %s: elevator %d needs a positive duration", tmxPath, o.ID)
				}
				data.Elevators = append(data.Elevators, path)
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
