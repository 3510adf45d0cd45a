package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed weapons.yaml
var weaponsYAML []byte

// WeaponDef is one row of the weapon table.
type WeaponDef struct {
	Name       string  `yaml:"name"`
	Damage     float64 `yaml:"damage"`
	ShotSpeed  float64 `yaml:"shotSpeed"`
	Reload     float64 `yaml:"reload"`
	Bullets    int     `yaml:"bullets"`
	Chargeable bool    `yaml:"chargeable"`
	BlastRange float64 `yaml:"blastRange"`
	// Spread adds this many extra pellets above and below the main shot.
	Spread     int     `yaml:"spread"`
	ShotWidth  float64 `yaml:"shotWidth"`
	ShotHeight float64 `yaml:"shotHeight"`
}

var Weapons []WeaponDef

// ParseWeapons decodes a weapon table and checks every row.
func ParseWeapons(data []byte) ([]WeaponDef, error) {
	var defs []WeaponDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("config: parse weapons: %w", err)
	}
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("config: weapon %d: missing name", i)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("config: weapon %q: duplicate name", d.Name)
		}
		if d.Reload <= 0 {
			return nil, fmt.Errorf("config: weapon %q: reload must be positive", d.Name)
		}
		seen[d.Name] = true
	}
	return defs, nil
}

// WeaponByName returns the named weapon definition.
func WeaponByName(name string) (WeaponDef, bool) {
	for _, w := range Weapons {
		if w.Name == name {
			return w, true
		}
	}
	return WeaponDef{}, false
}

func init() {
	defs, err := ParseWeapons(weaponsYAML)
	if err != nil {
		panic(err)
	}
	Weapons = defs
}
