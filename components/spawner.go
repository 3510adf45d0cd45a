package components

import "github.com/yohamta/donburi"

// BonusSpawnerData paces random bonus placement (singleton component)
type BonusSpawnerData struct {
	Cooldown float64
}

var BonusSpawner = donburi.NewComponentType[BonusSpawnerData]()
