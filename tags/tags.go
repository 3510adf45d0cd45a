package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Wall     = donburi.NewTag().SetName("Wall")
	Elevator = donburi.NewTag().SetName("Elevator")
	Shot     = donburi.NewTag().SetName("Shot")
	Pickup   = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvElevator = "elevator"
	ResolvShot     = "shot"
	ResolvPickup   = "pickup"
)
