package components

import "github.com/yohamta/donburi"

// EventListener observes combat outcomes for one player. Damage hooks may
// veto the damage by returning false; kill hooks may veto the points.
type EventListener interface {
	OnDamageByShot(victim, shooter *donburi.Entry, shot *ShotData, amount float64, directHit bool) bool
	OnDamageByEnv(victim *donburi.Entry, amount float64) bool
	OnKillByPlayer(victim, killer *donburi.Entry, shot *ShotData, suicide bool) bool
	OnKillByEnv(victim *donburi.Entry) bool
	OnSuicide(player *donburi.Entry, othersKilled []*donburi.Entry) bool
}
