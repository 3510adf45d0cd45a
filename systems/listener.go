package systems

import (
	"log"

	"github.com/automoto/duelcore/components"
	"github.com/yohamta/donburi"
)

// DefaultListener accepts every damage and kill. It is used for players
// created without a listener.
type DefaultListener struct{}

func (DefaultListener) OnDamageByShot(_, _ *donburi.Entry, _ *components.ShotData, _ float64, _ bool) bool {
	return true
}

func (DefaultListener) OnDamageByEnv(_ *donburi.Entry, _ float64) bool { return true }

func (DefaultListener) OnKillByPlayer(_, _ *donburi.Entry, _ *components.ShotData, _ bool) bool {
	return true
}

func (DefaultListener) OnKillByEnv(_ *donburi.Entry) bool { return true }

func (DefaultListener) OnSuicide(_ *donburi.Entry, _ []*donburi.Entry) bool { return true }

// LoggingListener logs kills and forwards every decision to Next.
type LoggingListener struct {
	Next components.EventListener
}

func (l LoggingListener) next() components.EventListener {
	if l.Next == nil {
		return DefaultListener{}
	}
	return l.Next
}

func (l LoggingListener) OnDamageByShot(victim, shooter *donburi.Entry, shot *components.ShotData, amount float64, directHit bool) bool {
	return l.next().OnDamageByShot(victim, shooter, shot, amount, directHit)
}

func (l LoggingListener) OnDamageByEnv(victim *donburi.Entry, amount float64) bool {
	return l.next().OnDamageByEnv(victim, amount)
}

func (l LoggingListener) OnKillByPlayer(victim, killer *donburi.Entry, shot *components.ShotData, suicide bool) bool {
	log.Printf("[combat] %s killed by %s (weapon %s)", playerName(victim), playerName(killer), weaponName(shot))
	return l.next().OnKillByPlayer(victim, killer, shot, suicide)
}

func (l LoggingListener) OnKillByEnv(victim *donburi.Entry) bool {
	log.Printf("[combat] %s drowned", playerName(victim))
	return l.next().OnKillByEnv(victim)
}

func (l LoggingListener) OnSuicide(player *donburi.Entry, othersKilled []*donburi.Entry) bool {
	log.Printf("[combat] %s killed themself, taking %d others", playerName(player), len(othersKilled))
	return l.next().OnSuicide(player, othersKilled)
}

func playerName(entry *donburi.Entry) string {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) {
		return "?"
	}
	if p := components.Player.Get(entry); p.Person != nil {
		return p.Person.Name
	}
	return "?"
}

func weaponName(shot *components.ShotData) string {
	if shot == nil || shot.Weapon == nil {
		return "?"
	}
	return shot.Weapon.Name()
}
