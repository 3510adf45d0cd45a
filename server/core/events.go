package core

import (
	"log"

	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/input"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/shared/messages"
	"github.com/automoto/duelcore/systems"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/yohamta/donburi"
)

// eventListener logs like LoggingListener and also queues a KillEvent
// for every kill it lets through.
type eventListener struct {
	systems.LoggingListener
	server *Server
}

func (l *eventListener) OnKillByPlayer(victim, killer *donburi.Entry, shot *components.ShotData, suicide bool) bool {
	ok := l.LoggingListener.OnKillByPlayer(victim, killer, shot, suicide)
	if ok {
		evt := messages.KillEvent{
			VictimIndex: indexOf(victim),
			KillerIndex: indexOf(killer),
			Suicide:     suicide,
		}
		if shot != nil && shot.Weapon != nil {
			evt.Weapon = shot.Weapon.Name()
		}
		l.server.events = append(l.server.events, evt)
	}
	return ok
}

func (l *eventListener) OnKillByEnv(victim *donburi.Entry) bool {
	ok := l.LoggingListener.OnKillByEnv(victim)
	if ok {
		l.server.events = append(l.server.events, messages.KillEvent{
			VictimIndex: indexOf(victim),
			KillerIndex: -1,
		})
	}
	return ok
}

func indexOf(entry *donburi.Entry) int {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) {
		return -1
	}
	return components.Player.Get(entry).Index
}

func arenaPlayer(person *profile.Person, controls *input.PlayerControls) factory.PlayerOptions {
	return factory.PlayerOptions{
		Index:    -1,
		Person:   person,
		Controls: controls,
	}
}

// collectEvents turns what the last step queued into broadcast messages.
func (s *Server) collectEvents() {
	for _, id := range s.arena.DrainSounds() {
		s.events = append(s.events, messages.SoundEvent{Sound: int(id)})
	}

	world := s.arena.World()
	for _, fb := range s.arena.DrainFeedback() {
		target := -1
		if world.Valid(fb.Target) {
			target = indexOf(world.Entry(fb.Target))
		}
		s.events = append(s.events, messages.ImpactEvent{
			Kind:        int(fb.Kind),
			TargetIndex: target,
			X:           fb.At.X,
			Y:           fb.At.Y,
		})
	}

	match := s.arena.Match()
	if match.State != s.lastRound {
		switch match.State {
		case components.RoundPlaying:
			s.events = append(s.events, messages.RoundEvent{Round: match.Round, Started: true})
		case components.RoundOver:
			s.events = append(s.events, messages.RoundEvent{Round: match.Round, WinnerIndex: match.WinnerIndex})
			s.saveProfiles()
		}
		s.lastRound = match.State
	}
}

// flushEvents broadcasts the queued events and sends each client the
// messages that appeared on their screen since the last tick.
func (s *Server) flushEvents() {
	events := s.events
	s.events = nil

	for peer, sess := range s.sessions {
		for _, evt := range events {
			s.send(peer, evt)
		}
		if !sess.entry.Valid() {
			continue
		}
		lines := s.arena.Messages(sess.entry)
		for _, line := range newLines(sess.shown, lines) {
			s.send(peer, messages.ChatMessage{PlayerIndex: indexOf(sess.entry), Text: line})
		}
		sess.shown = lines
	}
}

// newLines returns the lines in cur that are not in prev. Both are in
// posting order and cur only drops lines from the front.
func newLines(prev, cur []string) []string {
	for start := 0; start <= len(prev); start++ {
		tail := prev[start:]
		if len(tail) > len(cur) {
			continue
		}
		match := true
		for i := range tail {
			if tail[i] != cur[i] {
				match = false
				break
			}
		}
		if match {
			return cur[len(tail):]
		}
	}
	return cur
}

func (s *Server) send(peer Peer, msg any) {
	if err := peer.SendMessage(msg); err != nil {
		log.Printf("[server] send %T: %v", msg, err)
	}
}
