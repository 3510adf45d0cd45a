package core

import (
	"reflect"
	"sync"
	"testing"

	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/levels"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/automoto/duelcore/shared/messages"
	"github.com/automoto/duelcore/shared/netcomponents"
	"github.com/automoto/duelcore/shared/protocol"
)

var registerOnce sync.Once

type fakePeer struct {
	sent []any
}

func (p *fakePeer) SendMessage(msg any) error {
	p.sent = append(p.sent, msg)
	return nil
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	registerOnce.Do(func() {
		if err := protocol.RegisterComponents(); err != nil {
			t.Fatalf("RegisterComponents: %v", err)
		}
	})
	level, err := leveldata.LoadLevel(levels.FS, cfg.Server.Level)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	opts.Level = level
	if opts.Name == "" {
		opts.Name = "test"
	}
	s, err := NewServer(opts)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func TestJoinAccepted(t *testing.T) {
	s := newTestServer(t, Options{TickRate: 30})
	peer := &fakePeer{}

	s.join(peer, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})

	if len(peer.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(peer.sent))
	}
	accepted, ok := peer.sent[0].(messages.JoinAccepted)
	if !ok {
		t.Fatalf("sent %T, want JoinAccepted", peer.sent[0])
	}
	if accepted.ServerName != "test" || accepted.TickRate != 30 {
		t.Fatalf("accepted = %+v", accepted)
	}
	if s.PlayerCount() != 1 || len(s.Arena().Players()) != 1 {
		t.Fatalf("sessions = %d players = %d, want 1/1", s.PlayerCount(), len(s.Arena().Players()))
	}
	entry := s.sessions[peer].entry
	if name := components.Player.Get(entry).Person.Name; name != "ann" {
		t.Fatalf("person = %q, want ann", name)
	}
	if !entry.HasComponent(netcomponents.NetPlayerState) {
		t.Fatal("player not synced")
	}
}

func TestJoinTwiceIgnored(t *testing.T) {
	s := newTestServer(t, Options{})
	peer := &fakePeer{}

	s.join(peer, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})
	s.join(peer, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})

	if len(peer.sent) != 1 || len(s.Arena().Players()) != 1 {
		t.Fatalf("sent = %d players = %d, want 1/1", len(peer.sent), len(s.Arena().Players()))
	}
}

func TestJoinDefaultName(t *testing.T) {
	s := newTestServer(t, Options{})
	peer := &fakePeer{}

	s.join(peer, messages.JoinRequest{Version: messages.ProtocolVersion})

	if name := components.Player.Get(s.sessions[peer].entry).Person.Name; name != "Player" {
		t.Fatalf("person = %q, want Player", name)
	}
}

func TestJoinRejectedWhenFull(t *testing.T) {
	old := cfg.Server.MaxPlayers
	cfg.Server.MaxPlayers = 1
	defer func() { cfg.Server.MaxPlayers = old }()

	s := newTestServer(t, Options{})
	s.join(&fakePeer{}, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})
	late := &fakePeer{}
	s.join(late, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "bob"})

	want := []any{messages.JoinRejected{Reason: "server is full"}}
	if !reflect.DeepEqual(late.sent, want) {
		t.Fatalf("sent = %+v, want %+v", late.sent, want)
	}
	if s.PlayerCount() != 1 {
		t.Fatalf("sessions = %d, want 1", s.PlayerCount())
	}
}

func TestJoinRejectedOnVersionMismatch(t *testing.T) {
	s := newTestServer(t, Options{})
	peer := &fakePeer{}

	s.join(peer, messages.JoinRequest{Version: "duelcore/0", PlayerName: "ann"})

	want := []any{messages.JoinRejected{Reason: "version mismatch"}}
	if !reflect.DeepEqual(peer.sent, want) {
		t.Fatalf("sent = %+v, want %+v", peer.sent, want)
	}
	if s.PlayerCount() != 0 || len(s.Arena().Players()) != 0 {
		t.Fatal("player added despite the version mismatch")
	}
}

func TestApplyInput(t *testing.T) {
	s := newTestServer(t, Options{})
	peer := &fakePeer{}
	s.join(peer, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})
	sess := s.sessions[peer]

	in := messages.NewPlayerInput(5)
	in.Buttons[cfg.ButtonLeft] = true
	in.Buttons[cfg.ButtonCount+3] = true
	s.applyInput(peer, in)

	if !sess.switches[cfg.ButtonLeft].Down {
		t.Fatal("left not held")
	}
	if got := netcomponents.NetPlayerState.Get(sess.entry).LastSequence; got != 5 {
		t.Fatalf("last sequence = %d, want 5", got)
	}

	s.applyInput(peer, messages.NewPlayerInput(3))
	if !sess.switches[cfg.ButtonLeft].Down {
		t.Fatal("stale input applied")
	}

	s.applyInput(peer, messages.NewPlayerInput(6))
	if sess.switches[cfg.ButtonLeft].Down {
		t.Fatal("left still held after release")
	}

	// Unknown peers are ignored
	s.applyInput(&fakePeer{}, in)
}

func TestLeaveRemovesPlayerAndSaves(t *testing.T) {
	store := &profile.MemoryStore{}
	s := newTestServer(t, Options{Store: store})
	peer := &fakePeer{}
	s.join(peer, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})
	entry := s.sessions[peer].entry

	s.leave(peer)

	if s.PlayerCount() != 0 || entry.Valid() {
		t.Fatal("player still in the game")
	}
	if store.Data == nil {
		t.Fatal("profiles not saved")
	}
	persons, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(persons) != 1 || persons[0].Name != "ann" {
		t.Fatalf("saved = %+v, want ann", persons)
	}

	s.leave(peer)
}

func TestBotsGetListeners(t *testing.T) {
	s := newTestServer(t, Options{Bots: 2, BotDifficulty: cfg.BotDifficultyEasy})

	players := s.Arena().Players()
	if len(players) != 2 {
		t.Fatalf("players = %d, want 2", len(players))
	}
	for _, entry := range players {
		if _, ok := components.Player.Get(entry).Listener.(*eventListener); !ok {
			t.Fatal("bot without the server listener")
		}
		if !entry.HasComponent(components.Bot) {
			t.Fatal("bot component missing")
		}
	}
}

func TestRoundStartBroadcast(t *testing.T) {
	s := newTestServer(t, Options{})
	ann, bob := &fakePeer{}, &fakePeer{}
	s.join(ann, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})
	s.join(bob, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "bob"})

	s.Tick()

	for _, peer := range []*fakePeer{ann, bob} {
		found := false
		for _, msg := range peer.sent {
			if evt, ok := msg.(messages.RoundEvent); ok && evt.Started && evt.Round == 1 {
				found = true
			}
		}
		if !found {
			t.Fatalf("no round start in %+v", peer.sent)
		}
	}
}

func TestEnqueueRunsOnTick(t *testing.T) {
	s := newTestServer(t, Options{})
	ran := 0
	s.Enqueue(func() { ran++ })
	s.Enqueue(func() { ran++ })

	s.Tick()
	s.Tick()

	if ran != 2 {
		t.Fatalf("ran %d commands, want 2", ran)
	}
}

func TestKillEventQueued(t *testing.T) {
	s := newTestServer(t, Options{})
	peer := &fakePeer{}
	s.join(peer, messages.JoinRequest{Version: messages.ProtocolVersion, PlayerName: "ann"})
	entry := s.sessions[peer].entry

	l := components.Player.Get(entry).Listener
	if !l.OnKillByEnv(entry) {
		t.Fatal("kill vetoed")
	}
	s.flushEvents()

	want := messages.KillEvent{VictimIndex: components.Player.Get(entry).Index, KillerIndex: -1}
	if got := peer.sent[len(peer.sent)-1]; got != want {
		t.Fatalf("last message = %+v, want %+v", got, want)
	}
}

func TestNewLines(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur []string
		want      []string
	}{
		{"nothing", nil, nil, nil},
		{"first", nil, []string{"a"}, []string{"a"}},
		{"unchanged", []string{"a", "b"}, []string{"a", "b"}, []string{}},
		{"appended", []string{"a"}, []string{"a", "b"}, []string{"b"}},
		{"front dropped", []string{"a", "b"}, []string{"b", "c"}, []string{"c"}},
		{"all replaced", []string{"a"}, []string{"x", "y"}, []string{"x", "y"}},
		{"all expired", []string{"a"}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newLines(tt.prev, tt.cur)
			if len(got) != len(tt.want) {
				t.Fatalf("newLines(%q, %q) = %q, want %q", tt.prev, tt.cur, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("newLines(%q, %q) = %q, want %q", tt.prev, tt.cur, got, tt.want)
				}
			}
		})
	}
}
