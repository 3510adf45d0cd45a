package core

import (
	"log"
	"sync"

	"github.com/automoto/duelcore/arena"
	"github.com/automoto/duelcore/components"
	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/automoto/duelcore/shared/messages"
	"github.com/automoto/duelcore/shared/netcomponents"
	"github.com/automoto/duelcore/systems"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a server.
type Options struct {
	Name     string
	TickRate int
	Level    *leveldata.Level
	// Store may be nil to keep profiles in memory only.
	Store         profile.Store
	Bots          int
	BotDifficulty cfg.BotDifficulty
}

// Peer is the part of a network client the server talks to.
type Peer interface {
	SendMessage(msg any) error
}

type session struct {
	entry    *donburi.Entry
	switches *[cfg.ButtonCount]input.Switch
	sequence uint32
	shown    []string
}

// Server runs one arena and syncs it to connected clients.
type Server struct {
	arena     *arena.Arena
	loop      *GameLoop
	transport *transports.WsServerTransport
	name      string
	tickRate  int

	store  profile.Store
	roster *profile.Roster

	// Touched only from the game loop goroutine
	sessions  map[Peer]*session
	gameState donburi.Entity
	lastRound components.RoundState
	events    []any

	mu       sync.Mutex
	commands []func()
}

// NewServer builds the arena. Nothing is served until Start.
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Server.TickRate
	}
	store := opts.Store
	if store == nil {
		store = &profile.MemoryStore{}
	}
	roster, err := profile.LoadRoster(store)
	if err != nil {
		return nil, err
	}

	s := &Server{
		name:     opts.Name,
		tickRate: opts.TickRate,
		store:    store,
		roster:   roster,
		sessions: make(map[Peer]*session),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	s.arena = arena.New(opts.Level)
	world := s.arena.World()
	srvsync.UseEsync(world)

	s.gameState = world.Create(netcomponents.NetGameState)
	netcomponents.NetGameState.SetValue(world.Entry(s.gameState), netcomponents.NetGameStateData{
		Scores: make(map[int]int),
	})
	if err := srvsync.NetworkSync(world, &s.gameState, netcomponents.NetGameState); err != nil {
		return nil, err
	}

	for i := 0; i < opts.Bots; i++ {
		bot := s.arena.AddBot(profile.NewPerson(botName(i)), opts.BotDifficulty)
		s.attachListener(bot)
	}
	return s, nil
}

func botName(i int) string {
	names := []string{"Bot Alpha", "Bot Bravo", "Bot Charlie", "Bot Delta", "Bot Echo", "Bot Foxtrot"}
	return names[i%len(names)]
}

// Start registers the router callbacks and serves on the given port.
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()
	s.loop.Start()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the game loop, waits for the last tick and saves the profiles.
func (s *Server) Stop() {
	s.loop.Stop()
	s.saveProfiles()
}

// Arena returns the simulated match.
func (s *Server) Arena() *arena.Arena { return s.arena }

// Enqueue runs fn on the game loop before the next step.
func (s *Server) Enqueue(fn func()) {
	s.mu.Lock()
	s.commands = append(s.commands, fn)
	s.mu.Unlock()
}

// ProcessCommands runs every queued command in order.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	cmds := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

// Tick advances the arena by one server tick and flushes the events.
func (s *Server) Tick() {
	s.ProcessCommands()
	s.arena.Step(1 / float64(s.tickRate))
	s.collectEvents()
	s.flushEvents()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		s.Enqueue(func() { s.leave(client) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.Enqueue(func() { s.join(client, req) })
	})

	router.On(func(client *router.NetworkClient, in messages.PlayerInput) {
		s.Enqueue(func() { s.applyInput(client, in) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) join(peer Peer, req messages.JoinRequest) {
	if _, ok := s.sessions[peer]; ok {
		return
	}
	if req.Version != messages.ProtocolVersion {
		log.Printf("[server] rejected join from %q: version %q, want %q", req.PlayerName, req.Version, messages.ProtocolVersion)
		s.send(peer, messages.JoinRejected{Reason: "version mismatch"})
		return
	}
	if len(s.arena.Players()) >= cfg.Server.MaxPlayers {
		s.send(peer, messages.JoinRejected{Reason: "server is full"})
		return
	}

	name := req.PlayerName
	if name == "" {
		name = "Player"
	}
	controls, switches := input.Switches()
	entry := s.arena.AddPlayer(arenaPlayer(s.roster.Get(name), controls))
	s.attachListener(entry)

	entry.AddComponent(netcomponents.NetPosition)
	entry.AddComponent(netcomponents.NetVelocity)
	entry.AddComponent(netcomponents.NetPlayerState)
	entity := entry.Entity()
	err := srvsync.NetworkSync(s.arena.World(), &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetPlayerState,
	)
	if err != nil {
		log.Printf("[server] failed to set up network sync for %s: %v", name, err)
		s.arena.RemovePlayer(entry)
		s.send(peer, messages.JoinRejected{Reason: "internal error"})
		return
	}

	s.sessions[peer] = &session{entry: entry, switches: switches}

	accepted := messages.JoinAccepted{ServerName: s.name, TickRate: s.tickRate}
	if nid := esync.GetNetworkId(entry); nid != nil {
		accepted.NetworkID = *nid
	}
	s.send(peer, accepted)
	log.Printf("[server] %s joined as player %d", name, components.Player.Get(entry).Index)
}

func (s *Server) leave(peer Peer) {
	sess, ok := s.sessions[peer]
	if !ok {
		return
	}
	delete(s.sessions, peer)
	if sess.entry.Valid() {
		s.arena.RemovePlayer(sess.entry)
	}
	s.saveProfiles()
}

func (s *Server) applyInput(peer Peer, in messages.PlayerInput) {
	sess, ok := s.sessions[peer]
	if !ok || !sess.entry.Valid() {
		return
	}
	// Inputs can arrive out of order over the transport
	if in.Sequence < sess.sequence {
		return
	}
	sess.sequence = in.Sequence

	var state input.ControllerState
	for b, down := range in.Buttons {
		if down && b >= 0 && b < cfg.ButtonCount {
			state = state.With(b)
		}
	}
	input.Set(sess.switches, state)

	if sess.entry.HasComponent(netcomponents.NetPlayerState) {
		netcomponents.NetPlayerState.Get(sess.entry).LastSequence = in.Sequence
	}
}

func (s *Server) attachListener(entry *donburi.Entry) {
	p := components.Player.Get(entry)
	p.Listener = &eventListener{
		LoggingListener: systems.LoggingListener{Next: p.Listener},
		server:          s,
	}
}

func (s *Server) saveProfiles() {
	if err := s.store.Save(s.roster.Persons()); err != nil {
		log.Printf("[server] failed to save profiles: %v", err)
	}
}

// PlayerCount returns the number of connected clients.
func (s *Server) PlayerCount() int {
	return len(s.sessions)
}
