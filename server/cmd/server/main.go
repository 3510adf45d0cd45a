package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/levels"
	"github.com/automoto/duelcore/profile"
	"github.com/automoto/duelcore/server/core"
	"github.com/automoto/duelcore/shared/leveldata"
	"github.com/automoto/duelcore/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 0, "Server tick rate (updates per second, 0 = tuning default)")
	name := flag.String("name", "", "Server display name")
	levelPath := flag.String("level", "", "TMX level file (empty = bundled arena)")
	tuning := flag.String("tuning", "", "YAML tuning file")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	bots := flag.Int("bots", 0, "Number of bots to add")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty (easy, normal, hard)")
	profiles := flag.Bool("profiles", true, "Persist player profiles in the save-data directory")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *name == "" {
		*name = config.Server.Name
	}

	botDifficulty, err := config.ParseBotDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}

	level, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	var store profile.Store
	if *profiles {
		gs, err := profile.OpenStore(config.Server.AppName)
		if err != nil {
			log.Fatalf("Failed to open profiles: %v", err)
		}
		store = gs
	}

	server, err := core.NewServer(core.Options{
		Name:          *name,
		TickRate:      *tickRate,
		Level:         level,
		Store:         store,
		Bots:          *bots,
		BotDifficulty: botDifficulty,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if *watch && *tuning != "" {
		watcher, err := config.WatchTuning(filepath.Dir(*tuning))
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer watcher.Close()
		go reloadTuning(server, watcher, *tuning)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (%dx%d level, bots: %d)", *name, *port, level.Width, level.Height, *bots)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func loadLevel(path string) (*leveldata.Level, error) {
	var fsys fs.FS = levels.FS
	file := config.Server.Level
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		file = filepath.Base(path)
	}
	return leveldata.LoadLevel(fsys, file)
}

// reloadTuning applies changes on the game loop so a step never sees a
// half-applied tuning.
func reloadTuning(server *core.Server, watcher *config.TuningWatcher, path string) {
	want, _ := filepath.Abs(path)
	for {
		select {
		case changed, ok := <-watcher.Events:
			if !ok {
				return
			}
			if abs, _ := filepath.Abs(changed); abs != want {
				continue
			}
			server.Enqueue(func() {
				if err := config.LoadTuning(path); err != nil {
					log.Printf("[tuning] reload failed: %v", err)
					return
				}
				log.Printf("[tuning] reloaded %s", path)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[tuning] watcher error: %v", err)
		}
	}
}
