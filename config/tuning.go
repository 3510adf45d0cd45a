package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Tuning is the YAML overlay for the gameplay tables. Sections and fields
// left out of the document keep their current values.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Combat  CombatConfig  `yaml:"combat"`
	Water   WaterConfig   `yaml:"water"`
	Round   RoundConfig   `yaml:"round"`
	Bonus   BonusConfig   `yaml:"bonus"`
	Server  ServerConfig  `yaml:"server"`
}

// CurrentTuning snapshots the live tables.
func CurrentTuning() Tuning {
	return Tuning{
		Player:  Player,
		Physics: Physics,
		Combat:  Combat,
		Water:   Water,
		Round:   Round,
		Bonus:   Bonus,
		Server:  Server,
	}
}

// Apply installs t as the live tables.
func (t Tuning) Apply() {
	Player = t.Player
	Physics = t.Physics
	Combat = t.Combat
	Water = t.Water
	Round = t.Round
	Bonus = t.Bonus
	Server = t.Server
}

// ApplyTuning overlays a YAML document onto the live tables. Nothing is
// changed when the document fails to parse or validate.
func ApplyTuning(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if t.Player.MaxLife <= 0 || t.Player.MaxAir <= 0 {
		return fmt.Errorf("config: tuning: maxLife and maxAir must be positive")
	}
	if t.Server.TickRate <= 0 {
		return fmt.Errorf("config: tuning: tickRate must be positive")
	}
	t.Apply()
	return nil
}

// LoadTuning reads and applies a tuning file.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// TuningWatcher reports changed YAML files in the watched directories.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func WatchTuning(dirs ...string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	tw := &TuningWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *TuningWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !isTuningFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isTuningFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
