package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata"
)

const personsKey = "persons"

// Store loads and saves the person list.
type Store interface {
	Load() ([]*Person, error)
	Save(persons []*Person) error
}

// GDataStore keeps persons in the platform save-data directory.
type GDataStore struct {
	m *gdata.Manager
}

func OpenStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("profile: open save data: %w", err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) Load() ([]*Person, error) {
	data, err := s.m.LoadItem(personsKey)
	if err != nil {
		return nil, fmt.Errorf("profile: load %s: %w", personsKey, err)
	}
	// No saved persons yet
	if data == nil {
		return nil, nil
	}
	return decodePersons(data)
}

func (s *GDataStore) Save(persons []*Person) error {
	data, err := json.Marshal(persons)
	if err != nil {
		return fmt.Errorf("profile: encode persons: %w", err)
	}
	if err := s.m.SaveItem(personsKey, data); err != nil {
		return fmt.Errorf("profile: save %s: %w", personsKey, err)
	}
	return nil
}

// MemoryStore keeps the encoded list in memory.
type MemoryStore struct {
	Data []byte
}

func (s *MemoryStore) Load() ([]*Person, error) {
	if s.Data == nil {
		return nil, nil
	}
	return decodePersons(s.Data)
}

func (s *MemoryStore) Save(persons []*Person) error {
	data, err := json.Marshal(persons)
	if err != nil {
		return fmt.Errorf("profile: encode persons: %w", err)
	}
	s.Data = data
	return nil
}

func decodePersons(data []byte) ([]*Person, error) {
	var persons []*Person
	if err := json.Unmarshal(data, &persons); err != nil {
		return nil, fmt.Errorf("profile: decode persons: %w", err)
	}
	return persons, nil
}

// Roster indexes persons by name.
type Roster struct {
	byName map[string]*Person
}

func NewRoster(persons []*Person) *Roster {
	r := &Roster{byName: make(map[string]*Person, len(persons))}
	for _, p := range persons {
		if p == nil {
			continue
		}
		if _, dup := r.byName[p.Name]; dup {
			log.Printf("[profile] duplicate person %q, keeping the first", p.Name)
			continue
		}
		r.byName[p.Name] = p
	}
	return r
}

// Get returns the named person, creating a fresh one if needed.
func (r *Roster) Get(name string) *Person {
	if p, ok := r.byName[name]; ok {
		return p
	}
	p := NewPerson(name)
	r.byName[name] = p
	return p
}

// Persons lists everyone sorted by name.
func (r *Roster) Persons() []*Person {
	out := make([]*Person, 0, len(r.byName))
	for _, p := range r.byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadRoster reads the roster from s.
func LoadRoster(s Store) (*Roster, error) {
	persons, err := s.Load()
	if err != nil {
		return nil, err
	}
	return NewRoster(persons), nil
}
