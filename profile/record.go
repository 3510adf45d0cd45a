package profile

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing required field")

// FieldError reports a record field that is absent or has the wrong type.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("profile: field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

type record struct {
	Name           string `json:"name"`
	Shots          int    `json:"shots"`
	Hits           int    `json:"hits"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assistances    int    `json:"assistances"`
	Wins           int    `json:"wins"`
	Penalties      int    `json:"penalties"`
	Games          int    `json:"games"`
	TimeAlive      int    `json:"timeAlive"`
	TotalGameTime  int    `json:"totalGameTime"`
	TotalDamage    int    `json:"totalDamage"`
	AssistedDamage int    `json:"assistedDamage"`
	Elo            int    `json:"elo"`
	EloTrend       int    `json:"eloTrend"`
	EloGames       int    `json:"eloGames"`
}

var requiredFields = []string{
	"name", "shots", "hits", "kills", "wins", "penalties", "games", "timeAlive", "totalGameTime",
}

// MarshalJSON writes every field, optional ones included.
func (p *Person) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Name:           p.Name,
		Shots:          p.Shots,
		Hits:           p.Hits,
		Kills:          p.Kills,
		Deaths:         p.Deaths,
		Assistances:    p.Assistances,
		Wins:           p.Wins,
		Penalties:      p.Penalties,
		Games:          p.Games,
		TimeAlive:      p.TimeAlive,
		TotalGameTime:  p.TotalGameTime,
		TotalDamage:    p.TotalDamage,
		AssistedDamage: p.AssistedDamage,
		Elo:            p.Elo,
		EloTrend:       p.EloTrend,
		EloGames:       p.EloGames,
	})
}

// UnmarshalJSON requires the counters every record has always carried and
// defaults the ones added later.
func (p *Person) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("profile: decode record: %w", err)
	}
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return &FieldError{Field: name, Err: ErrMissingField}
		}
	}

	r := record{Elo: DefaultElo}
	if err := json.Unmarshal(data, &r); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &FieldError{Field: typeErr.Field, Err: err}
		}
		return fmt.Errorf("profile: decode record: %w", err)
	}
	if _, ok := fields["eloGames"]; !ok {
		r.EloGames = 0
		if r.Elo != DefaultElo || r.EloTrend != 0 {
			r.EloGames = 1
		}
	}

	*p = Person{
		Name:           r.Name,
		Shots:          r.Shots,
		Hits:           r.Hits,
		Kills:          r.Kills,
		Deaths:         r.Deaths,
		Assistances:    r.Assistances,
		Wins:           r.Wins,
		Penalties:      r.Penalties,
		Games:          r.Games,
		TimeAlive:      r.TimeAlive,
		TotalGameTime:  r.TotalGameTime,
		TotalDamage:    r.TotalDamage,
		AssistedDamage: r.AssistedDamage,
		Elo:            r.Elo,
		EloTrend:       r.EloTrend,
		EloGames:       r.EloGames,
	}
	return nil
}

// ParseRecord decodes a single person record.
func ParseRecord(data []byte) (*Person, error) {
	p := &Person{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}
