package profile

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

const fullRecord = `{"name":"ann","shots":10,"hits":4,"kills":3,"deaths":2,"assistances":1,
"wins":1,"penalties":0,"games":5,"timeAlive":100,"totalGameTime":200,"totalDamage":150,
"assistedDamage":20,"elo":1100,"eloTrend":5,"eloGames":7}`

func TestParseRecordFull(t *testing.T) {
	p, err := ParseRecord([]byte(fullRecord))
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if p.Name != "ann" || p.Shots != 10 || p.Deaths != 2 || p.EloGames != 7 || p.Elo != 1100 {
		t.Fatalf("ParseRecord = %+v", p)
	}
}

func TestParseRecordOptionalDefaults(t *testing.T) {
	minimal := `{"name":"bob","shots":1,"hits":1,"kills":0,"wins":0,"penalties":0,"games":1,"timeAlive":3,"totalGameTime":4}`
	p, err := ParseRecord([]byte(minimal))
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if p.Deaths != 0 || p.Assistances != 0 || p.TotalDamage != 0 || p.AssistedDamage != 0 || p.EloTrend != 0 {
		t.Fatalf("optional counters not zeroed: %+v", p)
	}
	if p.Elo != DefaultElo {
		t.Fatalf("Elo = %d, want %d", p.Elo, DefaultElo)
	}
	if p.EloGames != 0 {
		t.Fatalf("EloGames = %d, want 0 for a default rating", p.EloGames)
	}
}

func TestParseRecordEloGamesInferred(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  int
	}{
		{"rated", `,"elo":1200`, 1},
		{"trending", `,"eloTrend":-3`, 1},
		{"explicit", `,"elo":1200,"eloGames":9`, 9},
	}
	base := `{"name":"c","shots":0,"hits":0,"kills":0,"wins":0,"penalties":0,"games":0,"timeAlive":0,"totalGameTime":0`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseRecord([]byte(base + tt.extra + "}"))
			if err != nil {
				t.Fatalf("ParseRecord: %v", err)
			}
			if p.EloGames != tt.want {
				t.Fatalf("EloGames = %d, want %d", p.EloGames, tt.want)
			}
		})
	}
}

func TestParseRecordMissingRequired(t *testing.T) {
	_, err := ParseRecord([]byte(`{"name":"d","shots":0,"hits":0,"kills":0,"wins":0,"penalties":0,"games":0,"timeAlive":0}`))
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FieldError", err)
	}
	if fe.Field != "totalGameTime" || !errors.Is(err, ErrMissingField) {
		t.Fatalf("err = %v, want missing totalGameTime", err)
	}
}

func TestParseRecordWrongType(t *testing.T) {
	_, err := ParseRecord([]byte(`{"name":"e","shots":"many","hits":0,"kills":0,"wins":0,"penalties":0,"games":0,"timeAlive":0,"totalGameTime":0}`))
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "shots" {
		t.Fatalf("err = %v, want field error on shots", err)
	}
}

func TestRecordKeepsFieldNames(t *testing.T) {
	p := NewPerson("f")
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"name", "shots", "hits", "kills", "deaths", "assistances", "wins",
		"penalties", "games", "timeAlive", "totalGameTime", "totalDamage", "assistedDamage", "elo", "eloTrend", "eloGames"} {
		if _, ok := fields[name]; !ok {
			t.Fatalf("encoded record lacks %q: %s", name, data)
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	want := &Person{
		Name:           "hal",
		Shots:          101,
		Hits:           57,
		Kills:          23,
		Deaths:         19,
		Assistances:    7,
		Wins:           5,
		Penalties:      3,
		Games:          11,
		TimeAlive:      1234,
		TotalGameTime:  4321,
		TotalDamage:    8765,
		AssistedDamage: 432,
		Elo:            1187,
		EloTrend:       -13,
		EloGames:       29,
	}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseRecord(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestResetKeepsIdentity(t *testing.T) {
	p := NewPerson("g")
	p.AddKills(3)
	p.AddShots(9)
	p.Elo = 1300
	p.Reset()
	if p.Kills != 0 || p.Shots != 0 {
		t.Fatalf("counters survived Reset: %+v", p)
	}
	if p.Name != "g" || p.Elo != 1300 {
		t.Fatalf("Reset dropped identity: %+v", p)
	}
}

func TestKillsToDeathsRatio(t *testing.T) {
	tests := []struct {
		kills, deaths int
		want          string
	}{
		{0, 0, " 0.00"},
		{7, 0, " 7.00"},
		{3, 2, " 1.50"},
		{10, 4, " 2.50"},
		{1, 3, " 0.33"},
		{25, 1, "25.00"},
	}
	for _, tt := range tests {
		if got := KillsToDeathsRatio(tt.kills, tt.deaths); got != tt.want {
			t.Fatalf("KillsToDeathsRatio(%d, %d) = %q, want %q", tt.kills, tt.deaths, got, tt.want)
		}
	}
}

func TestMemoryStoreRoster(t *testing.T) {
	s := &MemoryStore{}
	r, err := LoadRoster(s)
	if err != nil {
		t.Fatalf("LoadRoster on empty store: %v", err)
	}
	r.Get("zed").AddWins(2)
	r.Get("amy").AddGames(1)
	if err := s.Save(r.Persons()); err != nil {
		t.Fatal(err)
	}

	r2, err := LoadRoster(s)
	if err != nil {
		t.Fatal(err)
	}
	persons := r2.Persons()
	if len(persons) != 2 || persons[0].Name != "amy" || persons[1].Wins != 2 {
		t.Fatalf("reloaded roster = %+v", persons)
	}
}
