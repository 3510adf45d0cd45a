// Package profile holds persistent per-person statistics.
package profile

import (
	"fmt"
	"math"
)

const DefaultElo = 1000

// Person accumulates career statistics across rounds.
type Person struct {
	Name           string
	Shots          int
	Hits           int
	Kills          int
	Deaths         int
	Assistances    int
	Wins           int
	Penalties      int
	Games          int
	TimeAlive      int // seconds
	TotalGameTime  int // seconds
	TotalDamage    int
	AssistedDamage int
	Elo            int
	EloTrend       int
	EloGames       int
}

func NewPerson(name string) *Person {
	return &Person{Name: name, Elo: DefaultElo}
}

func (p *Person) AddShots(n int) { p.Shots += n }
func (p *Person) AddHits(n int) { p.Hits += n }
func (p *Person) AddKills(n int) { p.Kills += n }
func (p *Person) AddDeaths(n int) { p.Deaths += n }
func (p *Person) AddAssistances(n int) { p.Assistances += n }
func (p *Person) AddWins(n int) { p.Wins += n }
func (p *Person) AddPenalties(n int) { p.Penalties += n }
func (p *Person) AddGames(n int) { p.Games += n }
func (p *Person) AddTimeAlive(s int) { p.TimeAlive += s }
func (p *Person) AddTotalGameTime(s int) { p.TotalGameTime += s }
func (p *Person) AddTotalDamage(n int) { p.TotalDamage += n }
func (p *Person) AddAssistedDamage(n int) { p.AssistedDamage += n }

// Reset clears the counters. Name and rating survive.
func (p *Person) Reset() {
	*p = Person{
		Name:     p.Name,
		Elo:      p.Elo,
		EloTrend: p.EloTrend,
		EloGames: p.EloGames,
	}
}

// Accuracy is hits per shot as a percentage.
func (p *Person) Accuracy() int {
	if p.Shots == 0 {
		return 0
	}
	return p.Hits * 100 / p.Shots
}

// KillsToDeathsRatio formats kills/deaths as "II.FF". With no deaths the
// ratio is the kill count.
func (p *Person) KillsToDeathsRatio() string {
	return KillsToDeathsRatio(p.Kills, p.Deaths)
}

func KillsToDeathsRatio(kills, deaths int) string {
	kd := float64(kills)
	if deaths != 0 {
		kd = float64(kills) / float64(deaths)
	}
	whole := math.Floor(kd)
	frac := int((kd - whole) * 100)
	return fmt.Sprintf("%2d.%02d", int(whole), frac)
}
