package config

import "fmt"

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("BotDifficulty(%d)", int(d))
}

// ParseBotDifficulty reads "easy", "normal" or "hard".
func ParseBotDifficulty(s string) (BotDifficulty, error) {
	for d := BotDifficultyEasy; d <= BotDifficultyHard; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return BotDifficultyNormal, fmt.Errorf("config: unknown bot difficulty %q", s)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    float64 // Seconds between decisions
	AttackRange      float64 // Blocks; closer targets are shot at
	AimTolerance     float64 // Blocks of height difference still worth a shot
	RetreatThreshold float64 // Life fraction to start retreating
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    0.5,
				AttackRange:      6,
				AimTolerance:     0.3,
				RetreatThreshold: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    0.25,
				AttackRange:      9,
				AimTolerance:     0.5,
				RetreatThreshold: 0.3,
			},
			BotDifficultyHard: {
				ReactionDelay:    0.08,
				AttackRange:      14,
				AimTolerance:     0.6,
				RetreatThreshold: 0.15,
			},
		},
	}
}
