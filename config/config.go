package config

// BlockSize is the edge of one level tile in world pixels. Distances and
// speeds below are expressed in blocks and scaled by it where they are used.
const BlockSize = 16.0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MaxLife float64 `yaml:"maxLife"`
	MaxAir  float64 `yaml:"maxAir"`

	// Movement, in blocks per second
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	JumpVelocity float64 `yaml:"jumpVelocity"`

	// Speed factors
	UnderwaterFactor  float64 `yaml:"underwaterFactor"`
	TemporarySkinSlow float64 `yaml:"temporarySkinSlow"`
	UnarmedFactor     float64 `yaml:"unarmedFactor"`
	ArmedBase         float64 `yaml:"armedBase"`
	ArmedLifeDivisor  float64 `yaml:"armedLifeDivisor"`

	// Dimensions, in blocks
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	KneelHeight  float64 `yaml:"kneelHeight"`
	LyingHeight  float64 `yaml:"lyingHeight"`
	HeadFraction float64 `yaml:"headFraction"`
	FeetFraction float64 `yaml:"feetFraction"`

	// Timers, in seconds
	HPRegenDelay   float64 `yaml:"hpRegenDelay"`
	HPRegenFactor  float64 `yaml:"hpRegenFactor"`
	StuckTimeout   float64 `yaml:"stuckTimeout"`
	IndicatorTime  float64 `yaml:"indicatorTime"`
	TempSkinMin    float64 `yaml:"tempSkinMin"`
	TempSkinRandom int     `yaml:"tempSkinRandom"`
}

type PhysicsConfig struct {
	// Gravity in blocks per second squared, positive is down.
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	Friction     float64 `yaml:"friction"`
	// SurfaceProbe is how far below the feet a surface still counts, in pixels.
	SurfaceProbe float64 `yaml:"surfaceProbe"`
}

type CombatConfig struct {
	ShotForceFactor float64 `yaml:"shotForceFactor"`
	ShotLifetime    float64 `yaml:"shotLifetime"`
	ChargeThreshold float64 `yaml:"chargeThreshold"`
}

type WaterConfig struct {
	AirDrainRate   float64 `yaml:"airDrainRate"`
	AirRegenFactor float64 `yaml:"airRegenFactor"`
	BlueDrain      float64 `yaml:"blueDrain"`
	RedDrain       float64 `yaml:"redDrain"`
	GreenDrain     float64 `yaml:"greenDrain"`
}

type RoundConfig struct {
	StartInvulnerability float64 `yaml:"startInvulnerability"`
	GhostAlpha           float64 `yaml:"ghostAlpha"`
	BonusInterval        float64 `yaml:"bonusInterval"`
	MaxBonuses           int     `yaml:"maxBonuses"`
	BonusDuration        float64 `yaml:"bonusDuration"`
	Seed                 int64   `yaml:"seed"`
	// Seconds the result stays up before the next round.
	RoundOverDelay float64 `yaml:"roundOverDelay"`
	MinPlayers     int     `yaml:"minPlayers"`
	// Dead players turn into ghosts until the round ends.
	GhostMode bool `yaml:"ghostMode"`
}

type BonusConfig struct {
	FastMovementFactor  float64 `yaml:"fastMovementFactor"`
	PowerfulShotsFactor float64 `yaml:"powerfulShotsFactor"`
	InvisibleAlpha      float64 `yaml:"invisibleAlpha"`
	PulseLow            float64 `yaml:"pulseLow"`
	PulsePeriod         float64 `yaml:"pulsePeriod"`
	PlusLife            float64 `yaml:"plusLife"`
	MinusLife           float64 `yaml:"minusLife"`
}

type ServerConfig struct {
	Name       string `yaml:"name"`
	TickRate   int    `yaml:"tickRate"`
	MaxPlayers int    `yaml:"maxPlayers"`
	Level      string `yaml:"level"`
	AppName    string `yaml:"appName"`
}

var Player PlayerConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Water WaterConfig
var Round RoundConfig
var Bonus BonusConfig
var Server ServerConfig

func init() {
	Player = PlayerConfig{
		MaxLife: 100,
		MaxAir:  200,

		MaxSpeed:     5,
		Acceleration: 30,
		JumpVelocity: 7.7,

		UnderwaterFactor:  0.67,
		TemporarySkinSlow: 0.5,
		UnarmedFactor:     1.4,
		ArmedBase:         1.4,
		ArmedLifeDivisor:  250,

		Width:        1,
		Height:       1,
		KneelHeight:  0.8,
		LyingHeight:  0.45,
		HeadFraction: 0.8,
		FeetFraction: 0.1,

		HPRegenDelay:   3,
		HPRegenFactor:  0.8,
		StuckTimeout:   2,
		IndicatorTime:  5,
		TempSkinMin:    10,
		TempSkinRandom: 5,
	}

	Physics = PhysicsConfig{
		Gravity:      11,
		MaxFallSpeed: 12,
		Friction:     15,
		SurfaceProbe: 1,
	}

	Combat = CombatConfig{
		ShotForceFactor: 0.05,
		ShotLifetime:    4,
		ChargeThreshold: 0.5,
	}

	Water = WaterConfig{
		AirDrainRate:   40,
		AirRegenFactor: 2,
		BlueDrain:      1,
		RedDrain:       1.5,
		GreenDrain:     2,
	}

	Round = RoundConfig{
		StartInvulnerability: 2,
		GhostAlpha:           0.4,
		BonusInterval:        6,
		MaxBonuses:           3,
		BonusDuration:        13,
		Seed:                 1,
		RoundOverDelay:       3,
		MinPlayers:           2,
		GhostMode:            true,
	}

	Bonus = BonusConfig{
		FastMovementFactor:  1.43,
		PowerfulShotsFactor: 2,
		InvisibleAlpha:      0.2,
		PulseLow:            0.3,
		PulsePeriod:         0.25,
		PlusLife:            30,
		MinusLife:           20,
	}

	Server = ServerConfig{
		Name:       "Duelcore Server",
		TickRate:   60,
		MaxPlayers: 8,
		Level:      "arena.tmx",
		AppName:    "duelcore",
	}
}
