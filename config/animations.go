package config

// AnimID identifies a player body clip.
type AnimID int

const (
	AnimNone AnimID = iota
	AnimStand
	AnimWalk
	AnimJump
	AnimFall
	AnimDuck
	AnimPick
	AnimDying
	AnimDeadFall
	AnimDeadHit
	AnimDeadLying
)

// Looping is how a clip behaves when it reaches its last frame.
type Looping int

const (
	RepeatForever Looping = iota
	OnceAndStop
)

type AnimationDef struct {
	First int
	Last  int
	Step  int
	// FPS is the frame rate at playback speed 1.
	FPS     float64
	Looping Looping
}

var PlayerAnimations = map[AnimID]AnimationDef{
	AnimStand:     {First: 0, Last: 3, Step: 1, FPS: 4},
	AnimWalk:      {First: 4, Last: 11, Step: 1, FPS: 3},
	AnimJump:      {First: 12, Last: 13, Step: 1, FPS: 2},
	AnimFall:      {First: 14, Last: 15, Step: 1, FPS: 2},
	AnimDuck:      {First: 16, Last: 16, Step: 1, FPS: 1},
	AnimPick:      {First: 17, Last: 21, Step: 1, FPS: 12, Looping: OnceAndStop},
	AnimDying:     {First: 22, Last: 29, Step: 1, FPS: 12, Looping: OnceAndStop},
	AnimDeadFall:  {First: 30, Last: 31, Step: 1, FPS: 6},
	AnimDeadHit:   {First: 32, Last: 35, Step: 1, FPS: 12, Looping: OnceAndStop},
	AnimDeadLying: {First: 36, Last: 36, Step: 1, FPS: 1},
}

var animNames = map[AnimID]string{
	AnimNone:      "none",
	AnimStand:     "stand",
	AnimWalk:      "walk",
	AnimJump:      "jump",
	AnimFall:      "fall",
	AnimDuck:      "duck",
	AnimPick:      "pick",
	AnimDying:     "dying",
	AnimDeadFall:  "dead-fall",
	AnimDeadHit:   "dead-hit",
	AnimDeadLying: "dead-lying",
}

func (a AnimID) String() string {
	if n, ok := animNames[a]; ok {
		return n
	}
	return "unknown"
}
