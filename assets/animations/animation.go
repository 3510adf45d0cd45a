package animations

import cfg "github.com/automoto/duelcore/config"

// Animation plays a contiguous frame range in simulated time.
type Animation struct {
	First   int
	Last    int
	Step    int     // how many indices do we move per frame
	FPS     float64 // frames per second at speed 1
	Looping cfg.Looping
	elapsed float64
	frame   int
	Looped  bool
	done    bool
}

// Update advances the clip by dt seconds scaled by speed.
func (a *Animation) Update(dt, speed float64) {
	if a.done || a.FPS <= 0 || speed <= 0 {
		return
	}
	a.elapsed += dt * speed
	frameTime := 1 / a.FPS
	for a.elapsed >= frameTime {
		a.elapsed -= frameTime
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.Looping == cfg.OnceAndStop {
				a.frame = a.Last
				a.done = true
				return
			}
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether a play-once clip has run past its last frame.
func (a *Animation) Finished() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
	a.done = false
}

func NewAnimation(def cfg.AnimationDef) *Animation {
	step := def.Step
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:   def.First,
		Last:    def.Last,
		Step:    step,
		FPS:     def.FPS,
		Looping: def.Looping,
		frame:   def.First,
	}
}
