package animations

import (
	"testing"

	cfg "github.com/automoto/duelcore/config"
)

func TestRepeatForeverWraps(t *testing.T) {
	a := NewAnimation(cfg.AnimationDef{First: 2, Last: 4, Step: 1, FPS: 10})
	for i := 0; i < 3; i++ {
		a.Update(0.1, 1)
	}
	if a.Frame() != 2 {
		t.Fatalf("frame = %d, want 2 after wrapping", a.Frame())
	}
	if !a.Looped {
		t.Fatal("Looped = false after wrapping")
	}
	if a.Finished() {
		t.Fatal("repeating clip reported finished")
	}
}

func TestOnceAndStopHoldsLastFrame(t *testing.T) {
	a := NewAnimation(cfg.AnimationDef{First: 0, Last: 2, Step: 1, FPS: 10, Looping: cfg.OnceAndStop})
	a.Update(0.25, 1)
	if a.Finished() {
		t.Fatal("finished before passing the last frame")
	}
	a.Update(0.1, 1)
	if !a.Finished() {
		t.Fatal("not finished after passing the last frame")
	}
	a.Update(1, 1)
	if a.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", a.Frame())
	}
	a.Restart()
	if a.Finished() || a.Frame() != 0 {
		t.Fatalf("after Restart: finished=%v frame=%d", a.Finished(), a.Frame())
	}
}

func TestSpeedScalesPlayback(t *testing.T) {
	a := NewAnimation(cfg.AnimationDef{First: 0, Last: 9, Step: 1, FPS: 10})
	a.Update(0.1, 3)
	if a.Frame() != 3 {
		t.Fatalf("frame = %d, want 3 at triple speed", a.Frame())
	}
	a.Update(1, 0)
	if a.Frame() != 3 {
		t.Fatalf("frame = %d, want 3 at zero speed", a.Frame())
	}
}
