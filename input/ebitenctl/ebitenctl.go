// Package ebitenctl binds player controls to ebiten keyboards and gamepads.
package ebitenctl

import (
	"fmt"

	cfg "github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keys is pressed while any of its keys is held.
type Keys []ebiten.Key

func (k Keys) Pressed() bool {
	for _, key := range k {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// GamepadButtons is pressed while any of its standard buttons is held on the
// given gamepad.
type GamepadButtons struct {
	ID      ebiten.GamepadID
	Buttons []ebiten.StandardGamepadButton
}

func (g GamepadButtons) Pressed() bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(g.ID) {
		return false
	}
	for _, btn := range g.Buttons {
		if ebiten.IsStandardGamepadButtonPressed(g.ID, btn) {
			return true
		}
	}
	return false
}

// Axis is pressed while a stick axis is pushed past the deadzone in Sign's
// direction.
type Axis struct {
	ID   ebiten.GamepadID
	Axis ebiten.StandardGamepadAxis
	Sign float64
}

func (a Axis) Pressed() bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(a.ID) {
		return false
	}
	return ebiten.StandardGamepadAxisValue(a.ID, a.Axis)*a.Sign > cfg.Input.AnalogDeadzone
}

// Any is pressed while any of its controls is pressed.
type Any []input.Control

func (a Any) Pressed() bool {
	for _, c := range a {
		if c.Pressed() {
			return true
		}
	}
	return false
}

// Keyboard builds controls for the named keyboard scheme.
func Keyboard(scheme string) (*input.PlayerControls, error) {
	s, ok := findScheme(scheme)
	if !ok {
		return nil, fmt.Errorf("ebitenctl: unknown scheme %q", scheme)
	}
	c := &input.PlayerControls{}
	for b, binding := range s.Bindings {
		if len(binding.Keys) > 0 {
			c.Bind(cfg.ButtonID(b), Keys(binding.Keys))
		}
	}
	return c, nil
}

// Gamepad builds controls for one gamepad using the first scheme's button
// layout plus the left stick for movement.
func Gamepad(id ebiten.GamepadID) *input.PlayerControls {
	s := cfg.Input.Schemes[0]
	c := &input.PlayerControls{}
	for b, binding := range s.Bindings {
		c.Bind(cfg.ButtonID(b), GamepadButtons{ID: id, Buttons: binding.StandardGamepadButtons})
	}
	stick := func(b cfg.ButtonID, axis ebiten.StandardGamepadAxis, sign float64) {
		c.Bind(b, Any{c.Buttons[b], Axis{ID: id, Axis: axis, Sign: sign}})
	}
	stick(cfg.ButtonLeft, ebiten.StandardGamepadAxisLeftStickHorizontal, -1)
	stick(cfg.ButtonRight, ebiten.StandardGamepadAxisLeftStickHorizontal, 1)
	stick(cfg.ButtonDown, ebiten.StandardGamepadAxisLeftStickVertical, 1)
	return c
}

// ConnectedGamepads lists the gamepads ebiten currently sees.
func ConnectedGamepads() []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(nil)
}

func findScheme(name string) (cfg.Scheme, bool) {
	for _, s := range cfg.Input.Schemes {
		if s.Name == name {
			return s, true
		}
	}
	return cfg.Scheme{}, false
}
