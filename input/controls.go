// Package input turns a player's control sources into a per-frame
// controller snapshot. It knows nothing about devices; see ebitenctl for
// keyboard and gamepad bindings.
package input

import cfg "github.com/automoto/duelcore/config"

// Control is a single pollable button.
type Control interface {
	Pressed() bool
}

// ControlFunc adapts a function to Control.
type ControlFunc func() bool

func (f ControlFunc) Pressed() bool { return f() }

// Switch is a control driven by code: bots, network input and tests.
type Switch struct {
	Down bool
}

func (s *Switch) Pressed() bool { return s != nil && s.Down }

// PlayerControls holds one control per logical button. Nil entries read as
// released.
type PlayerControls struct {
	Buttons [cfg.ButtonCount]Control
}

// Bind sets the control for a button and returns the receiver for chaining.
func (c *PlayerControls) Bind(b cfg.ButtonID, ctl Control) *PlayerControls {
	c.Buttons[b] = ctl
	return c
}

// ControllerState is a bitset of pressed buttons for one frame.
type ControllerState uint16

func (s ControllerState) Has(b cfg.ButtonID) bool {
	return s&(1<<uint(b)) != 0
}

func (s ControllerState) With(b cfg.ButtonID) ControllerState {
	return s | 1<<uint(b)
}

// Sample polls every bound control once.
func Sample(c *PlayerControls) ControllerState {
	var s ControllerState
	if c == nil {
		return s
	}
	for b, ctl := range c.Buttons {
		if ctl != nil && ctl.Pressed() {
			s = s.With(cfg.ButtonID(b))
		}
	}
	return s
}

// Switches builds controls backed by one Switch per button.
func Switches() (*PlayerControls, *[cfg.ButtonCount]Switch) {
	var sw [cfg.ButtonCount]Switch
	c := &PlayerControls{}
	for b := range sw {
		c.Buttons[b] = &sw[b]
	}
	return c, &sw
}

// Set presses exactly the buttons in s.
func Set(sw *[cfg.ButtonCount]Switch, s ControllerState) {
	for b := range sw {
		sw[b].Down = s.Has(cfg.ButtonID(b))
	}
}
