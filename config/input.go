package config

import "github.com/hajimehoshi/ebiten/v2"

// ButtonID represents one logical player control
type ButtonID int

const (
	ButtonLeft ButtonID = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonShoot
	ButtonPick
	ButtonStatus
	ButtonCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for a control
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Scheme is one complete keyboard/gamepad layout for a single player.
type Scheme struct {
	Name     string
	Bindings [ButtonCount]InputBinding
}

// InputConfig holds all input mappings
type InputConfig struct {
	Schemes []Scheme
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	pad := func(b ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton {
		return []ebiten.StandardGamepadButton{b}
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Schemes: []Scheme{
			{
				Name: "arrows",
				Bindings: [ButtonCount]InputBinding{
					ButtonLeft:   {Keys: []ebiten.Key{ebiten.KeyLeft}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftLeft)},
					ButtonRight:  {Keys: []ebiten.Key{ebiten.KeyRight}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftRight)},
					ButtonUp:     {Keys: []ebiten.Key{ebiten.KeyUp}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightBottom)},
					ButtonDown:   {Keys: []ebiten.Key{ebiten.KeyDown}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftBottom)},
					ButtonShoot:  {Keys: []ebiten.Key{ebiten.KeyControlRight}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightLeft)},
					ButtonPick:   {Keys: []ebiten.Key{ebiten.KeyShiftRight}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightTop)},
					ButtonStatus: {Keys: []ebiten.Key{ebiten.KeyEnter}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonCenterLeft)},
				},
			},
			{
				Name: "wasd",
				Bindings: [ButtonCount]InputBinding{
					ButtonLeft:   {Keys: []ebiten.Key{ebiten.KeyA}},
					ButtonRight:  {Keys: []ebiten.Key{ebiten.KeyD}},
					ButtonUp:     {Keys: []ebiten.Key{ebiten.KeyW}},
					ButtonDown:   {Keys: []ebiten.Key{ebiten.KeyS}},
					ButtonShoot:  {Keys: []ebiten.Key{ebiten.KeyQ}},
					ButtonPick:   {Keys: []ebiten.Key{ebiten.KeyE}},
					ButtonStatus: {Keys: []ebiten.Key{ebiten.KeyTab}},
				},
			},
		},
	}
}
