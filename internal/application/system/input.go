package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/charctl/internal/application/input"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// Binding is the keys and gamepad buttons of one action or direction
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps actions and move directions to devices
type Bindings struct {
	Actions               map[input.ActionID]Binding
	Left, Right, Up, Down Binding
}

// DefaultBindings returns the keyboard and standard gamepad layout
func DefaultBindings() Bindings {
	return Bindings{
		Actions: map[input.ActionID]Binding{
			input.ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			input.ActionPrimary: {
				Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			input.ActionSecondary: {
				Keys: []ebiten.Key{ebiten.KeyV},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			input.ActionSpecial: {
				Keys: []ebiten.Key{ebiten.KeyB},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			input.ActionInteract: {
				Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyE},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			input.ActionSelfDestruct: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
		Left: Binding{
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		Right: Binding{
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		Up: Binding{
			Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		Down: Binding{
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
	}
}

// RawInput is the device state of one frame
type RawInput struct {
	Held  [input.ActionCount]bool
	Left  bool
	Right bool
	Up    bool
	Down  bool
	// Stick is the left analog stick, Y up, before the deadzone
	Stick entity.Vec2
}

// InputSystem polls devices and turns held state into input frames
type InputSystem struct {
	config   *config.InputConfig
	bindings Bindings
	prev     [input.ActionCount]bool
	gamepads []ebiten.GamepadID
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.InputConfig, bindings Bindings) *InputSystem {
	return &InputSystem{config: cfg, bindings: bindings}
}

// SetConfig swaps in a reloaded config
func (s *InputSystem) SetConfig(cfg *config.InputConfig) {
	s.config = cfg
}

// Poll reads the devices and returns this frame's input
func (s *InputSystem) Poll() input.Frame {
	return s.Frame(s.ReadDevices())
}

// ReadDevices reads keyboard and standard gamepads
func (s *InputSystem) ReadDevices() RawInput {
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])

	var raw RawInput
	for id, b := range s.bindings.Actions {
		if id > input.ActionNone && id < input.ActionCount {
			raw.Held[id] = s.pressed(b)
		}
	}
	raw.Left = s.pressed(s.bindings.Left)
	raw.Right = s.pressed(s.bindings.Right)
	raw.Up = s.pressed(s.bindings.Up)
	raw.Down = s.pressed(s.bindings.Down)

	for _, gp := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > raw.Stick.X*raw.Stick.X+raw.Stick.Y*raw.Stick.Y {
			raw.Stick = entity.Vec2{X: h, Y: -v}
		}
	}
	return raw
}

func (s *InputSystem) pressed(b Binding) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gp := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

// Frame derives edges against the previous frame and builds the move axis.
// Digital directions win over the stick.
func (s *InputSystem) Frame(raw RawInput) input.Frame {
	var f input.Frame
	for id := input.ActionNone + 1; id < input.ActionCount; id++ {
		switch {
		case raw.Held[id] && !s.prev[id]:
			f.Pressed = append(f.Pressed, id)
		case !raw.Held[id] && s.prev[id]:
			f.Released = append(f.Released, id)
		}
	}
	s.prev = raw.Held
	f.Move = s.move(raw)
	return f
}

func (s *InputSystem) move(raw RawInput) entity.Vec2 {
	var m entity.Vec2
	if raw.Left {
		m.X--
	}
	if raw.Right {
		m.X++
	}
	if raw.Up {
		m.Y++
	}
	if raw.Down {
		m.Y--
	}
	if m.X != 0 || m.Y != 0 {
		return m
	}

	deadzone := 0.0
	if s.config != nil {
		deadzone = s.config.AnalogDeadzone
	}
	if raw.Stick.X*raw.Stick.X+raw.Stick.Y*raw.Stick.Y <= deadzone*deadzone {
		return entity.Vec2{}
	}
	return raw.Stick
}
