// Package input turns SDL2 events into per-tick input snapshots.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/groundplane/internal/engine/camera"
	"github.com/Faultbox/groundplane/pkg/math"
)

// Frame is everything the simulation needs from the input devices for one tick.
type Frame struct {
	// Motion is the sum of all relative pointer motion since the previous tick.
	Motion math.Vec2
	// Keys holds the movement keys down at the end of the poll.
	Keys camera.Keys

	Quit            bool
	Resized         bool
	Width, Height   int
	ToggleWireframe bool
	Screenshot      bool
	Capture         bool // pointer clicked into the window
	Release         bool // escape pressed
}

// Bindings maps logical movement keys to physical scancodes.
type Bindings map[camera.Key]sdl.Scancode

// DefaultBindings returns WASD plus Space/Left Shift for up/down.
func DefaultBindings() Bindings {
	return Bindings{
		camera.KeyForward: sdl.SCANCODE_W,
		camera.KeyBack:    sdl.SCANCODE_S,
		camera.KeyLeft:    sdl.SCANCODE_A,
		camera.KeyRight:   sdl.SCANCODE_D,
		camera.KeyUp:      sdl.SCANCODE_SPACE,
		camera.KeyDown:    sdl.SCANCODE_LSHIFT,
	}
}

// Input handles all input processing.
type Input struct {
	bindings Bindings
	motion   []math.Vec2
}

// New creates a new input handler.
func New(bindings Bindings) *Input {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Input{
		bindings: bindings,
		motion:   make([]math.Vec2, 0, 16),
	}
}

// Poll drains the SDL event queue and returns the tick's input snapshot.
func (i *Input) Poll() Frame {
	var f Frame
	i.motion = i.motion[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				f.Resized = true
				f.Width = int(e.Data1)
				f.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				f.Release = true
			case sdl.SCANCODE_F1:
				f.ToggleWireframe = !f.ToggleWireframe
			case sdl.SCANCODE_F12:
				f.Screenshot = true
			}

		case *sdl.MouseMotionEvent:
			i.motion = append(i.motion, math.Vec2{X: float32(e.XRel), Y: float32(e.YRel)})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				f.Capture = true
			}
		}
	}

	f.Motion = camera.SumMotion(i.motion)
	f.Keys = i.heldKeys(sdl.GetKeyboardState())
	return f
}

// heldKeys reads the bound scancodes out of an SDL keyboard state array.
func (i *Input) heldKeys(state []uint8) camera.Keys {
	var keys camera.Keys
	for key, sc := range i.bindings {
		if int(sc) < len(state) && state[sc] != 0 {
			keys = keys.With(key)
		}
	}
	return keys
}
