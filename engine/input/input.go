package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is something the preview window can be asked to do.
type Action int

const (
	ActNone Action = iota
	ActQuit
	ActReload
	ActToggleBackdrop
	ActClose
	ActResetView
)

// Bindings maps keys to actions.
var Bindings = map[ebiten.Key]Action{
	ebiten.KeyQ:      ActQuit,
	ebiten.KeyR:      ActReload,
	ebiten.KeyF5:     ActReload,
	ebiten.KeyB:      ActToggleBackdrop,
	ebiten.KeyEscape: ActClose,
	ebiten.KeyDigit0: ActResetView,
}

// PanKeys are held to scroll the zoomed view, as unit screen directions.
var PanKeys = map[ebiten.Key][2]float64{
	ebiten.KeyArrowLeft:  {-1, 0},
	ebiten.KeyArrowRight: {1, 0},
	ebiten.KeyArrowUp:    {0, -1},
	ebiten.KeyArrowDown:  {0, 1},
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	MouseX, MouseY  int
	LeftJustPressed bool
	RightDown       bool
	WheelY          float64

	// Held pan direction this frame, summed over PanKeys
	PanX, PanY float64

	// Mouse movement since last frame
	DragDX, DragDY int
	prevX, prevY   int

	// Actions triggered this frame, in key order
	Actions []Action
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevX, s.prevY = s.MouseX, s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.DragDX, s.DragDY = s.MouseX-s.prevX, s.MouseY-s.prevY
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	_, s.WheelY = ebiten.Wheel()

	s.PanX, s.PanY = 0, 0
	for k, d := range PanKeys {
		if ebiten.IsKeyPressed(k) {
			s.PanX += d[0]
			s.PanY += d[1]
		}
	}

	s.Actions = s.Actions[:0]
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := Bindings[k]; ok {
			s.Actions = append(s.Actions, a)
		}
	}
}

// Has reports whether a was triggered this frame.
func (s *InputState) Has(a Action) bool {
	for _, got := range s.Actions {
		if got == a {
			return true
		}
	}
	return false
}
