package core

import "github.com/go-gl/mathgl/mgl64"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Pointer click - start the first round
	ActionPause             // Space - pause/unpause
	ActionFullscreen        // Enter - toggle fullscreen (host handles it)
	ActionRestart           // R - serve a fresh round immediately
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerSample is the last pointer position seen by the host during a frame,
// in normalized device coordinates.
type PointerSample struct {
	NDC   mgl64.Vec2
	Valid bool // False when the pointer has not moved this frame
}

// InputFrame represents the input state during one simulation tick.
// Host event handlers only stage data here; the game consumes it in Step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the latest pointer position staged this frame.
	Pointer PointerSample
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MovePointer stages a pointer position; later samples in the same frame win.
func (f *InputFrame) MovePointer(ndc mgl64.Vec2) {
	f.Pointer = PointerSample{NDC: ndc, Valid: true}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = PointerSample{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
