// Package pointer defines terminal mouse events and an incremental decoder
// for the raw reports terminals emit. Every host funnels input into the same
// Event shape: the pane viewer feeds tty bytes through the Decoder, the
// dashboard translates its framework messages directly.
package pointer

// Button identifies which button a report refers to.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	}
	return "none"
}

// Action is what the report says happened.
type Action uint8

const (
	ActionPress Action = iota
	ActionRelease
	ActionMotion
)

func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionMotion:
		return "motion"
	}
	return "press"
}

// Mod is a bitmask of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// Event is one decoded pointer report. X and Y are 1-based terminal columns
// and rows.
type Event struct {
	X      int
	Y      int
	Button Button
	Action Action
	Mods   Mod
}

// Wheel reports whether the event is a scroll step.
func (e Event) Wheel() bool {
	return e.Button == ButtonWheelUp || e.Button == ButtonWheelDown
}
