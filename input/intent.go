package input

import "github.com/lixenwraith/vi-snake/component"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentTurn   // steer the head; Dir carries the direction
	IntentQuit   // q, Esc, Ctrl+C
	IntentMute   // toggle sound effects
	IntentResize // terminal resize; redraw only, no game-state effect
)

// Intent is the per-event result of key translation
type Intent struct {
	Type IntentType
	Dir  component.Direction
}

// Turn builds a steering intent
func Turn(d component.Direction) Intent {
	return Intent{Type: IntentTurn, Dir: d}
}
