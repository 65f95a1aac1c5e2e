package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/component"
)

// actionRegistry maps canonical action names to intents
// Used by the key binding loader to resolve config action strings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": {},

	"up":    Turn(component.DirUp),
	"down":  Turn(component.DirDown),
	"left":  Turn(component.DirLeft),
	"right": Turn(component.DirRight),

	"quit": {Type: IntentQuit},
	"mute": {Type: IntentMute},
}

// ActionIntent returns the intent bound to an action name
func ActionIntent(name string) (Intent, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}

// specialKeyNames maps config key names to tcell special keys
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-s":    tcell.KeyCtrlS,
}

// KeyByName resolves a config key name to a tcell key
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := specialKeyNames[name]
	return k, ok
}
