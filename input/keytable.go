package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/component"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns arrows, wasd and hjkl steering plus quit/mute bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     Turn(component.DirUp),
			tcell.KeyDown:   Turn(component.DirDown),
			tcell.KeyLeft:   Turn(component.DirLeft),
			tcell.KeyRight:  Turn(component.DirRight),
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentMute},
		},
		Runes: map[rune]Intent{
			'w': Turn(component.DirUp),
			'a': Turn(component.DirLeft),
			's': Turn(component.DirDown),
			'd': Turn(component.DirRight),
			'k': Turn(component.DirUp),
			'h': Turn(component.DirLeft),
			'j': Turn(component.DirDown),
			'l': Turn(component.DirRight),
			'q': {Type: IntentQuit},
			'm': {Type: IntentMute},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Translate converts a terminal event into an intent
// Unbound keys, mouse and paste events produce IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if i, ok := kt.Runes[ev.Rune()]; ok {
				return i
			}
			return Intent{}
		}
		if i, ok := kt.SpecialKeys[ev.Key()]; ok {
			return i
		}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
