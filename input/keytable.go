package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/saucer/constants"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]Intent

	// Printable bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyLeft:  IntentLeft,
			tcell.KeyRight: IntentRight,
		},
		Runes: map[rune]Intent{
			constants.KeyQuit:   IntentQuit,
			constants.KeyFire:   IntentFire,
			constants.KeyLeft:   IntentLeft,
			constants.KeyRight:  IntentRight,
			constants.KeyPause:  IntentPause,
			constants.KeyColour: IntentToggleColour,
		},
	}
}

// Lookup resolves a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
