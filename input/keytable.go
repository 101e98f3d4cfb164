package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-collapse/game"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Direction  game.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Plain rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable binds WASD and arrows to movement
func DefaultKeyTable() *KeyTable {
	move := func(d game.Direction) KeyEntry { return KeyEntry{IntentType: IntentMove, Direction: d} }
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     move(game.DirUp),
			tcell.KeyDown:   move(game.DirDown),
			tcell.KeyLeft:   move(game.DirLeft),
			tcell.KeyRight:  move(game.DirRight),
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'w': move(game.DirUp),
			's': move(game.DirDown),
			'a': move(game.DirLeft),
			'd': move(game.DirRight),
			'q': {IntentType: IntentQuit},
			'r': {IntentType: IntentRegenerate},
			'm': {IntentType: IntentToggleMute},
		},
	}
}

// Translate converts a terminal event into an intent. Unbound keys yield IntentNone.
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := kt.lookup(ev)
		if !ok {
			return Intent{}
		}
		return Intent{Type: entry.IntentType, Direction: entry.Direction}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (kt *KeyTable) lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() != tcell.KeyRune {
		e, ok := kt.SpecialKeys[ev.Key()]
		return e, ok
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	e, ok := kt.Runes[r]
	return e, ok
}
