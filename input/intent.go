package input

import "github.com/lixenwraith/maze-collapse/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // Esc, Ctrl+C, q
	IntentMove       // w,a,s,d, arrows
	IntentRegenerate // r
	IntentToggleMute // m
	IntentResize     // Terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentMove:
		return "move"
	case IntentRegenerate:
		return "regenerate"
	case IntentToggleMute:
		return "mute"
	case IntentResize:
		return "resize"
	}
	return "none"
}

// Intent is a translated input event. Direction is set for IntentMove only.
type Intent struct {
	Type      IntentType
	Direction game.Direction
}
