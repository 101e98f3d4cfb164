package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-collapse/game"
)

func TestTranslateMovement(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Direction
		ok   bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), game.DirUp, true},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.DirLeft, true},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), game.DirDown, true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.DirRight, true},
		{"shift D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), game.DirRight, true},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.DirUp, true},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.DirDown, true},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.DirLeft, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.DirRight, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := kt.Translate(tt.ev)
			ok := intent.Type == IntentMove
			if ok != tt.ok || (ok && intent.Direction != tt.want) {
				t.Errorf("Translate = %+v; want move %v = %v", intent, tt.want, tt.ok)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"r regenerates", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRegenerate},
		{"m mutes", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
		{"unbound", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), IntentNone},
		{"nil", nil, IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev).Type; got != tt.want {
				t.Errorf("Translate = %v, want %v", got, tt.want)
			}
		})
	}
}
