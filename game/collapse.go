package game

import (
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Phase is the game state. Only Playing -> Won exists; Won is terminal.
type Phase uint32

const (
	PhasePlaying Phase = iota
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	}
	return fmt.Sprintf("Phase(%d)", uint32(p))
}

// CanTransition reports whether the state machine allows from -> to
func CanTransition(from, to Phase) bool {
	return from == PhasePlaying && to == PhaseWon
}

// WinEvent is delivered to OnWin observers
type WinEvent struct {
	At            time.Time
	ReleasedWalls int
}

var winTags = func() mapset.Set[Tag] {
	s := mapset.New[Tag]()
	s.Put(TagPlayer)
	s.Put(TagGoal)
	return s
}()

// isWinPair matches exactly {player, goal} in either order
func isWinPair(a, b Tag) bool {
	return a != b && winTags.Has(a) && winTags.Has(b)
}

// win runs the collapse effect at most once
func (w *World) win() {
	if !CanTransition(w.Phase(), PhaseWon) {
		return
	}
	if !w.phase.CompareAndSwap(uint32(PhasePlaying), uint32(PhaseWon)) {
		return
	}

	w.eng.SetGravity(0, w.collapseGravity)

	for _, id := range w.walls {
		w.eng.SetStatic(id, false)
		w.descs[w.index[id]].Static = false
	}

	w.resetTask = w.sched.After(w.collapseDelay, func() {
		gx, _ := w.eng.Gravity()
		w.eng.SetGravity(gx, 0)
		w.logger.Printf("[GAME] collapse gravity reset")
	})

	ev := WinEvent{At: w.sched.Now(), ReleasedWalls: len(w.walls)}
	w.logger.Printf("[GAME] goal reached, released %d walls", ev.ReleasedWalls)

	for _, fn := range w.observers {
		fn(ev)
	}
}
