package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-collapse/game"
	"github.com/lixenwraith/maze-collapse/physics"
)

const (
	glyphWall   = '█'
	glyphGoal   = '◆'
	glyphPlayer = '●'
)

// Status is the state shown on the bottom line
type Status struct {
	Phase      game.Phase
	Seed       int64
	Rows, Cols int
	Muted      bool
}

// TerminalRenderer draws physics bodies scaled to fit the screen, with a status line below
type TerminalRenderer struct {
	screen tcell.Screen
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// viewport maps world units to screen cells
type viewport struct {
	sx, sy        float64
	width, height int
}

func (v viewport) span(minW, maxW, scale float64, limit int) (lo, hi int) {
	lo = int(math.Floor(minW * scale))
	hi = int(math.Ceil(maxW*scale)) - 1
	if hi < lo {
		hi = lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= limit {
		hi = limit - 1
	}
	return lo, hi
}

// RenderFrame renders the entire frame for a world of worldW x worldH units
func (r *TerminalRenderer) RenderFrame(bodies []physics.Body, worldW, worldH float64, st Status) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	w, h := r.screen.Size()
	r.fill(0, 0, w, h, ' ', defaultStyle)

	if w > 0 && h > 1 && worldW > 0 && worldH > 0 {
		vp := viewport{
			sx:     float64(w) / worldW,
			sy:     float64(h-1) / worldH,
			width:  w,
			height: h - 1,
		}

		// Players last so walls never hide them
		for _, b := range bodies {
			if b.Label != string(game.TagPlayer) {
				r.drawBody(vp, b, defaultStyle)
			}
		}
		for _, b := range bodies {
			if b.Label == string(game.TagPlayer) {
				r.drawBody(vp, b, defaultStyle)
			}
		}
	}

	r.drawStatusBar(w, h, st, defaultStyle)
	r.screen.Show()
}

func (r *TerminalRenderer) drawBody(vp viewport, b physics.Body, defaultStyle tcell.Style) {
	cx, cy := b.Center()
	bw, bh := b.Size()

	switch b.Label {
	case string(game.TagPlayer):
		x, y := int(cx*vp.sx), int(cy*vp.sy)
		if x >= 0 && x < vp.width && y >= 0 && y < vp.height {
			r.screen.SetContent(x, y, glyphPlayer, nil, defaultStyle.Foreground(RgbPlayer))
		}
		return
	case string(game.TagGoal):
		x0, x1 := vp.span(cx-bw/2, cx+bw/2, vp.sx, vp.width)
		y0, y1 := vp.span(cy-bh/2, cy+bh/2, vp.sy, vp.height)
		r.fill(x0, y0, x1-x0+1, y1-y0+1, glyphGoal, defaultStyle.Foreground(RgbGoal))
		return
	}

	color := RgbBoundaryWall
	if b.Label == string(game.TagInnerWall) {
		color = RgbInnerWall
		if !b.Static {
			color = RgbFallingWall
		}
	}
	x0, x1 := vp.span(cx-bw/2, cx+bw/2, vp.sx, vp.width)
	y0, y1 := vp.span(cy-bh/2, cy+bh/2, vp.sy, vp.height)
	r.fill(x0, y0, x1-x0+1, y1-y0+1, glyphWall, defaultStyle.Foreground(color))
}

func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// drawStatusBar draws the phase badge and maze info on the last row
func (r *TerminalRenderer) drawStatusBar(w, h int, st Status, defaultStyle tcell.Style) {
	if h < 1 {
		return
	}
	y := h - 1

	modeText := " PLAYING "
	modeBg := RgbModePlayingBg
	if st.Phase == game.PhaseWon {
		modeText = " WON "
		modeBg = RgbModeWonBg
	}
	modeStyle := defaultStyle.Foreground(RgbStatusText).Background(modeBg)

	x := 0
	for _, ch := range modeText {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, modeStyle)
		x++
	}

	info := fmt.Sprintf(" %dx%d seed %d", st.Rows, st.Cols, st.Seed)
	if st.Muted {
		info += " [muted]"
	}
	info += "  wasd/arrows move, r new maze, q quit"
	statusStyle := defaultStyle.Foreground(RgbStatusBar)
	for _, ch := range info {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
}
