package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/board"
	"github.com/vancomm/minesweeper-board/internal/game"
)

var Log = logrus.New()

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	coverStyle      = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGray)
	flagStyle       = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorRed)
	tileStyle       = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)
	bombStyle       = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	textStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	panelStyle      = tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite)
)

var counterColors = []tcell.Color{
	tcell.ColorWhite,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorOrange,
	tcell.ColorPurple,
}

func counterColor(count uint8) tcell.Color {
	i := int(count) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(counterColors) {
		i = len(counterColors) - 1
	}
	return counterColors[i]
}

const (
	coverGlyph = '#'
	flagGlyph  = 'F'
	bombGlyph  = '*'
)

// View draws a board on a terminal screen. It issues the handles of the
// board cells: a handle stands for the cover drawn over one cell.
type View struct {
	screen  tcell.Screen
	padding float64

	next    board.Handle
	tiles   map[board.Coordinate]board.Tile
	covers  map[board.Handle]board.Coordinate
	flagged map[board.Handle]bool

	cursor  board.Coordinate
	buttons tcell.ButtonMask
}

func NewView(screen tcell.Screen, padding float64) *View {
	v := &View{screen: screen, padding: padding}
	v.Reset()
	return v
}

// View implements [board.Spawner]
func (v *View) Spawn(c board.Coordinate, t board.Tile) board.Handle {
	v.next++
	v.tiles[c] = t
	v.covers[v.next] = c
	return v.next
}

// View implements [game.Renderer]
func (v *View) Reset() {
	v.tiles = make(map[board.Coordinate]board.Tile)
	v.covers = make(map[board.Handle]board.Coordinate)
	v.flagged = make(map[board.Handle]bool)
	v.cursor = board.Coordinate{}
}

func (v *View) Viewport() *board.Vec2 {
	w, h := v.screen.Size()
	return &board.Vec2{X: float64(w), Y: float64(h)}
}

// Apply updates the drawn state from the events of a tick.
func (v *View) Apply(events []board.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case board.TileUncovered:
			v.despawn(e.Handle)
		case board.TileMarked:
			if _, ok := v.covers[e.Handle]; !ok {
				Log.WithField("handle", e.Handle).Warn("mark on unknown cover")
				continue
			}
			v.flagged[e.Handle] = e.Marked
		case board.TilesCleared:
			for _, h := range e.Handles {
				v.despawn(h)
			}
		case board.GameCompleted:
			Log.WithField("won", e.Won).Info("game completed")
		}
	}
}

func (v *View) despawn(h board.Handle) {
	if _, ok := v.covers[h]; !ok {
		Log.WithField("handle", h).Warn("despawning unknown cover")
		return
	}
	delete(v.covers, h)
	delete(v.flagged, h)
}

// Draw renders the session and shows the screen.
func (v *View) Draw(s *game.Session) {
	v.screen.Clear()
	if b, err := s.Board(); err == nil {
		v.drawBoard(b, s.State() == game.InGame)
		v.drawHeader(b)
	}
	if s.State() == game.Out {
		v.drawPanel(s.Title())
	}
	v.screen.Show()
}

func (v *View) drawBoard(b *board.Board, showCursor bool) {
	viewport := v.Viewport()
	width, height := v.screen.Size()

	covered := make(map[board.Coordinate]board.Handle, len(v.covers))
	for h, c := range v.covers {
		covered[c] = h
	}

	bounds := b.Bounds()
	ts := b.TileSize()
	inner := ts - v.padding
	center := int(inner / 2)

	for row := range height {
		for col := range width {
			raw := board.Vec2{X: float64(col), Y: float64(row)}
			c, ok := b.PointerToCell(raw, *viewport)
			if !ok {
				continue
			}
			local := board.Vec2{
				X: raw.X - viewport.X/2 - bounds.Position.X - float64(c.X)*ts,
				Y: viewport.Y/2 - raw.Y - bounds.Position.Y - float64(c.Y)*ts,
			}
			if local.X >= inner || local.Y >= inner {
				v.screen.SetContent(col, row, ' ', nil, backgroundStyle)
				continue
			}

			glyph, style := v.cellLook(c, covered)
			if int(local.X) != center || int(local.Y) != center {
				glyph = ' '
			}
			if showCursor && c == v.cursor {
				style = style.Reverse(true)
			}
			v.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (v *View) cellLook(c board.Coordinate, covered map[board.Coordinate]board.Handle) (rune, tcell.Style) {
	if h, ok := covered[c]; ok {
		if v.flagged[h] {
			return flagGlyph, flagStyle
		}
		return coverGlyph, coverStyle
	}
	t := v.tiles[c]
	switch {
	case t.IsBomb():
		return bombGlyph, bombStyle
	case t.IsEmpty():
		return ' ', tileStyle
	default:
		return rune('0' + t.NeighborCount()), tileStyle.Foreground(counterColor(t.NeighborCount()))
	}
}

func (v *View) drawHeader(b *board.Board) {
	flags := 0
	for _, f := range v.flagged {
		if f {
			flags++
		}
	}
	drawText(v.screen, 0, 0, textStyle, fmt.Sprintf(
		"bombs: %d  flags: %d  covered: %d",
		b.TileMap().BombCount(), flags, len(v.covers),
	))
}

func (v *View) drawPanel(title string) {
	lines := []string{title, "", "[n] New Game", "[q] Quit"}
	width, height := v.screen.Size()
	panelWidth := 20
	top := height/2 - len(lines)/2 - 1
	left := width/2 - panelWidth/2
	for y := top; y < top+len(lines)+2; y++ {
		for x := left; x < left+panelWidth; x++ {
			v.screen.SetContent(x, y, ' ', nil, panelStyle)
		}
	}
	for i, line := range lines {
		drawText(v.screen, width/2-len(line)/2, top+1+i, panelStyle, line)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
