package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/board"
	"github.com/vancomm/minesweeper-board/internal/game"
)

var cursorMoves = map[tcell.Key]board.Offset{
	tcell.KeyLeft:  {DX: -1},
	tcell.KeyRight: {DX: 1},
	tcell.KeyUp:    {DY: 1},
	tcell.KeyDown:  {DY: -1},
}

// Handle turns one terminal event into session requests. quit is true when
// the player asked to leave.
func (v *View) Handle(ev tcell.Event, s *game.Session) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev, s)
	case *tcell.EventMouse:
		v.handleMouse(ev, s)
	}
	return false, nil
}

func (v *View) handleKey(ev *tcell.EventKey, s *game.Session) (bool, error) {
	if ev.Key() == tcell.KeyCtrlC {
		return true, nil
	}

	if s.State() == game.Out {
		if ev.Key() != tcell.KeyRune {
			return false, nil
		}
		switch ev.Rune() {
		case 'q':
			return true, nil
		case 'n':
			Log.Info("new game requested")
			return false, s.Start(v.Viewport())
		}
		return false, nil
	}

	b, err := s.Board()
	if err != nil {
		return false, nil
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		v.Apply(s.Menu())
	case tcell.KeyEnter:
		s.Trigger(v.cursor)
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown:
		v.moveCursor(b, cursorMoves[ev.Key()])
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			s.Trigger(v.cursor)
		case 'f':
			s.Mark(v.cursor)
		}
	}
	return false, nil
}

func (v *View) moveCursor(b *board.Board, o board.Offset) {
	c := v.cursor.Shift(o)
	c.X = min(c.X, b.TileMap().Width()-1)
	c.Y = min(c.Y, b.TileMap().Height()-1)
	v.cursor = c
}

// handleMouse raises requests on button presses only; holding a button or
// moving with it held does nothing.
func (v *View) handleMouse(ev *tcell.EventMouse, s *game.Session) {
	buttons := ev.Buttons()
	pressed := buttons &^ v.buttons
	v.buttons = buttons
	if pressed&(tcell.Button1|tcell.Button2) == 0 || s.State() != game.InGame {
		return
	}

	b, err := s.Board()
	if err != nil {
		return
	}
	x, y := ev.Position()
	c, ok := b.PointerToCell(board.Vec2{X: float64(x), Y: float64(y)}, *v.Viewport())
	if !ok {
		Log.WithFields(logrus.Fields{"x": x, "y": y}).Trace("click outside the board")
		return
	}
	v.cursor = c

	if pressed&tcell.Button1 != 0 {
		Log.WithField("coordinate", c.String()).Debug("reveal requested")
		s.Trigger(c)
	}
	if pressed&tcell.Button2 != 0 {
		Log.WithField("coordinate", c.String()).Debug("mark requested")
		s.Mark(c)
	}
}
