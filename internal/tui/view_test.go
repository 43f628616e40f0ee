package tui

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-board/internal/board"
	"github.com/vancomm/minesweeper-board/internal/game"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Log.SetLevel(logrus.WarnLevel)
	m.Run()
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	return screen
}

// newTestGame places a width x height board of unit tiles in the middle of
// a 40x20 screen. The cell under screen column 20, row 10 is (width/2, height/2).
func newTestGame(t *testing.T, width, height, bombs uint16) (*View, *game.Session, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t)
	view := NewView(screen, 0)
	opts := board.Options{
		Width:     width,
		Height:    height,
		BombCount: bombs,
		TileSize:  board.FixedTileSize(1),
		Position:  board.Centered(board.Vec2{}),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := game.NewSession(logger, opts, game.Drain, rand.New(rand.NewPCG(1, 2)), view)
	require.NoError(t, session.Start(view.Viewport()))
	return view, session, screen
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewSpawnAndApply(t *testing.T) {
	view := NewView(newTestScreen(t), 0)
	h1 := view.Spawn(board.Coordinate{X: 0, Y: 0}, board.Empty)
	h2 := view.Spawn(board.Coordinate{X: 1, Y: 0}, board.Bomb)
	h3 := view.Spawn(board.Coordinate{X: 2, Y: 0}, board.BombNeighbor(1))
	assert.NotEqual(t, h1, h2)
	assert.Len(t, view.covers, 3)

	view.Apply([]board.Event{
		board.TileUncovered{Coordinate: board.Coordinate{}, Handle: h1, Tile: board.Empty},
		board.TileMarked{Coordinate: board.Coordinate{X: 1}, Handle: h2, Marked: true},
	})
	assert.Len(t, view.covers, 2)
	assert.True(t, view.flagged[h2])

	view.Apply([]board.Event{board.TilesCleared{Handles: []board.Handle{h2, h3}}})
	assert.Empty(t, view.covers)
	assert.Empty(t, view.flagged)

	view.Reset()
	assert.Empty(t, view.tiles)
}

func TestMouseReveal(t *testing.T) {
	view, session, _ := newTestGame(t, 3, 3, 0)

	_, err := view.Handle(mouse(20, 10, tcell.Button1), session)
	require.NoError(t, err)
	// still held: no second request
	_, err = view.Handle(mouse(21, 10, tcell.Button1), session)
	require.NoError(t, err)
	assert.Equal(t, board.Coordinate{X: 1, Y: 1}, view.cursor)

	events := session.Tick()
	view.Apply(events)

	var uncovered int
	for _, e := range events {
		if _, ok := e.(board.TileUncovered); ok {
			uncovered++
		}
	}
	assert.Equal(t, 9, uncovered)
	assert.Equal(t, game.Out, session.State())
	assert.Equal(t, game.TitleWon, session.Title())
	assert.Empty(t, view.covers)
}

func TestMouseMarkAndOutside(t *testing.T) {
	view, session, _ := newTestGame(t, 3, 3, 1)

	_, err := view.Handle(mouse(0, 0, tcell.Button1), session)
	require.NoError(t, err)
	_, err = view.Handle(mouse(0, 0, tcell.ButtonNone), session)
	require.NoError(t, err)
	assert.Empty(t, session.Tick(), "click outside the board")

	_, err = view.Handle(mouse(20, 10, tcell.Button2), session)
	require.NoError(t, err)
	events := session.Tick()
	require.Len(t, events, 1)
	marked := events[0].(board.TileMarked)
	assert.True(t, marked.Marked)
	assert.Equal(t, board.Coordinate{X: 1, Y: 1}, marked.Coordinate)

	view.Apply(events)
	assert.True(t, view.flagged[marked.Handle])
}

func TestKeyboard(t *testing.T) {
	view, session, _ := newTestGame(t, 3, 3, 1)

	for range 5 {
		_, err := view.Handle(key(tcell.KeyRight), session)
		require.NoError(t, err)
	}
	_, err := view.Handle(key(tcell.KeyUp), session)
	require.NoError(t, err)
	_, err = view.Handle(key(tcell.KeyDown), session)
	require.NoError(t, err)
	_, err = view.Handle(key(tcell.KeyDown), session)
	require.NoError(t, err)
	assert.Equal(t, board.Coordinate{X: 2, Y: 0}, view.cursor)

	_, err = view.Handle(runeKey('f'), session)
	require.NoError(t, err)
	events := session.Tick()
	require.Len(t, events, 1)
	assert.Equal(t, board.Coordinate{X: 2, Y: 0}, events[0].(board.TileMarked).Coordinate)

	quit, err := view.Handle(runeKey('q'), session)
	require.NoError(t, err)
	assert.False(t, quit, "q only quits from the menu")

	quit, err = view.Handle(key(tcell.KeyEscape), session)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, game.Out, session.State())
	assert.Equal(t, game.TitleMenu, session.Title())
	assert.Empty(t, view.covers)

	_, err = view.Handle(runeKey('n'), session)
	require.NoError(t, err)
	assert.Equal(t, game.InGame, session.State())
	assert.Len(t, view.covers, 9)

	quit, err = view.Handle(key(tcell.KeyCtrlC), session)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestDraw(t *testing.T) {
	view, session, screen := newTestGame(t, 3, 3, 9)
	view.Draw(session)

	r, _, _, _ := screen.GetContent(20, 10)
	assert.Equal(t, coverGlyph, r)
	r, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, 'b', r)

	_, err := view.Handle(mouse(20, 10, tcell.Button2), session)
	require.NoError(t, err)
	view.Apply(session.Tick())
	view.Draw(session)
	r, _, _, _ = screen.GetContent(20, 10)
	assert.Equal(t, flagGlyph, r)
}

func TestCounterColor(t *testing.T) {
	assert.Equal(t, tcell.ColorWhite, counterColor(1))
	assert.Equal(t, tcell.ColorPurple, counterColor(5))
	assert.Equal(t, tcell.ColorPurple, counterColor(8))
}

func TestRunQuits(t *testing.T) {
	view, session, screen := newTestGame(t, 3, 3, 1)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, Run(ctx, screen, view, session, 10*time.Millisecond))
	assert.NoError(t, ctx.Err(), "returned before the timeout")
}
