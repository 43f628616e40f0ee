package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-board/internal/board"
)

type State int

const (
	InGame State = iota
	Out
)

func (s State) String() string {
	switch s {
	case InGame:
		return "in game"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Pacing controls how much of a cascade is run per tick.
type Pacing int

const (
	// Drain runs a cascade to the end in the tick that triggered it.
	Drain Pacing = iota
	// Layer uncovers one breadth layer per tick.
	Layer
)

func ParsePacing(s string) (Pacing, error) {
	switch s {
	case "drain", "":
		return Drain, nil
	case "layer":
		return Layer, nil
	default:
		return Drain, fmt.Errorf("unknown cascade pacing %q", s)
	}
}

const (
	TitleMenu = "MENU"
	TitleWon  = "YOU WON!"
	TitleLost = "GAME OVER!"
)

// Renderer is the collaborator that owns the handles of a board.
type Renderer interface {
	board.Spawner
	// Reset drops every handle of the previous board.
	Reset()
}

type requestKind int

const (
	trigger requestKind = iota
	mark
)

type request struct {
	kind  requestKind
	coord board.Coordinate
}

// Session hosts one game at a time. It is not safe for concurrent use:
// a single loop calls Trigger, Mark and Tick.
type Session struct {
	logger   *slog.Logger
	options  board.Options
	pacing   Pacing
	rnd      *rand.Rand
	renderer Renderer

	state    State
	title    string
	board    *board.Board
	cascade  *board.Cascade
	requests []request
}

func NewSession(
	logger *slog.Logger,
	options board.Options,
	pacing Pacing,
	rnd *rand.Rand,
	renderer Renderer,
) *Session {
	return &Session{
		logger:   logger,
		options:  options,
		pacing:   pacing,
		rnd:      rnd,
		renderer: renderer,
		state:    Out,
		title:    TitleMenu,
	}
}

// Start builds a fresh board and enters the InGame state. Any previous
// board is discarded.
func (s *Session) Start(viewport *board.Vec2) error {
	s.renderer.Reset()
	b, err := board.Build(s.options, viewport, s.rnd, s.renderer)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}
	s.board = b
	s.cascade = board.NewCascade(b)
	s.requests = nil
	s.state = InGame
	s.logger.Info("new game",
		slog.Int("width", int(s.options.Width)),
		slog.Int("height", int(s.options.Height)),
		slog.Int("bombs", int(s.options.BombCount)),
	)
	return nil
}

var ErrNoBoard = errors.New("no board")

func (s *Session) Board() (*board.Board, error) {
	if s.board == nil {
		return nil, ErrNoBoard
	}
	return s.board, nil
}

func (s *Session) State() State {
	return s.state
}

// Title is the heading of the screen shown in the Out state.
func (s *Session) Title() string {
	return s.title
}

// Trigger queues a reveal of c for the next tick.
func (s *Session) Trigger(c board.Coordinate) {
	if s.state != InGame {
		return
	}
	s.requests = append(s.requests, request{trigger, c})
}

// Mark queues a mark toggle of c for the next tick.
func (s *Session) Mark(c board.Coordinate) {
	if s.state != InGame {
		return
	}
	s.requests = append(s.requests, request{mark, c})
}

// Busy reports whether a cascade is still running.
func (s *Session) Busy() bool {
	return s.state == InGame && s.cascade.Pending()
}

// Tick applies the queued requests, then advances the cascade according
// to the pacing, and returns what happened.
func (s *Session) Tick() []board.Event {
	if s.state != InGame {
		s.requests = nil
		return nil
	}

	var events []board.Event
	for _, r := range s.requests {
		switch r.kind {
		case trigger:
			s.cascade.Trigger(r.coord)
		case mark:
			h, marked, ok := s.board.ToggleMark(r.coord)
			if !ok {
				continue
			}
			s.logger.Debug("toggled mark",
				slog.String("coordinate", r.coord.String()),
				slog.Bool("marked", marked),
			)
			events = append(events, board.TileMarked{Coordinate: r.coord, Handle: h, Marked: marked})
		}
	}
	s.requests = s.requests[:0]

	switch s.pacing {
	case Layer:
		events = append(events, s.cascade.Step()...)
	default:
		events = append(events, s.cascade.Drain()...)
	}

	for _, e := range events {
		if c, ok := e.(board.GameCompleted); ok {
			if c.Won {
				s.logger.Info("board completed")
				events = append(events, s.exit(TitleWon))
			} else {
				s.logger.Info("bomb revealed")
				events = append(events, s.exit(TitleLost))
			}
			break
		}
	}
	return events
}

// Menu leaves the current game without finishing it.
func (s *Session) Menu() []board.Event {
	if s.state != InGame {
		return nil
	}
	s.logger.Info("clearing game")
	return []board.Event{s.exit(TitleMenu)}
}

func (s *Session) exit(title string) board.Event {
	s.state = Out
	s.title = title
	s.requests = nil
	return board.TilesCleared{Handles: s.board.ClearCovered()}
}
