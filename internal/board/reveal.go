package board

import "log/slog"

// Cascade uncovers cells in breadth layers. Each call to Step processes one
// layer; the covered set doubles as the visited set, so every cell is
// uncovered at most once and the work is bounded by the map size.
type Cascade struct {
	board   *Board
	pending []Coordinate
	done    bool
}

func NewCascade(b *Board) *Cascade {
	return &Cascade{board: b}
}

// Trigger queues c for the next layer. Marked and uncovered cells are
// ignored, as is everything after the game has completed.
func (c *Cascade) Trigger(coord Coordinate) bool {
	if c.done {
		return false
	}
	if _, ok := c.board.CoveredHandle(coord); !ok {
		return false
	}
	c.pending = append(c.pending, coord)
	return true
}

// Pending reports whether another Step has work to do.
func (c *Cascade) Pending() bool {
	return len(c.pending) > 0
}

// Done reports whether a GameCompleted event has been raised.
func (c *Cascade) Done() bool {
	return c.done
}

// Step uncovers the pending layer and queues the covered neighbors of every
// empty tile it reveals. A bomb ends the cascade with a loss; an exhausted
// worklist on a completed board ends it with a win.
func (c *Cascade) Step() []Event {
	if len(c.pending) == 0 {
		return nil
	}

	var (
		events []Event
		next   []Coordinate
	)
	for _, coord := range c.pending {
		h, ok := c.board.Uncover(coord)
		if !ok {
			Log.Debug("tried to uncover an already uncovered tile",
				slog.String("coordinate", coord.String()))
			continue
		}
		t, _ := c.board.tileMap.At(coord)
		events = append(events, TileUncovered{Coordinate: coord, Handle: h, Tile: t})
		Log.Debug("uncovered tile",
			slog.String("coordinate", coord.String()),
			slog.Uint64("handle", uint64(h)),
		)

		switch {
		case t.IsBomb():
			Log.Info("boom", slog.String("coordinate", coord.String()))
			c.pending = nil
			c.done = true
			return append(events, GameCompleted{Won: false})
		case t.IsEmpty():
			next = append(next, c.board.adjacentCovered(coord)...)
		}
	}

	c.pending = next
	if len(c.pending) == 0 && c.board.Completed() {
		Log.Info("board completed")
		c.done = true
		events = append(events, GameCompleted{Won: true})
	}
	return events
}

// Drain runs Step until the worklist is empty.
func (c *Cascade) Drain() []Event {
	var events []Event
	for c.Pending() {
		events = append(events, c.Step()...)
	}
	return events
}
