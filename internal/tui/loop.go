package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-board/internal/game"
)

// Run polls the screen for input and ticks the session every interval
// until the player quits or ctx is done. The screen is finalized on return.
// The session is only touched from the tick loop.
func Run(ctx context.Context, screen tcell.Screen, view *View, session *game.Session, interval time.Duration) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			case <-gCtx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer close(done)
		defer screen.Fini()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		view.Draw(session)
		for {
			select {
			case <-gCtx.Done():
				return nil
			case ev := <-events:
				quit, err := view.Handle(ev, session)
				if err != nil {
					return err
				}
				if quit {
					Log.Info("quit requested")
					return nil
				}
			case <-ticker.C:
				view.Apply(session.Tick())
				view.Draw(session)
			}
		}
	})

	return g.Wait()
}
