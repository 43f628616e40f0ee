package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-board/internal/board"
	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/game"
	"github.com/vancomm/minesweeper-board/internal/tui"
)

var (
	presetName string
	boardQuery string
)

func init() {
	const (
		presetUsage = "board preset: beginner, intermediate or expert"
		boardUsage  = "board settings as a query string, e.g. width=16&height=16&bomb_count=40"
	)
	flag.StringVar(&presetName, "preset", "", presetUsage)
	flag.StringVar(&presetName, "p", "", presetUsage+" (shorthand)")
	flag.StringVar(&boardQuery, "board", "", boardUsage)
	flag.StringVar(&boardQuery, "b", "", boardUsage+" (shorthand)")
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logCfg, err := config.NewLogging()
	if err != nil {
		return err
	}
	logger, closer := newLogger(logCfg)
	defer closer.Close()
	board.Log = logger

	if err := setupTerminalLogging(logCfg); err != nil {
		return fmt.Errorf("unable to set up terminal log: %w", err)
	}

	boardCfg, err := config.NewBoard(presetName, boardQuery)
	if err != nil {
		logger.Error("invalid board config", slog.Any("error", err))
		return fmt.Errorf("invalid board config: %w", err)
	}
	logger.Debug("config", slog.Any("board", boardCfg.Fields()))

	opts, err := boardCfg.Options()
	if err != nil {
		return err
	}
	pacing, err := boardCfg.CascadePacing()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	screen.EnableMouse()

	view := tui.NewView(screen, opts.TilePadding)
	session := game.NewSession(logger, opts, pacing, createRand(), view)
	if err := session.Start(view.Viewport()); err != nil {
		screen.Fini()
		logger.Error("failed to start game", slog.Any("error", err))
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("minesweeper started")
	if err := tui.Run(ctx, screen, view, session, boardCfg.TickInterval); err != nil {
		logger.Error("game loop failed", slog.Any("error", err))
		return err
	}
	logger.Info("minesweeper stopped")
	return nil
}
