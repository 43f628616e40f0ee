package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/tui"
)

// newLogger writes to a rotating file: the terminal belongs to the game.
func newLogger(cfg *config.Logging) (*slog.Logger, io.Closer) {
	out := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}

	var handler slog.Handler = slog.NewJSONHandler(out, nil)
	if config.Development() {
		handler = tint.NewHandler(out, &tint.Options{
			Level:   slog.LevelDebug,
			NoColor: true,
		})
	}
	return slog.New(handler), out
}

func setupTerminalLogging(cfg *config.Logging) error {
	level := logrus.InfoLevel
	if config.Development() {
		level = logrus.DebugLevel
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.TerminalFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return err
	}
	tui.Log.SetOutput(io.Discard)
	tui.Log.SetLevel(level)
	tui.Log.AddHook(hook)
	return nil
}
