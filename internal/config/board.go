package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-board/internal/board"
	"github.com/vancomm/minesweeper-board/internal/game"
)

// Board holds the settings of a new game. Values come from the environment
// first, then from a preset, then from a query string.
type Board struct {
	Width     uint16 `env:"BOARD_WIDTH" envDefault:"20" schema:"width"`
	Height    uint16 `env:"BOARD_HEIGHT" envDefault:"20" schema:"height"`
	BombCount uint16 `env:"BOARD_BOMB_COUNT" envDefault:"40" schema:"bomb_count"`

	// a zero TileSize selects the adaptive range
	TileSize    float64 `env:"BOARD_TILE_SIZE" schema:"tile_size"`
	TileSizeMin float64 `env:"BOARD_TILE_SIZE_MIN" envDefault:"1" schema:"tile_size_min"`
	TileSizeMax float64 `env:"BOARD_TILE_SIZE_MAX" envDefault:"3" schema:"tile_size_max"`
	TilePadding float64 `env:"BOARD_TILE_PADDING" schema:"tile_padding"`

	Custom  bool    `env:"BOARD_POSITION_CUSTOM" schema:"custom"`
	X       float64 `env:"BOARD_X" schema:"x"`
	Y       float64 `env:"BOARD_Y" schema:"y"`
	OffsetX float64 `env:"BOARD_OFFSET_X" schema:"offset_x"`
	OffsetY float64 `env:"BOARD_OFFSET_Y" schema:"offset_y"`

	Pacing       string        `env:"CASCADE_PACING" envDefault:"drain" schema:"pacing"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"33ms" schema:"-"`
}

type preset struct {
	width, height, bombs uint16
}

var presets = map[string]preset{
	"beginner":     {9, 9, 10},
	"intermediate": {16, 16, 40},
	"expert":       {30, 16, 99},
}

// NewBoard reads the environment, applies the named preset (if any) and
// then overrides fields from query.
func NewBoard(presetName, query string) (*Board, error) {
	var cfg Board
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse board env: %w", err)
	}

	if presetName != "" {
		p, ok := presets[presetName]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", presetName)
		}
		cfg.Width, cfg.Height, cfg.BombCount = p.width, p.height, p.bombs
	}

	if query != "" {
		if err := cfg.decodeQuery(query); err != nil {
			return nil, err
		}
	}

	if _, err := cfg.Options(); err != nil {
		return nil, err
	}
	if _, err := cfg.CascadePacing(); err != nil {
		return nil, err
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	return &cfg, nil
}

func (c *Board) decodeQuery(query string) error {
	values, err := url.ParseQuery(query)
	if err != nil {
		return fmt.Errorf("malformed board query: %w", err)
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(false)
	if err := dec.Decode(c, values); err != nil {
		return fmt.Errorf("unable to decode board query: %w", err)
	}
	return nil
}

// Options converts the settings and validates them.
func (c Board) Options() (board.Options, error) {
	opts := board.Options{
		Width:       c.Width,
		Height:      c.Height,
		BombCount:   c.BombCount,
		TileSize:    board.AdaptiveTileSize(c.TileSizeMin, c.TileSizeMax),
		Position:    board.Centered(board.Vec2{X: c.OffsetX, Y: c.OffsetY}),
		TilePadding: c.TilePadding,
	}
	if c.TileSize != 0 {
		opts.TileSize = board.FixedTileSize(c.TileSize)
	}
	if c.Custom {
		opts.Position = board.CustomPosition(board.Vec2{X: c.X, Y: c.Y})
	}
	if err := opts.Validate(); err != nil {
		return board.Options{}, err
	}
	return opts, nil
}

func (c Board) CascadePacing() (game.Pacing, error) {
	return game.ParsePacing(c.Pacing)
}

func (c Board) Fields() map[string]any {
	return map[string]any{
		"width":         c.Width,
		"height":        c.Height,
		"bomb_count":    c.BombCount,
		"tile_size":     c.TileSize,
		"tile_size_min": c.TileSizeMin,
		"tile_size_max": c.TileSizeMax,
		"tile_padding":  c.TilePadding,
		"custom":        c.Custom,
		"pacing":        c.Pacing,
		"tick_interval": c.TickInterval.String(),
	}
}
