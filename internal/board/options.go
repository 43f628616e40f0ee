package board

import (
	"fmt"
	"math"
)

// TileSize is either a fixed edge length or an adaptive range resolved
// against the viewport.
type TileSize struct {
	Adaptive bool
	Fixed    float64
	Min, Max float64
}

func FixedTileSize(v float64) TileSize {
	return TileSize{Fixed: v}
}

func AdaptiveTileSize(min, max float64) TileSize {
	return TileSize{Adaptive: true, Min: min, Max: max}
}

// Resolve returns the edge length of one tile for a width x height map.
// Adaptive sizes need a viewport.
func (s TileSize) Resolve(viewport *Vec2, width, height uint16) (float64, error) {
	if !s.Adaptive {
		return s.Fixed, nil
	}
	if viewport == nil {
		return 0, ErrNoViewport
	}
	maxWidth := viewport.X / float64(width)
	maxHeight := viewport.Y / float64(height)
	return math.Min(math.Max(math.Min(maxWidth, maxHeight), s.Min), s.Max), nil
}

// Position places the board either centered on the origin, shifted by
// Offset, or with its bottom left corner at an absolute point.
type Position struct {
	Custom bool
	Offset Vec2
	Point  Vec2
}

func Centered(offset Vec2) Position {
	return Position{Offset: offset}
}

func CustomPosition(p Vec2) Position {
	return Position{Custom: true, Point: p}
}

func (p Position) Resolve(boardSize Vec2) Vec2 {
	if p.Custom {
		return p.Point
	}
	return boardSize.Scale(-0.5).Add(p.Offset)
}

type Options struct {
	Width, Height uint16
	BombCount     uint16
	TileSize      TileSize
	Position      Position
	// TilePadding only shrinks the rendered tile.
	TilePadding float64
}

func DefaultOptions() Options {
	return Options{
		Width:     15,
		Height:    15,
		BombCount: 30,
		TileSize:  AdaptiveTileSize(10, 50),
		Position:  Centered(Vec2{}),
	}
}

func (o Options) Validate() error {
	if o.Width == 0 || o.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyMap, o.Width, o.Height)
	}
	if int(o.BombCount) > int(o.Width)*int(o.Height) {
		return fmt.Errorf("%w: %d bombs on %dx%d", ErrTooManyBombs, o.BombCount, o.Width, o.Height)
	}
	ts := o.TileSize
	if ts.Adaptive {
		if ts.Min <= 0 || ts.Max < ts.Min {
			return fmt.Errorf("%w: adaptive range [%g, %g]", ErrInvalidTileSize, ts.Min, ts.Max)
		}
	} else if ts.Fixed <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidTileSize, ts.Fixed)
	}
	if o.TilePadding < 0 {
		return fmt.Errorf("%w: negative padding %g", ErrInvalidTileSize, o.TilePadding)
	}
	return nil
}
