package board

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
)

var Log *slog.Logger = slog.Default()

// Handle identifies the rendered representation of a cell. Handles are
// issued by the renderer; the board only stores and compares them.
type Handle uint64

// Spawner is the rendering side of a board: it is asked for one handle per
// cell when the board is built.
type Spawner interface {
	Spawn(c Coordinate, t Tile) Handle
}

// SpawnerFunc adapts a function to [Spawner].
type SpawnerFunc func(c Coordinate, t Tile) Handle

func (f SpawnerFunc) Spawn(c Coordinate, t Tile) Handle {
	return f(c, t)
}

// Board is the state of one game: the tile map, where it sits in board
// space, and which cells are still covered or marked.
type Board struct {
	tileMap  *TileMap
	bounds   Bounds
	tileSize float64
	covered  map[Coordinate]Handle
	marked   []Coordinate
}

// New covers every cell of tileMap, asking spawner for the handles.
func New(tileMap *TileMap, bounds Bounds, tileSize float64, spawner Spawner) *Board {
	covered := make(map[Coordinate]Handle, tileMap.Size())
	for c, t := range tileMap.All() {
		covered[c] = spawner.Spawn(c, t)
	}
	return &Board{
		tileMap:  tileMap,
		bounds:   bounds,
		tileSize: tileSize,
		covered:  covered,
	}
}

// Build creates and covers a new board from opts. The viewport is required
// only for adaptive tile sizes; r is used once to place the bombs.
func Build(opts Options, viewport *Vec2, r *rand.Rand, spawner Spawner) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tileMap, err := NewTileMap(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if err := tileMap.SetBombs(opts.BombCount, r); err != nil {
		return nil, err
	}
	Log.Debug("tile map generated", slog.String("map", "\n"+tileMap.String()))

	tileSize, err := opts.TileSize.Resolve(viewport, tileMap.Width(), tileMap.Height())
	if err != nil {
		return nil, fmt.Errorf("unable to resolve tile size: %w", err)
	}
	size := Vec2{
		X: float64(tileMap.Width()) * tileSize,
		Y: float64(tileMap.Height()) * tileSize,
	}
	bounds := Bounds{Position: opts.Position.Resolve(size), Size: size}
	Log.Debug("board placed",
		slog.Float64("tileSize", tileSize),
		slog.Any("position", bounds.Position),
		slog.Any("size", bounds.Size),
	)

	return New(tileMap, bounds, tileSize, spawner), nil
}

func (b *Board) TileMap() *TileMap {
	return b.tileMap
}

func (b *Board) Bounds() Bounds {
	return b.bounds
}

func (b *Board) TileSize() float64 {
	return b.tileSize
}

// PointerToCell maps a raw pointer position (origin top left, y down) in a
// viewport of the given size to the cell under it.
func (b *Board) PointerToCell(raw Vec2, viewport Vec2) (Coordinate, bool) {
	p := Vec2{
		X: raw.X - viewport.X/2,
		Y: viewport.Y/2 - raw.Y,
	}
	if !b.bounds.Contains(p) {
		return Coordinate{}, false
	}
	local := p.Sub(b.bounds.Position)
	c := Coordinate{
		X: uint16(local.X / b.tileSize),
		Y: uint16(local.Y / b.tileSize),
	}
	// the far edges are inside the bounds but divide to width and height
	c.X = min(c.X, b.tileMap.Width()-1)
	c.Y = min(c.Y, b.tileMap.Height()-1)
	return c, true
}

// CoveredHandle returns the handle of a covered cell that is not marked.
func (b *Board) CoveredHandle(c Coordinate) (Handle, bool) {
	if b.IsMarked(c) {
		return 0, false
	}
	h, ok := b.covered[c]
	return h, ok
}

func (b *Board) IsCovered(c Coordinate) bool {
	_, ok := b.covered[c]
	return ok
}

func (b *Board) IsMarked(c Coordinate) bool {
	return slices.Contains(b.marked, c)
}

// Uncover removes c from the covered cells, unmarking it first.
func (b *Board) Uncover(c Coordinate) (Handle, bool) {
	if b.IsMarked(c) {
		b.unmark(c)
	}
	h, ok := b.covered[c]
	if ok {
		delete(b.covered, c)
	}
	return h, ok
}

func (b *Board) adjacentCovered(c Coordinate) []Coordinate {
	var res []Coordinate
	for n := range b.tileMap.SafeNeighbors(c) {
		if _, ok := b.covered[n]; ok {
			res = append(res, n)
		}
	}
	return res
}

// AdjacentCoveredHandles returns the handles of the covered neighbors of c.
func (b *Board) AdjacentCoveredHandles(c Coordinate) []Handle {
	var res []Handle
	for _, n := range b.adjacentCovered(c) {
		res = append(res, b.covered[n])
	}
	return res
}

// ToggleMark flips the mark on a covered cell and reports the new state.
// ok is false if c is not covered.
func (b *Board) ToggleMark(c Coordinate) (h Handle, marked bool, ok bool) {
	h, ok = b.covered[c]
	if !ok {
		return 0, false, false
	}
	if b.IsMarked(c) {
		if !b.unmark(c) {
			return 0, false, false
		}
		return h, false, true
	}
	b.marked = append(b.marked, c)
	return h, true, true
}

func (b *Board) unmark(c Coordinate) bool {
	i := slices.Index(b.marked, c)
	if i < 0 {
		Log.Error("failed to unmark tile", slog.String("coordinate", c.String()))
		return false
	}
	b.marked = slices.Delete(b.marked, i, i+1)
	return true
}

// Marked returns the marked cells in the order they were marked.
func (b *Board) Marked() []Coordinate {
	return slices.Clone(b.marked)
}

func (b *Board) CoveredCount() int {
	return len(b.covered)
}

// Completed reports whether only the bombs are still covered.
func (b *Board) Completed() bool {
	return len(b.covered) == int(b.tileMap.BombCount())
}

// ClearCovered uncovers everything left and returns the dropped handles.
func (b *Board) ClearCovered() []Handle {
	handles := make([]Handle, 0, len(b.covered))
	for c, h := range b.covered {
		handles = append(handles, h)
		delete(b.covered, c)
	}
	b.marked = nil
	return handles
}
