package board

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"
)

// TileMap is the rectangular grid of tiles, stored row-major by y then x.
// Bombs are placed once with SetBombs and the map is immutable after that.
type TileMap struct {
	width, height uint16
	bombCount     uint16
	placed        bool
	tiles         []Tile
}

// NewTileMap returns a width x height map with every tile [Empty].
func NewTileMap(width, height uint16) (*TileMap, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyMap, width, height)
	}
	return &TileMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, int(width)*int(height)),
	}, nil
}

func (m *TileMap) Width() uint16 {
	return m.width
}

func (m *TileMap) Height() uint16 {
	return m.height
}

func (m *TileMap) BombCount() uint16 {
	return m.bombCount
}

// Size is the number of cells in the map.
func (m *TileMap) Size() int {
	return len(m.tiles)
}

func (m *TileMap) inBounds(c Coordinate) bool {
	return c.X < m.width && c.Y < m.height
}

func (m *TileMap) index(c Coordinate) int {
	return int(c.Y)*int(m.width) + int(c.X)
}

// At returns the tile at c. ok is false if c lies outside the map.
func (m *TileMap) At(c Coordinate) (t Tile, ok bool) {
	if !m.inBounds(c) {
		return Empty, false
	}
	return m.tiles[m.index(c)], true
}

// IsBombAt reports false for any coordinate outside the map.
func (m *TileMap) IsBombAt(c Coordinate) bool {
	if !m.inBounds(c) {
		return false
	}
	return m.tiles[m.index(c)].IsBomb()
}

// NeighborCountAt returns 0 for bombs and for coordinates outside the map.
func (m *TileMap) NeighborCountAt(c Coordinate) uint8 {
	if !m.inBounds(c) {
		return 0
	}
	return m.tiles[m.index(c)].NeighborCount()
}

// SafeNeighbors yields the square neighbors of c. Offsets that would make a
// component negative are dropped; results past the width or height are not,
// so callers must go through the bounds-checked queries.
func (m *TileMap) SafeNeighbors(c Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, o := range squareOffsets {
			n, ok := c.Neighbor(o)
			if !ok {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func (m *TileMap) countBombsAround(c Coordinate) uint8 {
	var n uint8
	for nb := range m.SafeNeighbors(c) {
		if m.IsBombAt(nb) {
			n++
		}
	}
	return n
}

// SetBombs places count bombs on distinct random cells and then computes
// the neighbor count of every safe tile. It must be called once.
func (m *TileMap) SetBombs(count uint16, r *rand.Rand) error {
	if m.placed {
		return AssertionError{"bombs already placed"}
	}
	if int(count) > len(m.tiles) {
		return fmt.Errorf("%w: %d bombs on %d cells", ErrTooManyBombs, count, len(m.tiles))
	}
	m.placed = true
	m.bombCount = count

	remaining := count
	for remaining > 0 {
		c := Coordinate{
			X: uint16(r.IntN(int(m.width))),
			Y: uint16(r.IntN(int(m.height))),
		}
		i := m.index(c)
		if m.tiles[i] == Empty {
			m.tiles[i] = Bomb
			remaining--
		}
	}

	m.countNeighbors()
	return nil
}

func (m *TileMap) countNeighbors() {
	for y := range m.height {
		for x := range m.width {
			c := Coordinate{X: x, Y: y}
			i := m.index(c)
			if m.tiles[i].IsBomb() {
				continue
			}
			m.tiles[i] = BombNeighbor(m.countBombsAround(c))
		}
	}
}

// All yields every coordinate with its tile, row by row.
func (m *TileMap) All() iter.Seq2[Coordinate, Tile] {
	return func(yield func(Coordinate, Tile) bool) {
		for y := range m.height {
			for x := range m.width {
				c := Coordinate{X: x, Y: y}
				if !yield(c, m.tiles[m.index(c)]) {
					return
				}
			}
		}
	}
}

// TileMap implements [fmt.Stringer]. The top row is printed first.
func (m *TileMap) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Map (%d, %d) with %d bombs:\n", m.width, m.height, m.bombCount)
	line := strings.Repeat("-", int(m.width)+2)
	b.WriteString(line + "\n")
	for y := int(m.height) - 1; y >= 0; y-- {
		b.WriteString("|")
		for x := range m.width {
			b.WriteString(m.tiles[m.index(Coordinate{X: x, Y: uint16(y)})].String())
		}
		b.WriteString("|\n")
	}
	b.WriteString(line)
	return b.String()
}
