package board

import "strconv"

// Tile is the logical content of one cell:
//
//   - 0 means the cell is empty, with no bomb around it.
//   - 1 to 8 is the number of bombs in the 8-neighborhood.
//   - -1 means the cell holds a bomb.
type Tile int8

const (
	Empty Tile = 0
	Bomb  Tile = -1
)

// BombNeighbor returns the tile for a safe cell with n bombs around it.
func BombNeighbor(n uint8) Tile {
	return Tile(n)
}

func (t Tile) IsBomb() bool {
	return t == Bomb
}

func (t Tile) IsEmpty() bool {
	return t == Empty
}

// NeighborCount is 0 for bombs and empty tiles.
func (t Tile) NeighborCount() uint8 {
	if t <= 0 {
		return 0
	}
	return uint8(t)
}

// Tile implements [fmt.Stringer]
func (t Tile) String() string {
	switch {
	case t == Bomb:
		return "*"
	case t == Empty:
		return " "
	case 1 <= t && t <= 8:
		return strconv.Itoa(int(t))
	default:
		return "!"
	}
}
