package board

import (
	"log/slog"
	"os"
	"testing"

	"github.com/lmittmann/tint"
)

func TestMain(m *testing.M) {
	Log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   slog.LevelWarn,
		NoColor: true,
	}))
	os.Exit(m.Run())
}

// mapWithBombs builds a map with bombs exactly at the given cells.
func mapWithBombs(t *testing.T, width, height uint16, bombs ...Coordinate) *TileMap {
	t.Helper()
	m, err := NewTileMap(width, height)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range bombs {
		m.tiles[m.index(c)] = Bomb
	}
	m.placed = true
	m.bombCount = uint16(len(bombs))
	m.countNeighbors()
	return m
}

type counterSpawner struct {
	next  Handle
	cells map[Handle]Coordinate
}

func newCounterSpawner() *counterSpawner {
	return &counterSpawner{cells: make(map[Handle]Coordinate)}
}

func (s *counterSpawner) Spawn(c Coordinate, _ Tile) Handle {
	s.next++
	s.cells[s.next] = c
	return s.next
}

func boardWithBombs(t *testing.T, width, height uint16, bombs ...Coordinate) (*Board, *counterSpawner) {
	t.Helper()
	m := mapWithBombs(t, width, height, bombs...)
	const tileSize = 10
	size := Vec2{float64(width) * tileSize, float64(height) * tileSize}
	bounds := Bounds{Position: Centered(Vec2{}).Resolve(size), Size: size}
	spawner := newCounterSpawner()
	return New(m, bounds, tileSize, spawner), spawner
}
