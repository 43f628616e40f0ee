package board

// Event is a notification for the collaborators drawing the board.
type Event interface {
	event()
}

// TileUncovered is raised for every cell taken out of the covered set.
type TileUncovered struct {
	Coordinate Coordinate
	Handle     Handle
	Tile       Tile
}

// TileMarked is raised when a mark is toggled.
type TileMarked struct {
	Coordinate Coordinate
	Handle     Handle
	Marked     bool
}

// GameCompleted is raised once per game: Won is false when a bomb was hit.
type GameCompleted struct {
	Won bool
}

// TilesCleared is raised when the remaining covers are dropped at game end.
type TilesCleared struct {
	Handles []Handle
}

func (TileUncovered) event() {}
func (TileMarked) event()    {}
func (GameCompleted) event() {}
func (TilesCleared) event()  {}
