package entity

import (
	"fmt"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
)

const (
	Rows = 7
	Cols = 9
)

type TileKind int8

const (
	Land TileKind = iota
	Lake
	Trap
	HomeBase
)

func (k TileKind) String() string {
	switch k {
	case Land:
		return "land"
	case Lake:
		return "lake"
	case Trap:
		return "trap"
	case HomeBase:
		return "home"
	default:
		return "unknown"
	}
}

var (
	lakePositions = []Position{
		{1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {2, 5},
		{4, 3}, {4, 4}, {4, 5}, {5, 3}, {5, 4}, {5, 5},
	}
	trapPositions = map[Color][]Position{
		Blue:  {{2, 0}, {4, 0}, {3, 1}},
		Green: {{2, 8}, {4, 8}, {3, 7}},
	}
	homePositions = map[Color]Position{
		Blue:  {3, 0},
		Green: {3, 8},
	}
)

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Tile is a read-only snapshot of a board square.
type Tile struct {
	Position Position
	Kind     TileKind
	Owner    Color
	occupant PieceID
}

func (that Tile) Occupant() PieceID {
	return that.occupant
}

func (that Tile) IsOccupied() bool {
	return that.occupant != NoPiece
}

func (that Tile) IsLake() bool {
	return that.Kind == Lake
}

func (that Tile) IsTrapOf(color Color) bool {
	return that.Kind == Trap && that.Owner == color
}

func (that Tile) IsHomeOf(color Color) bool {
	return that.Kind == HomeBase && that.Owner == color
}

// Board is the fixed 7x9 grid. Only occupancy changes after NewBoard.
type Board struct {
	tiles [Rows][Cols]Tile
}

func NewBoard() *Board {
	board := &Board{}

	for row := range Rows {
		for col := range Cols {
			board.tiles[row][col] = Tile{
				Position: Position{Row: row, Col: col},
				Kind:     Land,
				Owner:    NoColor,
				occupant: NoPiece,
			}
		}
	}

	for _, pos := range lakePositions {
		board.tiles[pos.Row][pos.Col].Kind = Lake
	}

	for owner, positions := range trapPositions {
		for _, pos := range positions {
			board.tiles[pos.Row][pos.Col].Kind = Trap
			board.tiles[pos.Row][pos.Col].Owner = owner
		}
	}

	for owner, pos := range homePositions {
		board.tiles[pos.Row][pos.Col].Kind = HomeBase
		board.tiles[pos.Row][pos.Col].Owner = owner
	}

	return board
}

func (that *Board) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Rows && pos.Col >= 0 && pos.Col < Cols
}

// TileAt - returns a snapshot of the tile at pos.
func (that *Board) TileAt(pos Position) (Tile, error) {
	if !that.Contains(pos) {
		return Tile{}, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	return that.tiles[pos.Row][pos.Col], nil
}

func (that *Board) IsOccupied(pos Position) bool {
	return that.Occupant(pos) != NoPiece
}

// Occupant - returns the piece on pos, or NoPiece for empty or off-board positions.
func (that *Board) Occupant(pos Position) PieceID {
	if !that.Contains(pos) {
		return NoPiece
	}

	return that.tiles[pos.Row][pos.Col].occupant
}

// Place - puts piece id on an empty tile.
func (that *Board) Place(pos Position, id PieceID) error {
	if !that.Contains(pos) {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	tile := &that.tiles[pos.Row][pos.Col]
	if tile.occupant != NoPiece {
		return fmt.Errorf("%w: %s", apperror.ErrTileOccupied, pos)
	}

	tile.occupant = id

	return nil
}

// Clear - empties the tile at pos.
func (that *Board) Clear(pos Position) error {
	if !that.Contains(pos) {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	that.tiles[pos.Row][pos.Col].occupant = NoPiece

	return nil
}

func (that *Board) HomeOf(color Color) Position {
	return homePositions[color]
}

// Tiles - returns every tile, row by row.
func (that *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, Rows*Cols)
	for row := range Rows {
		tiles = append(tiles, that.tiles[row][:]...)
	}

	return tiles
}

// Between - returns the tiles strictly between from and to when both lie on the
// same row or column. ok is false for any other pair.
func (that *Board) Between(from, to Position) (tiles []Tile, ok bool) {
	if !that.Contains(from) || !that.Contains(to) {
		return nil, false
	}

	if from.Row != to.Row && from.Col != to.Col {
		return nil, false
	}

	dRow, dCol := sign(to.Row-from.Row), sign(to.Col-from.Col)
	for pos := (Position{from.Row + dRow, from.Col + dCol}); pos != to; pos = (Position{pos.Row + dRow, pos.Col + dCol}) {
		tiles = append(tiles, that.tiles[pos.Row][pos.Col])
	}

	return tiles, true
}

// Distance - Manhattan distance between two positions.
func Distance(from, to Position) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
