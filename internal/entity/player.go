package entity

// blueStart is Blue's opening layout; Green mirrors it across the middle column.
var blueStart = map[Kind]Position{
	Elephant: {0, 0},
	Tiger:    {6, 0},
	Cat:      {1, 1},
	Dog:      {5, 1},
	Lion:     {0, 2},
	Wolf:     {2, 2},
	Leopard:  {4, 2},
	Rat:      {6, 2},
}

// StartingPosition - returns where a kind starts for the given side.
func StartingPosition(color Color, kind Kind) Position {
	pos := blueStart[kind]
	if color == Green {
		pos.Col = Cols - 1 - pos.Col
	}

	return pos
}

// Player owns a fixed set of pieces. Captured pieces stay in the set.
type Player struct {
	color  Color
	pieces []*Piece
}

func NewPlayer(color Color, pieces []*Piece) *Player {
	return &Player{
		color:  color,
		pieces: pieces,
	}
}

func (that *Player) Color() Color {
	return that.color
}

func (that *Player) Name() string {
	return that.color.String()
}

// Pieces - returns copies of every piece, captured ones included.
func (that *Player) Pieces() []Piece {
	pieces := make([]Piece, 0, len(that.pieces))
	for _, piece := range that.pieces {
		pieces = append(pieces, *piece)
	}

	return pieces
}

// ActivePieces - returns copies of the pieces still on the board.
func (that *Player) ActivePieces() []Piece {
	var active []Piece
	for _, piece := range that.pieces {
		if !piece.Captured {
			active = append(active, *piece)
		}
	}

	return active
}

// Piece - returns the active piece of the given kind.
func (that *Player) Piece(kind Kind) (Piece, bool) {
	for _, piece := range that.pieces {
		if piece.Kind == kind && !piece.Captured {
			return *piece, true
		}
	}

	return Piece{}, false
}

func (that *Player) HasLostAllPieces() bool {
	for _, piece := range that.pieces {
		if !piece.Captured {
			return false
		}
	}

	return true
}
