package jungle

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
)

const piecesPerSide = 8

var ErrInvalidLayout = errors.New("invalid layout")

// Phase is the turn state of a game.
type Phase int8

const (
	BlueTurn Phase = iota
	GreenTurn
	GameOver
)

func (p Phase) String() string {
	switch p {
	case BlueTurn:
		return "blue-turn"
	case GreenTurn:
		return "green-turn"
	default:
		return "game-over"
	}
}

// Placement puts one piece on the board when a game is built.
type Placement struct {
	Owner    entity.Color
	Kind     entity.Kind
	Position entity.Position
}

// StartingLayout - returns the sixteen placements of a new game.
func StartingLayout() []Placement {
	layout := make([]Placement, 0, 2*piecesPerSide)
	for _, color := range []entity.Color{entity.Blue, entity.Green} {
		for _, kind := range entity.Kinds() {
			layout = append(layout, Placement{
				Owner:    color,
				Kind:     kind,
				Position: entity.StartingPosition(color, kind),
			})
		}
	}

	return layout
}

// Game owns the board, the piece arena, both players and the game state of one match.
type Game struct {
	rules Rules
	rng   *rand.Rand

	board   *entity.Board
	pieces  [2 * piecesPerSide]entity.Piece
	players map[entity.Color]*entity.Player
	current entity.Color
	state   *entity.GameState
	history []MoveResult

	layout []Placement
}

// New - creates a game in the standard starting layout. Blue moves first until
// DetermineFirstPlayer says otherwise. A nil rng is seeded from the clock.
func New(rules Rules, rng *rand.Rand) *Game {
	game, err := NewWithLayout(rules, rng, StartingLayout())
	if err != nil {
		panic(fmt.Errorf("failed to place starting layout: %w", err))
	}

	return game
}

// NewWithLayout - creates a game with only the given pieces on the board. Pieces
// missing from the layout start out captured.
func NewWithLayout(rules Rules, rng *rand.Rand, layout []Placement) (*Game, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	game := &Game{
		rules:  rules,
		rng:    rng,
		layout: append([]Placement(nil), layout...),
	}

	if err := game.reset(); err != nil {
		return nil, err
	}

	return game, nil
}

// Restart - discards the match and sets the layout up again.
func (that *Game) Restart() {
	if err := that.reset(); err != nil {
		panic(fmt.Errorf("failed to restore layout: %w", err))
	}
}

func (that *Game) reset() error {
	that.board = entity.NewBoard()
	that.state = entity.NewGameState()
	that.current = entity.Blue
	that.history = nil
	that.players = make(map[entity.Color]*entity.Player, 2)

	for _, color := range []entity.Color{entity.Blue, entity.Green} {
		owned := make([]*entity.Piece, 0, piecesPerSide)
		for _, kind := range entity.Kinds() {
			id := pieceID(color, kind)
			that.pieces[id] = entity.Piece{
				ID:       id,
				Kind:     kind,
				Owner:    color,
				Position: entity.StartingPosition(color, kind),
				Captured: true,
			}
			owned = append(owned, &that.pieces[id])
		}

		that.players[color] = entity.NewPlayer(color, owned)
	}

	for _, placement := range that.layout {
		if placement.Owner != entity.Blue && placement.Owner != entity.Green {
			return fmt.Errorf("%w: no owner for %s", ErrInvalidLayout, placement.Kind)
		}

		if placement.Kind < entity.Elephant || placement.Kind > entity.Rat {
			return fmt.Errorf("%w: %w", ErrInvalidLayout, apperror.ErrUnknownKind)
		}

		piece := &that.pieces[pieceID(placement.Owner, placement.Kind)]
		if !piece.Captured {
			return fmt.Errorf("%w: %s placed twice", ErrInvalidLayout, piece)
		}

		if err := that.board.Place(placement.Position, piece.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}

		piece.Position = placement.Position
		piece.Captured = false
	}

	return nil
}

// pieceID - Blue owns ids 0-7 and Green 8-15, both in kind order.
func pieceID(color entity.Color, kind entity.Kind) entity.PieceID {
	id := entity.PieceID(kind - entity.Elephant)
	if color == entity.Green {
		id += piecesPerSide
	}

	return id
}

func (that *Game) Rules() Rules {
	return that.rules
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) State() *entity.GameState {
	return that.state
}

func (that *Game) CurrentPlayer() *entity.Player {
	return that.players[that.current]
}

func (that *Game) Player(color entity.Color) *entity.Player {
	return that.players[color]
}

// Phase - returns whose turn it is, or GameOver.
func (that *Game) Phase() Phase {
	switch {
	case that.state.CheckVictory():
		return GameOver
	case that.current == entity.Green:
		return GreenTurn
	default:
		return BlueTurn
	}
}

// Piece - returns a copy of the piece with the given id.
func (that *Game) Piece(id entity.PieceID) (entity.Piece, error) {
	if id < 0 || int(id) >= len(that.pieces) {
		return entity.Piece{}, fmt.Errorf("%w: %d", apperror.ErrUnknownPiece, id)
	}

	return that.pieces[id], nil
}

// PieceAt - returns the piece standing on pos.
func (that *Game) PieceAt(pos entity.Position) (entity.Piece, bool) {
	id := that.board.Occupant(pos)
	if id == entity.NoPiece {
		return entity.Piece{}, false
	}

	return that.pieces[id], true
}

// FindPiece - returns the active piece of kind owned by color.
func (that *Game) FindPiece(color entity.Color, kind entity.Kind) (entity.Piece, bool) {
	player, ok := that.players[color]
	if !ok {
		return entity.Piece{}, false
	}

	return player.Piece(kind)
}

func (that *Game) ActivePieces(color entity.Color) []entity.Piece {
	player, ok := that.players[color]
	if !ok {
		return nil
	}

	return player.ActivePieces()
}

func (that *Game) HasLostAllPieces(color entity.Color) bool {
	player, ok := that.players[color]
	if !ok {
		return false
	}

	return player.HasLostAllPieces()
}

// History - returns the moves played so far, oldest first.
func (that *Game) History() []MoveResult {
	return append([]MoveResult(nil), that.history...)
}

// activePiece - resolves id to a piece still on the board.
func (that *Game) activePiece(id entity.PieceID) (*entity.Piece, error) {
	if id < 0 || int(id) >= len(that.pieces) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownPiece, id)
	}

	piece := &that.pieces[id]
	if piece.Captured {
		return nil, fmt.Errorf("%w: %s", apperror.ErrPieceCaptured, piece)
	}

	return piece, nil
}

// detach - removes a captured piece from the board.
func (that *Game) detach(piece *entity.Piece) {
	_ = that.board.Clear(piece.Position)
	piece.Captured = true
}
