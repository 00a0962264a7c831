package jungle

import (
	"fmt"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
)

// CanMove - reports whether the piece may reach dest, ignoring whose turn it is.
func (that *Game) CanMove(id entity.PieceID, dest entity.Position) bool {
	return that.CheckMove(id, dest) == nil
}

// CheckMove - validates a move of the piece to dest and names the broken rule.
func (that *Game) CheckMove(id entity.PieceID, dest entity.Position) error {
	piece, err := that.activePiece(id)
	if err != nil {
		return err
	}

	return checkMove(that.board, that.pieces[:], *piece, dest)
}

func checkMove(board *entity.Board, pieces []entity.Piece, piece entity.Piece, dest entity.Position) error {
	target, err := board.TileAt(dest)
	if err != nil {
		return err
	}

	if dest == piece.Position {
		return fmt.Errorf("%w: %s is already on %s", apperror.ErrIllegalDestination, piece, dest)
	}

	if target.IsHomeOf(piece.Owner) {
		return fmt.Errorf("%w: %s cannot enter its own home", apperror.ErrIllegalDestination, piece)
	}

	if target.IsOccupied() && pieces[target.Occupant()].Owner == piece.Owner {
		return fmt.Errorf("%w: %s", apperror.ErrOwnPieceOccupied, dest)
	}

	if entity.Distance(piece.Position, dest) == 1 {
		if target.IsLake() && !piece.Kind.Swims() {
			return fmt.Errorf("%w: %s at %s", apperror.ErrLakeEntryDenied, piece, dest)
		}

		return nil
	}

	if piece.Kind.Leaps() {
		return checkLeap(board, piece, target)
	}

	return fmt.Errorf("%w: %s cannot reach %s", apperror.ErrIllegalDestination, piece, dest)
}

// checkLeap - a leap crosses a whole lake in a straight line and lands on its far bank.
func checkLeap(board *entity.Board, piece entity.Piece, target entity.Tile) error {
	between, ok := board.Between(piece.Position, target.Position)
	if !ok {
		return fmt.Errorf("%w: %s cannot reach %s", apperror.ErrIllegalDestination, piece, target.Position)
	}

	for _, tile := range between {
		if !tile.IsLake() {
			return fmt.Errorf("%w: %s is not water", apperror.ErrLeapBlocked, tile.Position)
		}

		if tile.IsOccupied() {
			return fmt.Errorf("%w: swimmer on %s", apperror.ErrLeapBlocked, tile.Position)
		}
	}

	if target.IsLake() {
		return fmt.Errorf("%w: %s at %s", apperror.ErrLakeEntryDenied, piece, target.Position)
	}

	return nil
}

// LegalMoves - returns every destination a MovePiece call would accept for the
// piece, ignoring whose turn it is.
func (that *Game) LegalMoves(id entity.PieceID) []entity.Position {
	piece, err := that.activePiece(id)
	if err != nil {
		return nil
	}

	var moves []entity.Position
	for _, tile := range that.board.Tiles() {
		if checkMove(that.board, that.pieces[:], *piece, tile.Position) != nil {
			continue
		}

		if tile.IsOccupied() && waterBarrier(that.board, *piece, that.pieces[tile.Occupant()]) != nil {
			continue
		}

		moves = append(moves, tile.Position)
	}

	return moves
}
