package jungle

import (
	"fmt"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
)

// MoveResult describes an accepted move.
type MoveResult struct {
	Piece    entity.PieceID  `json:"piece"`
	Kind     entity.Kind     `json:"kind"`
	Owner    entity.Color    `json:"owner"`
	From     entity.Position `json:"from"`
	To       entity.Position `json:"to"`
	Captured entity.PieceID  `json:"captured"`
	// AttackerLost is set when the moving piece lost the fight and left the board.
	AttackerLost bool `json:"attacker_lost"`
	// Won is set when the move ended the game; Winner names the side that won.
	Won    bool         `json:"won"`
	Winner entity.Color `json:"winner"`
}

// MovePiece - validates and executes a move of the current player's piece. A
// rejected move leaves the game untouched. The turn is not switched.
func (that *Game) MovePiece(id entity.PieceID, dest entity.Position) (MoveResult, error) {
	if that.state.CheckVictory() {
		return MoveResult{}, apperror.ErrGameFinished
	}

	piece, err := that.activePiece(id)
	if err != nil {
		return MoveResult{}, err
	}

	if piece.Owner != that.current {
		return MoveResult{}, fmt.Errorf("%w: %s on %s's turn", apperror.ErrNotCurrentPlayersPiece, piece, that.current)
	}

	if err = checkMove(that.board, that.pieces[:], *piece, dest); err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{
		Piece:    piece.ID,
		Kind:     piece.Kind,
		Owner:    piece.Owner,
		From:     piece.Position,
		To:       dest,
		Captured: entity.NoPiece,
	}

	if occupant := that.board.Occupant(dest); occupant != entity.NoPiece {
		defender := &that.pieces[occupant]

		if !canCapture(that.board, that.rules, *piece, *defender) {
			if err = waterBarrier(that.board, *piece, *defender); err != nil {
				return MoveResult{}, err
			}

			that.detach(piece)
			result.AttackerLost = true
			result.Won = that.checkElimination(defender.Owner)
			result.Winner = that.state.Winner()
			that.history = append(that.history, result)

			return result, nil
		}

		that.detach(defender)
		result.Captured = defender.ID
	}

	if err = that.relocate(piece, dest); err != nil {
		return MoveResult{}, err
	}

	result.Won = that.checkHomeBase(piece) || that.checkElimination(piece.Owner)
	result.Winner = that.state.Winner()
	that.history = append(that.history, result)

	return result, nil
}

// Play - moves the piece and hands the turn over unless the move ended the game.
func (that *Game) Play(id entity.PieceID, dest entity.Position) (MoveResult, error) {
	result, err := that.MovePiece(id, dest)
	if err != nil {
		return MoveResult{}, err
	}

	if that.state.CheckVictory() {
		return result, nil
	}

	if err = that.SwitchTurn(); err != nil {
		return result, fmt.Errorf("failed to switch turn: %w", err)
	}

	return result, nil
}

// SwitchTurn - passes the turn to the opponent. A side with no pieces left is
// skipped, so the turn stays with the mover.
func (that *Game) SwitchTurn() error {
	if that.state.CheckVictory() {
		return apperror.ErrGameFinished
	}

	that.current = that.current.Opponent()
	if that.players[that.current].HasLostAllPieces() {
		that.current = that.current.Opponent()
	}

	return nil
}

func (that *Game) relocate(piece *entity.Piece, dest entity.Position) error {
	if err := that.board.Clear(piece.Position); err != nil {
		return fmt.Errorf("failed to clear origin: %w", err)
	}

	if err := that.board.Place(dest, piece.ID); err != nil {
		return fmt.Errorf("failed to place piece: %w", err)
	}

	piece.Position = dest

	return nil
}

// checkHomeBase - the mover wins by standing on the opponent's home.
func (that *Game) checkHomeBase(piece *entity.Piece) bool {
	tile, err := that.board.TileAt(piece.Position)
	if err != nil || !tile.IsHomeOf(piece.Owner.Opponent()) {
		return false
	}

	that.state.DeclareWinner(piece.Owner)

	return true
}

// checkElimination - with the elimination rule on, color wins once its opponent
// has no pieces left.
func (that *Game) checkElimination(color entity.Color) bool {
	if !that.rules.EliminationWins || !that.players[color.Opponent()].HasLostAllPieces() {
		return false
	}

	that.state.DeclareWinner(color)

	return true
}
