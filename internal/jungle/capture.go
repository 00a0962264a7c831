package jungle

import (
	"fmt"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
)

// CanCapture - reports whether attacker would win a fight against defender where
// both stand now. Unknown or captured pieces never capture.
func (that *Game) CanCapture(attackerID, defenderID entity.PieceID) bool {
	attacker, err := that.activePiece(attackerID)
	if err != nil {
		return false
	}

	defender, err := that.activePiece(defenderID)
	if err != nil {
		return false
	}

	return canCapture(that.board, that.rules, *attacker, *defender)
}

func canCapture(board *entity.Board, rules Rules, attacker, defender entity.Piece) bool {
	if attacker.Owner == defender.Owner {
		return false
	}

	attackerTile, err := board.TileAt(attacker.Position)
	if err != nil {
		return false
	}

	defenderTile, err := board.TileAt(defender.Position)
	if err != nil {
		return false
	}

	if defenderTile.IsLake() {
		return attacker.Kind.Swims() && attackerTile.IsLake()
	}

	if attackerTile.IsLake() {
		return false
	}

	if attacker.Kind == entity.Elephant && defender.Kind == entity.Rat {
		return false
	}

	if rules.isVulnerable(defenderTile, defender.Owner) {
		return true
	}

	if attacker.Kind == entity.Rat && defender.Kind == entity.Elephant {
		return true
	}

	return attacker.Strength() >= defender.Strength()
}

// waterBarrier - names the lake-bank rule that blocks a fight, or nil when the
// fight can take place.
func waterBarrier(board *entity.Board, attacker, defender entity.Piece) error {
	attackerTile, err := board.TileAt(attacker.Position)
	if err != nil {
		return err
	}

	defenderTile, err := board.TileAt(defender.Position)
	if err != nil {
		return err
	}

	switch {
	case attackerTile.IsLake() && !defenderTile.IsLake():
		return fmt.Errorf("%w: %s cannot reach %s on land", apperror.ErrCannotCaptureFromWater, attacker, defender)
	case defenderTile.IsLake() && !attackerTile.IsLake():
		return fmt.Errorf("%w: %s cannot reach %s in the lake", apperror.ErrCannotCaptureIntoWater, attacker, defender)
	default:
		return nil
	}
}
