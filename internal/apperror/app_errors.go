package apperror

import "errors"

var (
	ErrOutOfRange             = errors.New("position is out of range")
	ErrNotCurrentPlayersPiece = errors.New("piece does not belong to the current player")
	ErrIllegalDestination     = errors.New("illegal destination")
	ErrLakeEntryDenied        = errors.New("piece cannot enter the lake")
	ErrLeapBlocked            = errors.New("leap path is blocked")
	ErrOwnPieceOccupied       = errors.New("destination is occupied by own piece")
	ErrCannotCaptureFromWater = errors.New("cannot capture a land piece from the water")
	ErrCannotCaptureIntoWater = errors.New("cannot capture a piece in the water from land")

	ErrGameFinished  = errors.New("game is already finished")
	ErrUnknownPiece  = errors.New("unknown piece")
	ErrPieceCaptured = errors.New("piece has been captured")
	ErrTileOccupied  = errors.New("tile is already occupied")

	ErrUnknownKind         = errors.New("unknown piece kind")
	ErrUnknownColor        = errors.New("unknown color")
	ErrKindAlreadySelected = errors.New("piece kind is already selected")
	ErrSelectionComplete   = errors.New("both players have already selected")
	ErrSelectionIncomplete = errors.New("piece selection is not complete")

	ErrNoActiveMatch = errors.New("no active match")
)

var ruleViolations = []error{
	ErrOutOfRange,
	ErrNotCurrentPlayersPiece,
	ErrIllegalDestination,
	ErrLakeEntryDenied,
	ErrLeapBlocked,
	ErrOwnPieceOccupied,
	ErrCannotCaptureFromWater,
	ErrCannotCaptureIntoWater,
	ErrUnknownPiece,
	ErrPieceCaptured,
}

// IsRuleViolation - reports whether err is a recoverable move-rule violation.
func IsRuleViolation(err error) bool {
	for _, target := range ruleViolations {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
