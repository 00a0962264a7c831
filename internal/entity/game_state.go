package entity

import (
	"fmt"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
)

// GameState holds the outcome of a match and, before play starts, the kinds the
// two players picked to decide who moves first.
type GameState struct {
	gameOver bool
	winner   Color

	choices [2]Kind
	picked  int
}

func NewGameState() *GameState {
	return &GameState{}
}

// CheckVictory - reports whether the game has been won.
func (that *GameState) CheckVictory() bool {
	return that.gameOver
}

// Winner - returns the winning side, NoColor while the game is running.
func (that *GameState) Winner() Color {
	return that.winner
}

// DeclareWinner - ends the game in favour of color.
func (that *GameState) DeclareWinner(color Color) {
	that.gameOver = true
	that.winner = color
}

// Reset - returns the state to a fresh, unselected game.
func (that *GameState) Reset() {
	*that = GameState{}
}

// SelectPiece - records the next player's chosen kind.
func (that *GameState) SelectPiece(name string) error {
	if that.IsSelectionComplete() {
		return apperror.ErrSelectionComplete
	}

	kind, err := ParseKind(name)
	if err != nil {
		return err
	}

	if that.picked == 1 && that.choices[0] == kind {
		return fmt.Errorf("%w: %s", apperror.ErrKindAlreadySelected, kind)
	}

	that.choices[that.picked] = kind
	that.picked++

	return nil
}

func (that *GameState) IsSelectionComplete() bool {
	return that.picked == len(that.choices)
}

func (that *GameState) Player1Choice() Kind {
	return that.choices[0]
}

func (that *GameState) Player2Choice() Kind {
	return that.choices[1]
}
