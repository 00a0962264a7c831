package jungle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
)

func TestGame_MovePiece(t *testing.T) {
	t.Run("Step onto empty land relocates the piece", func(t *testing.T) {
		// Given: the starting layout
		game := New(DefaultRules(), nil)
		elephant := pieceOf(t, game, entity.Blue, entity.Elephant)

		// When: Blue moves the Elephant from (0,0) to (0,1)
		result, err := game.MovePiece(elephant, entity.Position{Row: 0, Col: 1})

		// Then: the Elephant stands on (0,1) and its old tile is empty
		require.NoError(t, err)
		assert.Equal(t, MoveResult{
			Piece:    elephant,
			Kind:     entity.Elephant,
			Owner:    entity.Blue,
			From:     entity.Position{Row: 0, Col: 0},
			To:       entity.Position{Row: 0, Col: 1},
			Captured: entity.NoPiece,
		}, result)

		piece, err := game.Piece(elephant)
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 0, Col: 1}, piece.Position)
		assert.False(t, game.Board().IsOccupied(entity.Position{Row: 0, Col: 0}))
		assert.Equal(t, BlueTurn, game.Phase())
		requireConsistent(t, game)
	})

	t.Run("Winning a fight removes the defender", func(t *testing.T) {
		// Given: a Blue Lion next to a Green Wolf
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Lion, 3, 3),
			at(entity.Green, entity.Wolf, 3, 4),
			at(entity.Green, entity.Cat, 0, 8),
		)
		lion := pieceOf(t, game, entity.Blue, entity.Lion)
		wolf := pieceOf(t, game, entity.Green, entity.Wolf)

		// When: the Lion attacks
		result, err := game.MovePiece(lion, entity.Position{Row: 3, Col: 4})

		// Then: the Wolf is captured and the Lion takes its tile
		require.NoError(t, err)
		assert.Equal(t, wolf, result.Captured)
		assert.False(t, result.AttackerLost)
		assert.False(t, result.Won)

		captured, err := game.Piece(wolf)
		require.NoError(t, err)
		assert.True(t, captured.Captured)
		assert.Equal(t, lion, game.Board().Occupant(entity.Position{Row: 3, Col: 4}))
		assert.Len(t, game.ActivePieces(entity.Green), 1)
		requireConsistent(t, game)
	})

	t.Run("Losing a fight removes the attacker", func(t *testing.T) {
		// Given: a Blue Cat next to a Green Dog
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Cat, 3, 3),
			at(entity.Blue, entity.Rat, 6, 0),
			at(entity.Green, entity.Dog, 3, 4),
		)
		cat := pieceOf(t, game, entity.Blue, entity.Cat)
		dog := pieceOf(t, game, entity.Green, entity.Dog)

		// When: the Cat attacks
		result, err := game.MovePiece(cat, entity.Position{Row: 3, Col: 4})

		// Then: the Cat dies on its origin tile and the Dog stays
		require.NoError(t, err)
		assert.True(t, result.AttackerLost)
		assert.Equal(t, entity.NoPiece, result.Captured)

		piece, err := game.Piece(cat)
		require.NoError(t, err)
		assert.True(t, piece.Captured)
		assert.False(t, game.Board().IsOccupied(entity.Position{Row: 3, Col: 3}))
		assert.Equal(t, dog, game.Board().Occupant(entity.Position{Row: 3, Col: 4}))
		assert.False(t, game.State().CheckVictory())
		requireConsistent(t, game)
	})

	t.Run("Rat takes the Elephant", func(t *testing.T) {
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Rat, 3, 3),
			at(entity.Green, entity.Elephant, 3, 4),
		)

		result, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Rat), entity.Position{Row: 3, Col: 4})

		require.NoError(t, err)
		assert.Equal(t, pieceID(entity.Green, entity.Elephant), result.Captured)
		requireConsistent(t, game)
	})

	t.Run("Rats fight inside the lake", func(t *testing.T) {
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Rat, 4, 3),
			at(entity.Green, entity.Rat, 4, 4),
		)

		result, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Rat), entity.Position{Row: 4, Col: 4})

		require.NoError(t, err)
		assert.Equal(t, pieceID(entity.Green, entity.Rat), result.Captured)
		requireConsistent(t, game)
	})
}

func TestGame_MovePiece_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		layout  []Placement
		mover   entity.PieceID
		dest    entity.Position
		wantErr error
	}{
		{
			name:    "Opponent's piece",
			layout:  []Placement{at(entity.Green, entity.Cat, 3, 3)},
			mover:   pieceID(entity.Green, entity.Cat),
			dest:    entity.Position{Row: 3, Col: 4},
			wantErr: apperror.ErrNotCurrentPlayersPiece,
		},
		{
			name:    "Unknown piece",
			mover:   99,
			dest:    entity.Position{Row: 3, Col: 4},
			wantErr: apperror.ErrUnknownPiece,
		},
		{
			name:    "Captured piece",
			layout:  []Placement{at(entity.Blue, entity.Dog, 3, 3)},
			mover:   pieceID(entity.Blue, entity.Cat),
			dest:    entity.Position{Row: 3, Col: 4},
			wantErr: apperror.ErrPieceCaptured,
		},
		{
			name:    "Illegal destination",
			layout:  []Placement{at(entity.Blue, entity.Rat, 6, 2)},
			mover:   pieceID(entity.Blue, entity.Rat),
			dest:    entity.Position{Row: 3, Col: 8},
			wantErr: apperror.ErrIllegalDestination,
		},
		{
			name: "Rat attacks from the water",
			layout: []Placement{
				at(entity.Blue, entity.Rat, 2, 3),
				at(entity.Green, entity.Cat, 3, 3),
			},
			mover:   pieceID(entity.Blue, entity.Rat),
			dest:    entity.Position{Row: 3, Col: 3},
			wantErr: apperror.ErrCannotCaptureFromWater,
		},
		{
			name: "Rat attacks into the water",
			layout: []Placement{
				at(entity.Blue, entity.Rat, 0, 3),
				at(entity.Green, entity.Rat, 1, 3),
			},
			mover:   pieceID(entity.Blue, entity.Rat),
			dest:    entity.Position{Row: 1, Col: 3},
			wantErr: apperror.ErrCannotCaptureIntoWater,
		},
		{
			name: "Walker attacks a swimmer",
			layout: []Placement{
				at(entity.Blue, entity.Dog, 0, 4),
				at(entity.Green, entity.Rat, 1, 4),
			},
			mover:   pieceID(entity.Blue, entity.Dog),
			dest:    entity.Position{Row: 1, Col: 4},
			wantErr: apperror.ErrLakeEntryDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a game in the listed layout
			game := newTestGame(t, DefaultRules(), tt.layout...)
			before := takeSnapshot(game)

			// When: trying the move
			_, err := game.MovePiece(tt.mover, tt.dest)

			// Then: it is rejected and nothing changes
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, apperror.IsRuleViolation(err))
			assert.Equal(t, before, takeSnapshot(game))
			requireConsistent(t, game)
		})
	}
}

func TestGame_Victory(t *testing.T) {
	t.Run("Reaching the enemy home base wins", func(t *testing.T) {
		// Given: a Blue Dog beside Green's empty home base
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Dog, 2, 8),
			at(entity.Green, entity.Elephant, 0, 0),
		)

		// When: the Dog steps in
		result, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Dog), entity.Position{Row: 3, Col: 8})

		// Then: Blue has won and the game is over
		require.NoError(t, err)
		assert.True(t, result.Won)
		assert.Equal(t, entity.Blue, result.Winner)
		assert.True(t, game.State().CheckVictory())
		assert.Equal(t, entity.Blue, game.State().Winner())
		assert.Equal(t, GameOver, game.Phase())
	})

	t.Run("A finished game accepts no moves", func(t *testing.T) {
		// Given: a game Blue has already won
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Dog, 2, 8),
			at(entity.Green, entity.Elephant, 0, 0),
		)
		_, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Dog), entity.Position{Row: 3, Col: 8})
		require.NoError(t, err)

		// When: moving again or switching the turn
		_, moveErr := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Dog), entity.Position{Row: 4, Col: 8})
		switchErr := game.SwitchTurn()

		// Then: both report the finished game
		assert.ErrorIs(t, moveErr, apperror.ErrGameFinished)
		assert.ErrorIs(t, switchErr, apperror.ErrGameFinished)
		assert.False(t, apperror.IsRuleViolation(moveErr))
		assert.Equal(t, GameOver, game.Phase())
	})

	t.Run("Capturing every enemy does not win by default", func(t *testing.T) {
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Lion, 3, 3),
			at(entity.Green, entity.Wolf, 3, 4),
		)

		result, err := game.Play(pieceOf(t, game, entity.Blue, entity.Lion), entity.Position{Row: 3, Col: 4})

		require.NoError(t, err)
		assert.False(t, result.Won)
		assert.True(t, game.HasLostAllPieces(entity.Green))
		assert.Equal(t, BlueTurn, game.Phase())
	})

	t.Run("Elimination rule wins once the last enemy falls", func(t *testing.T) {
		game := newTestGame(t, Rules{EliminationWins: true},
			at(entity.Blue, entity.Lion, 3, 3),
			at(entity.Green, entity.Wolf, 3, 4),
		)

		result, err := game.Play(pieceOf(t, game, entity.Blue, entity.Lion), entity.Position{Row: 3, Col: 4})

		require.NoError(t, err)
		assert.True(t, result.Won)
		assert.Equal(t, entity.Blue, game.State().Winner())
		assert.Equal(t, GameOver, game.Phase())
	})

	t.Run("Elimination rule hands the win to the defender when the last attacker dies", func(t *testing.T) {
		game := newTestGame(t, Rules{EliminationWins: true},
			at(entity.Blue, entity.Cat, 3, 3),
			at(entity.Green, entity.Dog, 3, 4),
		)

		result, err := game.Play(pieceOf(t, game, entity.Blue, entity.Cat), entity.Position{Row: 3, Col: 4})

		require.NoError(t, err)
		assert.True(t, result.AttackerLost)
		assert.True(t, result.Won)
		assert.Equal(t, entity.Green, result.Winner)
		assert.Equal(t, entity.Green, game.State().Winner())
	})
}

func TestGame_SwitchTurn(t *testing.T) {
	t.Run("Play hands the turn over", func(t *testing.T) {
		// Given: the starting layout
		game := New(DefaultRules(), nil)

		// When: Blue plays a move
		_, err := game.Play(pieceOf(t, game, entity.Blue, entity.Elephant), entity.Position{Row: 0, Col: 1})

		// Then: it is Green's turn and Blue's pieces are locked
		require.NoError(t, err)
		assert.Equal(t, GreenTurn, game.Phase())
		assert.Equal(t, entity.Green, game.CurrentPlayer().Color())

		_, err = game.Play(pieceOf(t, game, entity.Blue, entity.Cat), entity.Position{Row: 1, Col: 0})
		assert.ErrorIs(t, err, apperror.ErrNotCurrentPlayersPiece)
	})

	t.Run("A rejected play keeps the turn", func(t *testing.T) {
		game := New(DefaultRules(), nil)

		_, err := game.Play(pieceOf(t, game, entity.Blue, entity.Rat), entity.Position{Row: 3, Col: 8})

		assert.ErrorIs(t, err, apperror.ErrIllegalDestination)
		assert.Equal(t, BlueTurn, game.Phase())
	})

	t.Run("A side without pieces is skipped", func(t *testing.T) {
		// Given: Green has no pieces left
		game := newTestGame(t, DefaultRules(), at(entity.Blue, entity.Cat, 3, 3))
		require.True(t, game.HasLostAllPieces(entity.Green))

		// When: switching the turn
		err := game.SwitchTurn()

		// Then: the turn comes back to Blue
		require.NoError(t, err)
		assert.Equal(t, entity.Blue, game.CurrentPlayer().Color())
	})

	t.Run("Switching twice returns to the first side", func(t *testing.T) {
		game := New(DefaultRules(), nil)

		require.NoError(t, game.SwitchTurn())
		assert.Equal(t, GreenTurn, game.Phase())
		require.NoError(t, game.SwitchTurn())
		assert.Equal(t, BlueTurn, game.Phase())
	})
}

func TestGame_History(t *testing.T) {
	t.Run("Accepted moves are recorded in order", func(t *testing.T) {
		game := New(DefaultRules(), nil)

		_, err := game.Play(pieceOf(t, game, entity.Blue, entity.Dog), entity.Position{Row: 5, Col: 2})
		require.NoError(t, err)
		_, err = game.Play(pieceOf(t, game, entity.Green, entity.Dog), entity.Position{Row: 5, Col: 6})
		require.NoError(t, err)
		_, err = game.Play(pieceOf(t, game, entity.Green, entity.Cat), entity.Position{Row: 1, Col: 6})
		require.Error(t, err)

		history := game.History()
		require.Len(t, history, 2)
		assert.Equal(t, entity.Blue, history[0].Owner)
		assert.Equal(t, entity.Position{Row: 5, Col: 6}, history[1].To)
	})
}

func TestScenarios(t *testing.T) {
	t.Run("A: Elephant steps onto empty land", func(t *testing.T) {
		game := New(DefaultRules(), nil)

		_, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Elephant), entity.Position{Row: 0, Col: 1})

		require.NoError(t, err)
		elephant, ok := game.PieceAt(entity.Position{Row: 0, Col: 1})
		require.True(t, ok)
		assert.Equal(t, entity.Elephant, elephant.Kind)
		requireConsistent(t, game)
	})

	t.Run("B: Rat cannot reach the enemy home in one move", func(t *testing.T) {
		game := New(DefaultRules(), nil)

		_, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Rat), entity.Position{Row: 3, Col: 8})

		assert.ErrorIs(t, err, apperror.ErrIllegalDestination)
	})

	t.Run("C: Tiger leap blocked by a Rat in the lake", func(t *testing.T) {
		// Given: a Green Tiger on the bank and a Blue Rat swimming in its row
		game := newTestGame(t, DefaultRules(),
			at(entity.Green, entity.Tiger, 4, 6),
			at(entity.Blue, entity.Rat, 4, 4),
		)
		require.NoError(t, game.SwitchTurn())

		// When: the Tiger tries to leap across
		_, err := game.MovePiece(pieceOf(t, game, entity.Green, entity.Tiger), entity.Position{Row: 4, Col: 2})

		// Then: the leap is blocked
		assert.ErrorIs(t, err, apperror.ErrLeapBlocked)
	})

	t.Run("C: Tiger in its corner cannot leap along dry land", func(t *testing.T) {
		game := New(DefaultRules(), nil)
		require.NoError(t, game.SwitchTurn())

		_, err := game.MovePiece(pieceOf(t, game, entity.Green, entity.Tiger), entity.Position{Row: 6, Col: 3})

		assert.ErrorIs(t, err, apperror.ErrLeapBlocked)
	})

	t.Run("D: Dog captures a Wolf standing on a vulnerable trap", func(t *testing.T) {
		// Given: a Green Wolf on Green's own trap, with traps working for the owner polarity
		game := newTestGame(t, Rules{TrapPolarity: TrapOwner},
			at(entity.Blue, entity.Dog, 1, 8),
			at(entity.Green, entity.Wolf, 2, 8),
		)

		// When: the weaker Blue Dog attacks
		result, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Dog), entity.Position{Row: 2, Col: 8})

		// Then: the capture succeeds and nobody has won
		require.NoError(t, err)
		assert.Equal(t, pieceID(entity.Green, entity.Wolf), result.Captured)
		assert.False(t, game.State().CheckVictory())
		requireConsistent(t, game)
	})

	t.Run("D: Dog captures a Wolf standing on a Blue trap", func(t *testing.T) {
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Dog, 1, 0),
			at(entity.Green, entity.Wolf, 2, 0),
		)

		result, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Dog), entity.Position{Row: 2, Col: 0})

		require.NoError(t, err)
		assert.Equal(t, pieceID(entity.Green, entity.Wolf), result.Captured)
		assert.False(t, game.State().CheckVictory())
	})

	t.Run("E: Blue enters the empty Green home", func(t *testing.T) {
		game := newTestGame(t, DefaultRules(),
			at(entity.Blue, entity.Leopard, 3, 7),
			at(entity.Green, entity.Rat, 6, 6),
		)

		_, err := game.MovePiece(pieceOf(t, game, entity.Blue, entity.Leopard), entity.Position{Row: 3, Col: 8})

		require.NoError(t, err)
		assert.True(t, game.State().CheckVictory())
		assert.Equal(t, entity.Blue, game.State().Winner())
	})
}
