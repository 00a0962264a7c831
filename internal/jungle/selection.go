package jungle

import (
	"fmt"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
)

// ShuffledPieceNames - returns the eight kind names in random order.
func (that *Game) ShuffledPieceNames() []string {
	kinds := entity.Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}

	that.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	return names
}

// DetermineFirstPlayer - makes the player who picked the stronger kind current.
// name1 is Blue's pick and name2 is Green's.
func (that *Game) DetermineFirstPlayer(name1, name2 string) (*entity.Player, error) {
	first, err := entity.ParseKind(name1)
	if err != nil {
		return nil, err
	}

	second, err := entity.ParseKind(name2)
	if err != nil {
		return nil, err
	}

	if first == second {
		return nil, fmt.Errorf("%w: %s", apperror.ErrKindAlreadySelected, first)
	}

	that.current = firstByStrength(first, second)

	return that.players[that.current], nil
}

// firstByStrength - equal strengths go to player 2.
func firstByStrength(first, second entity.Kind) entity.Color {
	if first.Strength() > second.Strength() {
		return entity.Blue
	}

	return entity.Green
}
