package jungle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/jungle-king/internal/entity"
)

var ErrUnknownTrapPolarity = errors.New("unknown trap polarity")

// TrapPolarity selects which side's traps make a piece vulnerable.
type TrapPolarity int8

const (
	// TrapEnemy - a piece standing on a trap owned by its opponent can be taken by any enemy.
	TrapEnemy TrapPolarity = iota
	// TrapOwner - a piece standing on a trap owned by its own side can be taken by any enemy.
	TrapOwner
)

func (p TrapPolarity) String() string {
	if p == TrapOwner {
		return "owner"
	}

	return "enemy"
}

// ParseTrapPolarity - resolves "enemy" or "owner".
func ParseTrapPolarity(value string) (TrapPolarity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "enemy":
		return TrapEnemy, nil
	case "owner":
		return TrapOwner, nil
	default:
		return TrapEnemy, fmt.Errorf("%w: %q", ErrUnknownTrapPolarity, value)
	}
}

// Rules holds the switchable parts of the rule set.
type Rules struct {
	TrapPolarity TrapPolarity
	// EliminationWins ends the game once a side has no pieces left.
	EliminationWins bool
}

func DefaultRules() Rules {
	return Rules{
		TrapPolarity:    TrapEnemy,
		EliminationWins: false,
	}
}

func (that Rules) String() string {
	return fmt.Sprintf("traps=%s elimination=%t", that.TrapPolarity, that.EliminationWins)
}

// isVulnerable - reports whether a piece of owner standing on tile loses its strength.
func (that Rules) isVulnerable(tile entity.Tile, owner entity.Color) bool {
	if tile.Kind != entity.Trap {
		return false
	}

	if that.TrapPolarity == TrapOwner {
		return tile.Owner == owner
	}

	return tile.Owner == owner.Opponent()
}
