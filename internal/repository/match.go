package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/jungle-king/internal/jungle"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrInvalidMatch  = errors.New("invalid match")
)

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *jungle.Match) error
	GetByID(ctx context.Context, id string) (*jungle.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// memoryMatch keeps matches for the lifetime of the process.
type memoryMatch struct {
	matches map[string]*jungle.Match
}

func NewMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string]*jungle.Match),
	}
}

func (that *memoryMatch) CreateOrUpdate(ctx context.Context, match *jungle.Match) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	if match == nil || match.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidMatch)
	}

	that.matches[match.ID] = match

	return nil
}

func (that *memoryMatch) GetByID(ctx context.Context, id string) (*jungle.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	match, ok := that.matches[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}

	return match, nil
}

func (that *memoryMatch) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	delete(that.matches, id)

	return nil
}
