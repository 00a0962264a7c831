package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
	"github.com/rocketscienceinc/jungle-king/internal/jungle"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *jungle.Match) error
	GetByID(ctx context.Context, id string) (*jungle.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// MatchManager runs the single live match of a session.
type MatchManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	rules jungle.Rules
	rng   *rand.Rand

	matchRepo matchRepo
	currentID string
}

func NewMatchManager(
	logger *slog.Logger,
	tracer trace.Tracer,
	rules jungle.Rules,
	rng *rand.Rand,
	matchRepo matchRepo,
) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match-manager"),
		tracer: tracer,

		rules: rules,
		rng:   rng,

		matchRepo: matchRepo,
	}
}

// Start - drops the live match, if any, and opens a new one.
func (that *MatchManager) Start(ctx context.Context) (*jungle.Match, error) {
	ctx, span := that.tracer.Start(ctx, "match.start")
	defer span.End()

	if that.currentID != "" {
		if err := that.matchRepo.DeleteByID(ctx, that.currentID); err != nil {
			return nil, that.fail(span, fmt.Errorf("failed to delete match: %w", err))
		}
	}

	match := jungle.NewMatch(uuid.NewString(), jungle.New(that.rules, that.rng), time.Now())
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to create match: %w", err))
	}

	that.currentID = match.ID
	span.SetAttributes(
		attribute.String("match.id", match.ID),
		attribute.String("match.rules", that.rules.String()),
	)
	that.logger.Info("match started", "match_id", match.ID, "rules", that.rules.String())

	return match, nil
}

// Current - returns the live match.
func (that *MatchManager) Current(ctx context.Context) (*jungle.Match, error) {
	if that.currentID == "" {
		return nil, apperror.ErrNoActiveMatch
	}

	match, err := that.matchRepo.GetByID(ctx, that.currentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// Offer - returns the kinds on offer for the first-player draw, shuffled.
func (that *MatchManager) Offer(ctx context.Context) ([]string, error) {
	ctx, span := that.tracer.Start(ctx, "match.offer")
	defer span.End()

	match, err := that.Current(ctx)
	if err != nil {
		return nil, that.fail(span, err)
	}

	names := match.Game.ShuffledPieceNames()
	span.SetAttributes(attribute.String("match.id", match.ID), attribute.StringSlice("offer", names))

	return names, nil
}

// Select - records the next player's pick. Once both picks are in, the player
// with the stronger kind gets the first move.
func (that *MatchManager) Select(ctx context.Context, name string) (*jungle.Match, error) {
	log := that.logger.With("method", "Select")

	ctx, span := that.tracer.Start(ctx, "match.select")
	defer span.End()

	match, err := that.Current(ctx)
	if err != nil {
		return nil, that.fail(span, err)
	}

	game := match.Game
	if err = game.State().SelectPiece(name); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to select piece: %w", err))
	}

	span.SetAttributes(attribute.String("match.id", match.ID), attribute.String("pick", name))

	if game.State().IsSelectionComplete() {
		first, err := game.DetermineFirstPlayer(
			game.State().Player1Choice().String(),
			game.State().Player2Choice().String(),
		)
		if err != nil {
			return nil, that.fail(span, fmt.Errorf("failed to determine first player: %w", err))
		}

		span.SetAttributes(attribute.String("first_player", first.Name()))
		log.Info("selection complete",
			"match_id", match.ID,
			"player1", game.State().Player1Choice().String(),
			"player2", game.State().Player2Choice().String(),
			"first", first.Name(),
		)
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to update match: %w", err))
	}

	return match, nil
}

// Move - plays the piece standing on from to the tile to.
func (that *MatchManager) Move(ctx context.Context, from, to entity.Position) (jungle.MoveResult, error) {
	log := that.logger.With("method", "Move")

	ctx, span := that.tracer.Start(ctx, "match.move")
	defer span.End()

	span.SetAttributes(attribute.String("from", from.String()), attribute.String("to", to.String()))

	match, err := that.Current(ctx)
	if err != nil {
		return jungle.MoveResult{}, that.fail(span, err)
	}

	span.SetAttributes(attribute.String("match.id", match.ID))

	game := match.Game
	if !game.State().IsSelectionComplete() {
		return jungle.MoveResult{}, that.fail(span, apperror.ErrSelectionIncomplete)
	}

	piece, ok := game.PieceAt(from)
	if !ok {
		return jungle.MoveResult{}, that.fail(span, fmt.Errorf("%w: no piece on %s", apperror.ErrUnknownPiece, from))
	}

	span.SetAttributes(attribute.String("piece", piece.String()))

	result, err := game.Play(piece.ID, to)
	if err != nil {
		if apperror.IsRuleViolation(err) {
			log.Debug("move rejected", "match_id", match.ID, "piece", piece.String(), "to", to.String(), "error", err)
		}

		return jungle.MoveResult{}, that.fail(span, fmt.Errorf("failed to play %s: %w", piece, err))
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return jungle.MoveResult{}, that.fail(span, fmt.Errorf("failed to update match: %w", err))
	}

	span.SetAttributes(
		attribute.Bool("attacker_lost", result.AttackerLost),
		attribute.Bool("captured", result.Captured != entity.NoPiece),
		attribute.Bool("won", result.Won),
	)
	log.Debug("move played",
		"match_id", match.ID,
		"piece", piece.String(),
		"from", from.String(),
		"to", to.String(),
		"captured", result.Captured,
		"attacker_lost", result.AttackerLost,
	)

	if result.Won {
		log.Info("match won", "match_id", match.ID, "winner", result.Winner.String(), "moves", len(game.History()))
	}

	return result, nil
}

// LegalMoves - lists where the piece on from may go.
func (that *MatchManager) LegalMoves(ctx context.Context, from entity.Position) ([]entity.Position, error) {
	log := that.logger.With("method", "LegalMoves")

	ctx, span := that.tracer.Start(ctx, "match.legal_moves")
	defer span.End()

	span.SetAttributes(attribute.String("from", from.String()))

	match, err := that.Current(ctx)
	if err != nil {
		return nil, that.fail(span, err)
	}

	span.SetAttributes(attribute.String("match.id", match.ID))

	piece, ok := match.Game.PieceAt(from)
	if !ok {
		return nil, that.fail(span, fmt.Errorf("%w: no piece on %s", apperror.ErrUnknownPiece, from))
	}

	moves := match.Game.LegalMoves(piece.ID)
	span.SetAttributes(attribute.String("piece", piece.String()), attribute.Int("moves", len(moves)))
	log.Debug("legal moves listed", "match_id", match.ID, "piece", piece.String(), "moves", len(moves))

	return moves, nil
}

// Restart - sets the live match's board up again under a fresh id.
func (that *MatchManager) Restart(ctx context.Context) (*jungle.Match, error) {
	ctx, span := that.tracer.Start(ctx, "match.restart")
	defer span.End()

	match, err := that.Current(ctx)
	if errors.Is(err, apperror.ErrNoActiveMatch) {
		return that.Start(ctx)
	}

	if err != nil {
		return nil, that.fail(span, err)
	}

	if err = that.matchRepo.DeleteByID(ctx, match.ID); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to delete match: %w", err))
	}

	previousID := match.ID
	match.Game.Restart()
	match.ID = uuid.NewString()
	match.StartedAt = time.Now()

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to update match: %w", err))
	}

	that.currentID = match.ID
	span.SetAttributes(attribute.String("match.id", match.ID), attribute.String("match.previous_id", previousID))
	that.logger.Info("match restarted", "match_id", match.ID, "previous_id", previousID)

	return match, nil
}

// fail - marks the span as failed and hands err back.
func (that *MatchManager) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
