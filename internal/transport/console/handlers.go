package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/jungle-king/internal/entity"
	"github.com/rocketscienceinc/jungle-king/internal/jungle"
)

const helpText = `Commands:
  offer                     show the kinds to pick from
  pick <kind>               pick a kind for the next player; the stronger pick moves first
  board                     show the board
  move <row> <col> <row> <col>  move the piece on the first tile to the second
  moves <row> <col>         list where the piece on that tile can go
  state                     print the match as JSON
  restart                   start over
  rules                     explain the rules
  quit                      leave`

const rulesText = `Each side moves one piece one tile up, down, left or right per turn.
A piece takes an enemy of equal or lower strength:
  Elephant 8, Lion 7, Tiger 6, Leopard 5, Wolf 4, Dog 3, Cat 2, Rat 1.
The Rat takes the Elephant; the Elephant never takes the Rat.
Only the Rat swims. A Rat in the water cannot attack land, and land cannot attack it.
The Lion and the Tiger leap straight across a lake when no Rat is in the way.
A piece standing on an enemy trap can be taken by any enemy piece.
Nobody may enter their own den. Enter the enemy den to win.
Attacking a stronger piece costs the attacker.`

func (that *Server) handleHelp(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprintln(out, helpText)
	return nil
}

func (that *Server) handleRules(ctx context.Context, _ []string, out io.Writer) error {
	fmt.Fprintln(out, rulesText)

	match, err := that.manager.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}

	fmt.Fprintf(out, "Active variant: %s\n", match.Game.Rules())

	return nil
}

func (that *Server) handleOffer(ctx context.Context, _ []string, out io.Writer) error {
	names, err := that.manager.Offer(ctx)
	if err != nil {
		return fmt.Errorf("failed to offer kinds: %w", err)
	}

	fmt.Fprintf(out, "On offer: %s\n", strings.Join(names, ", "))

	return nil
}

func (that *Server) handlePick(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: pick <kind>", errUsage)
	}

	match, err := that.manager.Select(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to pick: %w", err)
	}

	state := match.Game.State()
	if !state.IsSelectionComplete() {
		fmt.Fprintf(out, "Player 1 picked %s. Player 2, your pick.\n", state.Player1Choice())
		return nil
	}

	fmt.Fprintf(out, "Blue picked %s, Green picked %s. %s moves first.\n",
		state.Player1Choice(), state.Player2Choice(), match.Game.CurrentPlayer().Name())
	renderBoard(out, match.Game)

	return nil
}

func (that *Server) handleBoard(ctx context.Context, _ []string, out io.Writer) error {
	match, err := that.manager.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}

	renderBoard(out, match.Game)

	return nil
}

func (that *Server) handleMove(ctx context.Context, args []string, out io.Writer) error {
	coords, err := parseCoords(args, 4)
	if err != nil {
		return fmt.Errorf("%w: usage: move <row> <col> <row> <col>", err)
	}

	from := entity.Position{Row: coords[0], Col: coords[1]}
	to := entity.Position{Row: coords[2], Col: coords[3]}

	result, err := that.manager.Move(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to move: %w", err)
	}

	match, err := that.manager.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}

	describeMove(out, match.Game, result)
	renderBoard(out, match.Game)

	return nil
}

func (that *Server) handleMoves(ctx context.Context, args []string, out io.Writer) error {
	coords, err := parseCoords(args, 2)
	if err != nil {
		return fmt.Errorf("%w: usage: moves <row> <col>", err)
	}

	moves, err := that.manager.LegalMoves(ctx, entity.Position{Row: coords[0], Col: coords[1]})
	if err != nil {
		return fmt.Errorf("failed to list moves: %w", err)
	}

	if len(moves) == 0 {
		fmt.Fprintln(out, "No legal moves.")
		return nil
	}

	parts := make([]string, 0, len(moves))
	for _, pos := range moves {
		parts = append(parts, pos.String())
	}

	fmt.Fprintf(out, "Legal moves: %s\n", strings.Join(parts, " "))

	return nil
}

type stateResponse struct {
	MatchID string              `json:"match_id"`
	Phase   string              `json:"phase"`
	Winner  string              `json:"winner,omitempty"`
	Pieces  []entity.Piece      `json:"pieces"`
	History []jungle.MoveResult `json:"history"`
}

func (that *Server) handleState(ctx context.Context, _ []string, out io.Writer) error {
	match, err := that.manager.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}

	game := match.Game
	response := stateResponse{
		MatchID: match.ID,
		Phase:   game.Phase().String(),
		Pieces:  append(game.ActivePieces(entity.Blue), game.ActivePieces(entity.Green)...),
		History: game.History(),
	}

	if game.State().CheckVictory() {
		response.Winner = game.State().Winner().String()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(response); err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ []string, out io.Writer) error {
	match, err := that.manager.Restart(ctx)
	if err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}

	fmt.Fprintf(out, "New match %s. Pick a kind each with 'pick <kind>'.\n", match.ID)

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprintln(out, "Bye.")
	return errQuit
}

func parseCoords(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, errUsage
	}

	coords := make([]int, 0, want)
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errUsage
		}

		coords = append(coords, n)
	}

	return coords, nil
}
