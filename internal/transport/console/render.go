package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/jungle-king/internal/entity"
	"github.com/rocketscienceinc/jungle-king/internal/jungle"
)

var tileCells = map[entity.TileKind]string{
	entity.Land:     ". ",
	entity.Lake:     "~ ",
	entity.Trap:     "^ ",
	entity.HomeBase: "# ",
}

// renderBoard - writes the board as a grid of two-character cells with row and
// column numbers, followed by whose turn it is.
func renderBoard(out io.Writer, game *jungle.Game) {
	var b strings.Builder

	b.WriteString("  ")
	for col := range entity.Cols {
		fmt.Fprintf(&b, " %d ", col)
	}
	writeLine(&b)

	var row strings.Builder
	for i, tile := range game.Board().Tiles() {
		if tile.Position.Col == 0 {
			fmt.Fprintf(&row, "%d ", tile.Position.Row)
		}

		row.WriteString(" ")
		row.WriteString(cell(game, tile))

		if i%entity.Cols == entity.Cols-1 {
			b.WriteString(row.String())
			writeLine(&b)
			row.Reset()
		}
	}

	b.WriteString(status(game))
	b.WriteString("\n")

	fmt.Fprint(out, b.String())
}

// writeLine - ends the current line without trailing blanks.
func writeLine(b *strings.Builder) {
	trimmed := strings.TrimRight(b.String(), " ")
	b.Reset()
	b.WriteString(trimmed)
	b.WriteString("\n")
}

func cell(game *jungle.Game, tile entity.Tile) string {
	if piece, ok := game.PieceAt(tile.Position); ok {
		side := "b"
		if piece.Owner == entity.Green {
			side = "g"
		}

		return side + string(piece.Kind.Letter())
	}

	return tileCells[tile.Kind]
}

func status(game *jungle.Game) string {
	if game.State().CheckVictory() {
		return fmt.Sprintf("Game over: %s wins.", game.State().Winner())
	}

	if !game.State().IsSelectionComplete() {
		return "Waiting for both picks."
	}

	return fmt.Sprintf("%s to move.", game.CurrentPlayer().Name())
}

// describeMove - one line about what the move did.
func describeMove(out io.Writer, game *jungle.Game, result jungle.MoveResult) {
	mover := fmt.Sprintf("%s %s", result.Owner, result.Kind)

	switch {
	case result.AttackerLost:
		defender, _ := game.PieceAt(result.To)
		fmt.Fprintf(out, "%s attacked %s on %s and lost.\n", mover, defender, result.To)
	case result.Captured != entity.NoPiece:
		captured, _ := game.Piece(result.Captured)
		fmt.Fprintf(out, "%s %s -> %s, took %s.\n", mover, result.From, result.To, captured)
	default:
		fmt.Fprintf(out, "%s %s -> %s.\n", mover, result.From, result.To)
	}
}
