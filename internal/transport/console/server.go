package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
	"github.com/rocketscienceinc/jungle-king/internal/entity"
	"github.com/rocketscienceinc/jungle-king/internal/jungle"
)

var (
	errQuit           = errors.New("quit")
	errUsage          = errors.New("bad command")
	errUnknownCommand = errors.New("unknown command")
)

type matchManager interface {
	Start(ctx context.Context) (*jungle.Match, error)
	Current(ctx context.Context) (*jungle.Match, error)
	Offer(ctx context.Context) ([]string, error)
	Select(ctx context.Context, name string) (*jungle.Match, error)
	Move(ctx context.Context, from, to entity.Position) (jungle.MoveResult, error)
	LegalMoves(ctx context.Context, from entity.Position) ([]entity.Position, error)
	Restart(ctx context.Context) (*jungle.Match, error)
}

type handler func(ctx context.Context, args []string, out io.Writer) error

// Server drives a match from a line-oriented text stream.
type Server struct {
	logger   *slog.Logger
	manager  matchManager
	handlers map[string]handler
}

func New(logger *slog.Logger, manager matchManager) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		manager:  manager,
		handlers: make(map[string]handler),
	}

	server.handlers["help"] = server.handleHelp
	server.handlers["rules"] = server.handleRules
	server.handlers["offer"] = server.handleOffer
	server.handlers["pick"] = server.handlePick
	server.handlers["board"] = server.handleBoard
	server.handlers["move"] = server.handleMove
	server.handlers["moves"] = server.handleMoves
	server.handlers["state"] = server.handleState
	server.handlers["restart"] = server.handleRestart
	server.handlers["quit"] = server.handleQuit

	return server
}

// Run - reads commands from in until quit, end of input or cancellation.
func (that *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	match, err := that.manager.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	log.Info("console session started", "match_id", match.ID)
	fmt.Fprintln(out, "Jungle King. Pick a kind each with 'pick <kind>' (try 'offer'), then play with 'move'. Type 'help' for commands.")

	lines, readErr := readLines(ctx, in)
	for {
		if ctx.Err() != nil {
			log.Info("console session cancelled")
			return nil
		}

		fmt.Fprint(out, "> ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			log.Info("console session cancelled")
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			if ctx.Err() != nil {
				log.Info("console session cancelled")
				return nil
			}

			if err = <-readErr; err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		}

		err = that.dispatch(ctx, line, out)
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			log.Info("console session finished")
			return nil
		case isUserError(err):
			fmt.Fprintf(out, "error: %v\n", err)
		default:
			return fmt.Errorf("failed to handle command: %w", err)
		}
	}
}

// readLines - feeds lines of in to the returned channel until end of input or
// cancellation. At end of input the scanner error is sent before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (that *Server) dispatch(ctx context.Context, line string, out io.Writer) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	handle, ok := that.handlers[fields[0]]
	if !ok {
		return fmt.Errorf("%w %q, type 'help'", errUnknownCommand, fields[0])
	}

	that.logger.Debug("command received", "command", fields[0], "args", fields[1:])

	return handle(ctx, fields[1:], out)
}

// isUserError - errors that are reported to the player without ending the session.
func isUserError(err error) bool {
	if apperror.IsRuleViolation(err) {
		return true
	}

	for _, target := range []error{
		errUsage,
		errUnknownCommand,
		apperror.ErrGameFinished,
		apperror.ErrUnknownKind,
		apperror.ErrKindAlreadySelected,
		apperror.ErrSelectionComplete,
		apperror.ErrSelectionIncomplete,
		apperror.ErrNoActiveMatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
