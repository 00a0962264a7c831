package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/jungle-king/internal/config"
	"github.com/rocketscienceinc/jungle-king/internal/repository"
	"github.com/rocketscienceinc/jungle-king/internal/telemetry"
	"github.com/rocketscienceinc/jungle-king/internal/transport/console"
	"github.com/rocketscienceinc/jungle-king/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	tracer, shutdown, err := initTracer(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not set up telemetry: %w", err)
	}

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if shutdownErr := shutdown(shutdownCtx); shutdownErr != nil {
			log.Error("could not shut down telemetry", "error", shutdownErr)
		}
	}()

	return Run(ctx, logger, conf, tracer, os.Stdin, os.Stdout)
}

// Run - wires the match stack and serves the console on in and out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, tracer trace.Tracer, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	rules := conf.Rules.GameRules()
	matchRepo := repository.NewMatchRepository()
	matchManager := usecase.NewMatchManager(logger, tracer, rules, newRand(conf.Seed), matchRepo)
	server := console.New(logger, matchManager)

	log.Info("Starting console", "rules", rules.String(), "seed", conf.Seed)
	if err := server.Run(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed")

	return nil
}

func initTracer(ctx context.Context, conf *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !conf.Telemetry.Enabled {
		return telemetry.NoopTracer(), func(context.Context) error { return nil }, nil
	}

	shutdown, err := telemetry.Setup(ctx, conf.Telemetry.ServiceName)
	if err != nil {
		return nil, nil, err
	}

	return telemetry.Tracer("match"), shutdown, nil
}

// newRand - a zero seed means a clock-based seed.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(seed))
}
