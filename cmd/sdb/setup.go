package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/sdb/internal/config"
	"github.com/sandevgo/sdb/internal/core"
	"github.com/sandevgo/sdb/internal/service/command"
	"github.com/sandevgo/sdb/internal/service/console"
	"github.com/sandevgo/sdb/internal/service/state"
	"github.com/sandevgo/sdb/internal/sim"
	"github.com/sandevgo/sdb/internal/transport/cli"
	"github.com/sandevgo/sdb/pkg/log"
	"github.com/sandevgo/sdb/pkg/srv"
)

// SDB is a fully wired debugger: simulator, console and the services that
// must be shut down once the console returns.
type SDB struct {
	machine    *sim.Machine
	console    *console.Console
	dependants []srv.Service
}

func NewSDB(ctx context.Context, cfg *config.AppConfig, in io.Reader, out io.Writer) (*SDB, error) {
	logger := log.FromCtx(ctx)
	app := &SDB{}

	// 1. Session
	session := state.NewSession()
	if cfg.IsBatch() {
		session.ForceBatch()
	}

	// 2. Line source. Batch mode never reads, so no prompt is created.
	var source core.LineSource
	if !session.IsBatch() {
		rl, err := initReadLine(cfg, in, out)
		if err != nil {
			return nil, fmt.Errorf("failed to create line editor: %w", err)
		}
		app.dependants = append(app.dependants, rl)
		source = rl
		out = rl.Stdout()
	}

	// 3. Simulator
	machine, err := sim.NewMachine(cfg.MemSize, out)
	if err != nil {
		app.shutdown(ctx)
		return nil, err
	}
	app.machine = machine
	if cfg.ImagePath != "" {
		size, err := app.machine.LoadImage(cfg.ImagePath)
		if err != nil {
			app.shutdown(ctx)
			return nil, err
		}
		logger.Info().Str("path", cfg.ImagePath).Int("size", size).Msg("image loaded")
	} else {
		logger.Info().Msg("no image is given, using the built-in image")
	}

	if err := console.Init(ctx, sim.NewExpr(), sim.NewWatchpointPool()); err != nil {
		app.shutdown(ctx)
		return nil, err
	}

	// 4. Console
	var opts []console.Option
	if cfg.IsDeviceEnabled() {
		dev := sim.NewDevice()
		opts = append(opts, console.WithEventQueue(dev))
		app.dependants = append(app.dependants, srv.NewCleanup(func() error {
			logger.Debug().Int64("events", dev.Cleared()).Msg("device event queue drained")
			return nil
		}))
	}

	registry := command.NewRegistry(app.machine, app.machine, out)
	app.console = console.New(session, source, registry, app.machine, out, opts...)

	fmt.Fprintf(out, "Welcome to %s-%s!\n%s\n", core.SdbISA, core.SdbName, core.SdbHelpHint)
	return app, nil
}

func (a *SDB) Run(ctx context.Context) error {
	deps := append([]srv.Service{srv.NewCleanup(func() error {
		log.FromCtx(ctx).Debug().
			Uint64("instructions", a.machine.Retired()).
			Str("state", a.machine.State().String()).
			Msg("simulation finished")
		return nil
	})}, a.dependants...)

	return srv.RunForeground(ctx, a.console, deps...)
}

func (a *SDB) ExitStatusBad() bool {
	return a.machine.ExitStatusBad()
}

func (a *SDB) shutdown(ctx context.Context) {
	srv.ShutdownServices(ctx, a.dependants)
}

func initReadLine(cfg *config.AppConfig, in io.Reader, out io.Writer) (*cli.ReadLine, error) {
	rlCfg := cli.Config{Prompt: cfg.GetPrompt()}
	if f, ok := in.(*os.File); !ok || f != os.Stdin {
		rlCfg.Stdin = io.NopCloser(in)
	}
	if f, ok := out.(*os.File); !ok || f != os.Stdout {
		rlCfg.Stdout = out
	}
	return cli.NewReadLine(rlCfg)
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
