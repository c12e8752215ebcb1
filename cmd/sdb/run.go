package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sandevgo/sdb/internal/config"
	"github.com/sandevgo/sdb/pkg/log"
	"github.com/spf13/cobra"
)

var errBadExit = errors.New("guest program did not exit cleanly")

var (
	batch   bool
	device  bool
	memSize int
)

var runCmd = &cobra.Command{
	Use:          "run [image]",
	Short:        "Load an image and start the debugger console",
	Long:         `Loads a raw riscv32 image (or the built-in one) at 0x80000000 and starts the console. In batch mode the program runs to completion without a prompt.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		cfg, err := config.NewAppConfig(ctx)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, cfg, args); err != nil {
			return err
		}

		app, err := NewSDB(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			logger.Error().Err(err).Msg("failed to initialize debugger")
			return err
		}

		if err := app.Run(ctx); err != nil {
			return err
		}

		if app.ExitStatusBad() {
			return errBadExit
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&batch, "batch", "b", false, "run with batch mode")
	runCmd.Flags().BoolVar(&device, "device", false, "enable the device event queue")
	runCmd.Flags().IntVar(&memSize, "mem-size", 0, "guest memory size in bytes")
	rootCmd.AddCommand(runCmd)
}

// applyFlags lets explicit flags override values coming from the environment.
func applyFlags(cmd *cobra.Command, cfg *config.AppConfig, args []string) error {
	if cmd.Flags().Changed("batch") {
		cfg.Batch = batch
	}
	if cmd.Flags().Changed("device") {
		cfg.EnableDevice = device
	}
	if cmd.Flags().Changed("mem-size") {
		if err := config.ValidateMemSize(memSize); err != nil {
			return fmt.Errorf("invalid --mem-size: %w", err)
		}
		cfg.MemSize = memSize
	}
	if len(args) == 1 {
		cfg.ImagePath = args[0]
	}
	return nil
}
