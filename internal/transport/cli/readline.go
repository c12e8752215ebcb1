package cli

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/sandevgo/sdb/pkg/log"
)

// ReadLine is the interactive line source of the console. History lives only
// in memory for the lifetime of the process.
type ReadLine struct {
	rl      *readline.Instance
	history int
}

type Config struct {
	Prompt string
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

func NewReadLine(cfg Config) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 cfg.Prompt,
		Stdin:                  cfg.Stdin,
		Stdout:                 cfg.Stdout,
		Stderr:                 cfg.Stderr,
		InterruptPrompt:        "^C",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{rl: rl}, nil
}

// NextLine blocks until the operator enters a line. It returns false on end
// of input or on an interrupt at an empty prompt.
func (r *ReadLine) NextLine(ctx context.Context) (string, bool) {
	logger := log.FromCtx(ctx)

	for {
		select {
		case <-ctx.Done():
			return "", false
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return "", false
				}
				continue
			}
			if !errors.Is(err, io.EOF) {
				logger.Error().Err(err).Msg("failed to read line")
			}
			return "", false
		}

		if line != "" {
			if err := r.rl.SaveHistory(line); err != nil {
				logger.Warn().Err(err).Msg("failed to record history")
			} else {
				r.history++
			}
		}
		return line, true
	}
}

// HistoryLen counts the lines recorded for recall.
func (r *ReadLine) HistoryLen() int {
	return r.history
}

func (r *ReadLine) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *ReadLine) Start(ctx context.Context) error {
	return nil
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
