package console

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/sdb/internal/core"
	"github.com/sandevgo/sdb/internal/service/state"
	"github.com/sandevgo/sdb/pkg/log"
)

// Console is the read-eval loop of the simple debugger.
type Console struct {
	session  *state.Session
	source   core.LineSource
	registry core.CmdRegistry
	engine   core.Engine
	events   core.EventQueue
	out      io.Writer
}

type Option func(*Console)

// WithEventQueue enables the device hook that drains pending events before
// every dispatched command.
func WithEventQueue(events core.EventQueue) Option {
	return func(c *Console) {
		c.events = events
	}
}

func New(
	session *state.Session,
	source core.LineSource,
	registry core.CmdRegistry,
	engine core.Engine,
	out io.Writer,
	opts ...Option,
) *Console {
	c := &Console{
		session:  session,
		source:   source,
		registry: registry,
		engine:   engine,
		out:      out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init prepares the collaborators the commands rely on. It runs once, before
// the loop.
func Init(ctx context.Context, subsystems ...core.Initializer) error {
	logger := log.FromCtx(ctx)
	for _, s := range subsystems {
		if err := s.Init(); err != nil {
			return fmt.Errorf("failed to init %T: %w", s, err)
		}
		logger.Debug().Msgf("%T initialized", s)
	}
	return nil
}

// Run drives the loop until a command asks to stop or input ends. In batch
// mode no input is read: execution resumes once and Run returns.
func (c *Console) Run(ctx context.Context) {
	logger := log.FromCtx(ctx)

	if c.session.IsBatch() {
		logger.Debug().Msg("batch mode, resuming execution once")
		c.engine.Exec(ctx, core.Unbounded)
		return
	}

	for {
		line, ok := c.source.NextLine(ctx)
		if !ok {
			logger.Debug().Msg("end of input")
			return
		}

		if c.dispatch(ctx, line) == core.Terminate {
			logger.Debug().Msg("console terminated by command")
			return
		}
	}
}

func (c *Console) dispatch(ctx context.Context, line string) core.Signal {
	name, args, ok := Tokenize(line)
	if !ok {
		return core.Continue
	}

	if c.events != nil {
		c.events.ClearEventQueue()
	}

	cmd, ok := c.registry.Lookup(name)
	if !ok {
		fmt.Fprintf(c.out, "Unknown command '%s'\n", name)
		return core.Continue
	}

	log.FromCtx(ctx).Debug().Str("cmd", name).Str("args", args.String()).Msg("dispatch")
	return cmd.Execute(ctx, args)
}

// Start and Shutdown let the console run under pkg/srv.
func (c *Console) Start(ctx context.Context) error {
	c.Run(ctx)
	return nil
}

func (c *Console) Shutdown(ctx context.Context) error {
	return nil
}
