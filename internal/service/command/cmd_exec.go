package command

import (
	"context"
	"io"

	"github.com/sandevgo/sdb/internal/core"
	"github.com/sandevgo/sdb/pkg/log"
)

type ContinueCommand struct {
	engine core.Engine
}

func NewContinueCommand(engine core.Engine) *ContinueCommand {
	return &ContinueCommand{engine: engine}
}

func (c *ContinueCommand) Name() string {
	return "c"
}

func (c *ContinueCommand) Description() string {
	return "Continue the execution of the program"
}

func (c *ContinueCommand) Execute(ctx context.Context, args core.Args) core.Signal {
	log.FromCtx(ctx).Debug().Msg("resuming execution without step limit")
	c.engine.Exec(ctx, core.Unbounded)
	return core.Continue
}

type StepCommand struct {
	engine    core.Engine
	formatter *ResponseFormatter
}

func NewStepCommand(engine core.Engine, out io.Writer) *StepCommand {
	return &StepCommand{
		engine:    engine,
		formatter: NewResponseFormatter(out),
	}
}

func (c *StepCommand) Name() string {
	return "si"
}

func (c *StepCommand) Description() string {
	return "Execute N instructions then stop. If N isn't specified after si, N = 1"
}

func (c *StepCommand) Execute(ctx context.Context, args core.Args) core.Signal {
	steps := int64(1)

	if args.Present() {
		n, ok := scanDecimal(args.String())
		if !ok {
			c.formatter.NotAnInteger(args.String())
			return core.Continue
		}
		steps = int64(n)
	}

	log.FromCtx(ctx).Debug().Int64("steps", steps).Msg("stepping")
	c.engine.Exec(ctx, steps)
	return core.Continue
}

type QuitCommand struct {
	engine core.Engine
}

func NewQuitCommand(engine core.Engine) *QuitCommand {
	return &QuitCommand{engine: engine}
}

func (c *QuitCommand) Name() string {
	return "q"
}

func (c *QuitCommand) Description() string {
	return "Exit NEMU"
}

func (c *QuitCommand) Execute(ctx context.Context, args core.Args) core.Signal {
	c.engine.Quit()
	return core.Terminate
}
