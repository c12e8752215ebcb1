package command

import (
	"context"
	"io"

	"github.com/sandevgo/sdb/internal/core"
)

type HelpCommand struct {
	registry  core.CmdRegistry
	formatter *ResponseFormatter
}

func NewHelpCommand(out io.Writer) *HelpCommand {
	return &HelpCommand{
		formatter: NewResponseFormatter(out),
	}
}

// Bind attaches the registry help reports on. Help is itself part of that
// registry, so it is wired after construction.
func (c *HelpCommand) Bind(registry core.CmdRegistry) {
	c.registry = registry
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Display information about all supported commands"
}

func (c *HelpCommand) Execute(ctx context.Context, args core.Args) core.Signal {
	tokens := fields(args.String())
	if len(tokens) == 0 {
		for _, cmd := range c.registry.List() {
			c.formatter.Entry(cmd.Name(), cmd.Description())
		}
		return core.Continue
	}

	name := tokens[0]
	cmd, ok := c.registry.Lookup(name)
	if !ok {
		c.formatter.UnknownCommand(name)
		return core.Continue
	}

	c.formatter.Entry(cmd.Name(), cmd.Description())
	return core.Continue
}
