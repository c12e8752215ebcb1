package command

import (
	"context"
	"io"

	"github.com/sandevgo/sdb/internal/core"
)

const registersSubCommand = "r"

type InfoCommand struct {
	regs      core.Registers
	formatter *ResponseFormatter
}

func NewInfoCommand(regs core.Registers, out io.Writer) *InfoCommand {
	return &InfoCommand{
		regs:      regs,
		formatter: NewResponseFormatter(out),
	}
}

func (c *InfoCommand) Name() string {
	return "info"
}

func (c *InfoCommand) Description() string {
	return "r: print the state of registers"
}

func (c *InfoCommand) Execute(ctx context.Context, args core.Args) core.Signal {
	switch {
	case !args.Present():
		c.formatter.RequiredSubCommand(registersSubCommand)
	case args.String() == registersSubCommand:
		c.regs.Display(c.formatter.Writer())
	default:
		c.formatter.UnknownSubCommand(args.String())
	}
	return core.Continue
}

const examineUsage = "x N EXPR"

type ExamineCommand struct {
	formatter *ResponseFormatter
}

func NewExamineCommand(out io.Writer) *ExamineCommand {
	return &ExamineCommand{
		formatter: NewResponseFormatter(out),
	}
}

func (c *ExamineCommand) Name() string {
	return "x"
}

func (c *ExamineCommand) Description() string {
	return "usage: x N EXPR, evaluate the EXPR as the start of memory address and print the sequential N bytes. " +
		"For simplicity, the EXPR should be exactly a hexadecimal number"
}

// Execute accepts exactly two tokens. Longer forms such as several N/EXPR
// pairs are not defined and print the usage string.
func (c *ExamineCommand) Execute(ctx context.Context, args core.Args) core.Signal {
	tokens := fields(args.String())
	if !args.Present() || len(tokens) != 2 {
		c.formatter.Usage(examineUsage)
		return core.Continue
	}

	n, ok := scanDecimal(tokens[0])
	if !ok {
		c.formatter.NotAnInteger(tokens[0])
		return core.Continue
	}

	addr, ok := scanHex(tokens[1])
	if !ok {
		c.formatter.NotAnInteger(tokens[1])
		return core.Continue
	}

	c.formatter.Line("N = %d, EXPR = 0x%08x", n, addr)
	return core.Continue
}
