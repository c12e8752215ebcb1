package command

import (
	"io"

	"github.com/sandevgo/sdb/internal/core"
)

// NewRegistry builds the console command table. The order here is the order
// help lists the commands in.
func NewRegistry(
	engine core.Engine,
	regs core.Registers,
	out io.Writer,
) *Router {
	help := NewHelpCommand(out)

	router := New([]core.Command{
		help,
		NewContinueCommand(engine),
		NewQuitCommand(engine),
		NewStepCommand(engine, out),
		NewInfoCommand(regs, out),
		NewExamineCommand(out),
	})
	help.Bind(router)

	return router
}
