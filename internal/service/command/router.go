package command

import (
	"github.com/sandevgo/sdb/internal/core"
)

// Router is the fixed, ordered command table of the console.
type Router struct {
	ordered  []core.Command
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		ordered:  make([]core.Command, 0, len(commands)),
		commands: make(map[string]core.Command, len(commands)),
	}

	for _, cmd := range commands {
		c.ordered = append(c.ordered, cmd)
		// first registration wins on duplicate names
		if _, ok := c.commands[cmd.Name()]; !ok {
			c.commands[cmd.Name()] = cmd
		}
	}
	return c
}

func (c *Router) Lookup(name string) (core.Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// List returns the commands in registration order.
func (c *Router) List() []core.Command {
	res := make([]core.Command, len(c.ordered))
	copy(res, c.ordered)
	return res
}
