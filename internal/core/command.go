package core

import "context"

// Signal tells the console loop whether to keep reading commands.
type Signal int

const (
	Continue Signal = iota
	Terminate
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Args is the unparsed remainder of an input line after the command word.
// It is owned by the iteration that produced it.
type Args struct {
	value   string
	present bool
}

func NewArgs(value string) Args {
	return Args{value: value, present: true}
}

func NoArgs() Args {
	return Args{}
}

func (a Args) Present() bool {
	return a.present
}

func (a Args) String() string {
	return a.value
}

type CmdRegistry interface {
	Lookup(name string) (Command, bool)
	List() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args Args) Signal
}
