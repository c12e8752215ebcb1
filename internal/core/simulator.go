package core

import (
	"context"
	"io"
)

// Unbounded is the step limit that runs until the engine stops on its own.
const Unbounded int64 = -1

type Engine interface {
	// Exec runs at most n instructions, a negative n means no limit.
	Exec(ctx context.Context, n int64)
	Quit()
	ExitStatusBad() bool
}

type Registers interface {
	Display(w io.Writer)
}

type Initializer interface {
	Init() error
}

type EventQueue interface {
	ClearEventQueue()
}

type LineSource interface {
	NextLine(ctx context.Context) (string, bool)
}
