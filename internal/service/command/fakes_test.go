package command

import (
	"context"
	"fmt"
	"io"
)

type fakeEngine struct {
	execs []int64
	quit  bool
}

func (e *fakeEngine) Exec(ctx context.Context, n int64) {
	e.execs = append(e.execs, n)
}

func (e *fakeEngine) Quit() {
	e.quit = true
}

func (e *fakeEngine) ExitStatusBad() bool {
	return false
}

type fakeRegisters struct {
	displayed int
}

func (r *fakeRegisters) Display(w io.Writer) {
	r.displayed++
	fmt.Fprintln(w, "pc  0x80000000")
}
