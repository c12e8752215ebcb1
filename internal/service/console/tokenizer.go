package console

import (
	"strings"

	"github.com/sandevgo/sdb/internal/core"
)

const delim = " "

// Tokenize splits a line into its command word and the verbatim remainder.
// Leading spaces are skipped; the command word ends at the next space and the
// arguments start right after it. ok is false when the line has no word.
func Tokenize(line string) (cmd string, args core.Args, ok bool) {
	line = strings.TrimLeft(line, delim)
	if line == "" {
		return "", core.NoArgs(), false
	}

	cmd, rest, found := strings.Cut(line, delim)
	if !found || rest == "" {
		return cmd, core.NoArgs(), true
	}
	return cmd, core.NewArgs(rest), true
}
