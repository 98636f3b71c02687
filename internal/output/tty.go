package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stderr is attached to a terminal.
var IsTTY = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
