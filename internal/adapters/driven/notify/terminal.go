package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
)

// FlushedMessage is shown after queued pizzas reach the server.
const FlushedMessage = "All saved pizza has been submitted!"

// Ensure Terminal implements the interface.
var _ driven.Notifier = (*Terminal)(nil)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Terminal writes notifications to the user's terminal.
// Successes go to out and failures to errOut.
type Terminal struct {
	out    io.Writer
	errOut io.Writer
	styled bool
}

// NewTerminal creates a terminal notifier. Styling is enabled only when
// out is a terminal.
func NewTerminal(out, errOut io.Writer) *Terminal {
	return &Terminal{
		out:    out,
		errOut: errOut,
		styled: isTerminal(out),
	}
}

// Flushed reports delivered records.
func (t *Terminal) Flushed(count int) {
	msg := fmt.Sprintf("%s (%d)", FlushedMessage, count)
	if t.styled {
		msg = successStyle.Render(msg)
	}
	fmt.Fprintln(t.out, msg)
}

// Failed reports a replay that left the queue untouched.
func (t *Terminal) Failed(err error) {
	msg := fmt.Sprintf("Saved pizza could not be submitted, will retry when back online: %v", err)
	if t.styled {
		msg = failureStyle.Render(msg)
	}
	fmt.Fprintln(t.errOut, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
