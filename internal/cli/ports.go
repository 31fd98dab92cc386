package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/semainier/internal/domain"
)

// Confirmer asks the user to confirm a destructive action. The remove
// command goes through it so tests can answer without a terminal. The shell
// confirms inside its own model instead: while bubbletea runs, its input
// loop owns stdin and a second reader would hang.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier surfaces a message to the user outside the normal output flow,
// such as a server rejection during form submission.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) { f(message) }

// activityAPI is the slice of the API client the shell needs. Satisfied by
// *api.Client; stubbed in tests.
type activityAPI interface {
	List(ctx context.Context) ([]domain.Activity, error)
	Create(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
	FeedURL() string
}

// TerminalConfirmer reads a y/n answer from in.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminalConfirmer builds a Confirmer over stdin/stdout.
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin, Out: os.Stdout}
}

func (c *TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s [o/N] ", prompt)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	// A terminal in raw mode sends '\r' with no '\n', so a partial read
	// still carries the answer.
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "o", "oui":
		return true
	default:
		return false
	}
}
