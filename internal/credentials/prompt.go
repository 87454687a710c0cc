package credentials

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the operator for input.
type Prompter interface {
	// Interactive reports whether an operator can answer.
	Interactive() bool

	// ReadPassword reads a line without echoing it.
	ReadPassword(prompt string) (string, error)

	// WaitForConfirmation blocks until the operator presses Enter or ctx is done.
	WaitForConfirmation(ctx context.Context, prompt string) error
}

// Terminal prompts on a terminal file descriptor.
type Terminal struct {
	in  *os.File
	out io.Writer

	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
	lines        *bufio.Reader
}

// NewTerminal creates a prompter reading from in and writing prompts to out
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Terminal{
		in:           in,
		out:          out,
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
		lines:        bufio.NewReader(in),
	}
}

// Interactive reports whether the input is a terminal
func (t *Terminal) Interactive() bool {
	return t.isTerminal(int(t.in.Fd()))
}

// ReadPassword prints the prompt and reads a password without echo
func (t *Terminal) ReadPassword(prompt string) (string, error) {
	if !t.Interactive() {
		return "", ErrNotInteractive
	}
	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", err
	}
	b, err := t.readPassword(int(t.in.Fd()))
	_, _ = fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// WaitForConfirmation prints the prompt and waits for a line of input
func (t *Terminal) WaitForConfirmation(ctx context.Context, prompt string) error {
	return waitForLine(ctx, t.lines, t.out, prompt)
}

// waitForLine returns when a line is read or ctx is done. The reading goroutine stays blocked
// on the reader after cancellation until input arrives or the process exits.
func waitForLine(ctx context.Context, r *bufio.Reader, out io.Writer, prompt string) error {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		_, err := r.ReadString('\n')
		if err == io.EOF {
			err = nil
		}
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
