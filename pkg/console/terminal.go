package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Terminal is the standard Console implementation backed by line-oriented
// reader/writer pairs (stdin/stdout/stderr by default).
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// Option is a functional option for configuring the Terminal.
type Option func(*Terminal)

// WithInput sets the input stream the terminal reads selections from.
// If not specified, os.Stdin is used.
func WithInput(r io.Reader) Option {
	return func(t *Terminal) { t.in = bufio.NewReader(r) }
}

// WithOutput sets the stream menu screens are rendered to.
// If not specified, os.Stdout is used.
func WithOutput(w io.Writer) Option {
	return func(t *Terminal) { t.out = w }
}

// WithErrOutput sets the stream caught failures are reported to.
// If not specified, os.Stderr is used.
func WithErrOutput(w io.Writer) Option {
	return func(t *Terminal) { t.errOut = w }
}

// New creates a Terminal with the provided options.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ClearScreen resets the display using ANSI escape sequences.
func (t *Terminal) ClearScreen() {
	fmt.Fprint(t.out, "\033[2J\033[1;1H")
}

// Heading prints a styled menu title line. Empty titles print nothing.
func (t *Terminal) Heading(text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(t.out, headingStyle.Render(text))
}

// Option prints a single selectable line as "<n>. <label>".
func (t *Terminal) Option(n int, label string) {
	fmt.Fprintf(t.out, "%s %s\n", numberStyle.Render(strconv.Itoa(n)+"."), label)
}

// Notice prints an informational message.
func (t *Terminal) Notice(message string) {
	fmt.Fprintln(t.out, noticeStyle.Render(message))
}

// ReadInt prompts and blocks until the user enters a valid integer.
// Non-numeric lines are rejected with a hint and the prompt is repeated.
// When the input stream ends, ReadInt returns 0 so every enclosing menu
// level unwinds cleanly instead of spinning on a closed stream.
func (t *Terminal) ReadInt(prompt string) int {
	for {
		fmt.Fprint(t.out, prompt)

		line, err := t.in.ReadString('\n')
		if v, perr := strconv.Atoi(strings.TrimSpace(line)); perr == nil {
			return v
		}

		if err != nil {
			return 0
		}

		t.Notice("Invalid choice! Please enter a number.")
	}
}

// Pause blocks until the user acknowledges by entering a line.
// Pending buffered input is discarded first so a previously typed line
// does not count as the acknowledgment.
func (t *Terminal) Pause(message string) {
	if message == "" {
		message = DefaultPauseMessage
	}

	fmt.Fprintf(t.out, "\n%s", message)

	if n := t.in.Buffered(); n > 0 {
		_, _ = t.in.Discard(n)
	}

	_, _ = t.in.ReadString('\n')
}

// Error reports a caught failure's message on the error stream.
func (t *Terminal) Error(message string) {
	fmt.Fprintln(t.errOut, errorStyle.Render(message))
}
