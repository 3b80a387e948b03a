package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(input string) (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	t := New(
		WithInput(strings.NewReader(input)),
		WithOutput(out),
		WithErrOutput(errOut),
	)

	return t, out, errOut
}

func TestReadIntReturnsValidInteger(t *testing.T) {
	term, out, _ := newTestTerminal("7\n")

	assert.Equal(t, 7, term.ReadInt("Choice >> "))
	assert.Contains(t, out.String(), "Choice >> ")
}

func TestReadIntAcceptsNegativeNumbers(t *testing.T) {
	term, _, _ := newTestTerminal("-3\n")

	assert.Equal(t, -3, term.ReadInt("> "))
}

func TestReadIntRepromptsOnNonNumericInput(t *testing.T) {
	term, out, _ := newTestTerminal("abc\n\n1.5\n42\n")

	assert.Equal(t, 42, term.ReadInt("> "))

	assert.Equal(t, 4, strings.Count(out.String(), "> "))
	assert.Contains(t, out.String(), "Invalid choice! Please enter a number.")
}

func TestReadIntReturnsZeroOnEOF(t *testing.T) {
	term, _, _ := newTestTerminal("")
	assert.Equal(t, 0, term.ReadInt("> "))

	term, _, _ = newTestTerminal("garbage")
	assert.Equal(t, 0, term.ReadInt("> "))
}

func TestReadIntParsesFinalUnterminatedLine(t *testing.T) {
	term, _, _ := newTestTerminal("12")
	assert.Equal(t, 12, term.ReadInt("> "))
}

func TestPauseUsesDefaultMessage(t *testing.T) {
	term, out, _ := newTestTerminal("\n")

	term.Pause("")
	assert.Contains(t, out.String(), DefaultPauseMessage)
}

func TestPauseDiscardsPendingInputFirst(t *testing.T) {
	term, out, _ := newTestTerminal("5\nleftover\n")

	require.Equal(t, 5, term.ReadInt("> "))

	// Must not hang: the pending "leftover" line is discarded, then the
	// acknowledgment read hits end of input.
	term.Pause("press enter")
	assert.Contains(t, out.String(), "press enter")
}

func TestClearScreenEmitsAnsiReset(t *testing.T) {
	term, out, _ := newTestTerminal("")

	term.ClearScreen()
	assert.Contains(t, out.String(), "\033[2J")
	assert.Contains(t, out.String(), "\033[1;1H")
}

func TestOptionRendersNumberAndLabel(t *testing.T) {
	term, out, _ := newTestTerminal("")

	term.Option(3, "Settings")
	assert.Contains(t, out.String(), "3.")
	assert.Contains(t, out.String(), "Settings")
}

func TestHeadingSkipsEmptyTitle(t *testing.T) {
	term, out, _ := newTestTerminal("")

	term.Heading("")
	assert.Empty(t, out.String())

	term.Heading("Main")
	assert.Contains(t, out.String(), "Main")
}

func TestErrorWritesToErrorStream(t *testing.T) {
	term, out, errOut := newTestTerminal("")

	term.Error("disk on fire")
	assert.Contains(t, errOut.String(), "disk on fire")
	assert.Empty(t, out.String())
}
