// Package console provides the interactive I/O surface the menu loop talks to.
// The menu core renders and reads exclusively through the Console interface,
// which keeps the loop testable and the terminal details swappable.
package console

// DefaultPauseMessage is shown by Pause when the caller does not supply one.
const DefaultPauseMessage = "Please press enter to continue..."

// Console is the display and input collaborator for a menu session.
// Implementations must block in ReadInt and Pause; the menu loop is
// synchronous by design.
type Console interface {
	// ClearScreen clears/resets the visible display surface.
	ClearScreen()

	// Heading prints a menu title line above the numbered options.
	Heading(text string)

	// Option prints a single selectable line as "<n>. <label>".
	Option(n int, label string)

	// Notice prints an informational message (e.g. an invalid-choice hint).
	Notice(message string)

	// ReadInt prompts and blocks until a syntactically valid integer is
	// entered. Parse failures are handled internally by re-prompting and
	// never surface to the caller.
	ReadInt(prompt string) int

	// Pause blocks until the user acknowledges, discarding any pending
	// buffered input first. An empty message selects DefaultPauseMessage.
	Pause(message string)

	// Error reports a caught failure's message on the error channel.
	Error(message string)
}
