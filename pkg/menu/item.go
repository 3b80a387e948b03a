package menu

// Item is anything displayable and executable within the menu tree.
// The set is open: new item kinds (toggles, input prompts) only need to
// implement the interface, existing callers are unaffected.
type Item interface {
	// Title returns the display label. No side effects.
	Title() string

	// Execute performs the item's behavior. The returned bool tells the
	// dispatching menu whether to continue its loop as normal; a Menu
	// returns false when the user selected "go back". A non-nil error is
	// an action failure for the dispatching menu to report.
	Execute() (bool, error)
}

// ActionFunc is a zero-argument unit of work bound to an Action.
// Arguments are captured by the closure at menu-build time.
type ActionFunc func() error

// Action is a leaf item binding a unit of work to a title.
type Action struct {
	title string
	fn    ActionFunc
}

// NewAction creates a leaf item running fn when selected.
// A nil fn makes execution a safe no-op.
func NewAction(title string, fn ActionFunc) *Action {
	return &Action{title: title, fn: fn}
}

// Title returns the display label.
func (a *Action) Title() string {
	return a.title
}

// Execute runs the bound unit of work. Failures are returned to the
// dispatching menu; the leaf itself performs no I/O and never pauses.
func (a *Action) Execute() (bool, error) {
	if a.fn == nil {
		return true, nil
	}

	return true, a.fn()
}
