// Package menu implements an interactive console menu tree: numbered
// options, integer selection, leaf actions and nested sub-menus.
package menu

import (
	"fmt"
	"log/slog"

	"github.com/mchmarny/gomenu/pkg/console"
	"github.com/mchmarny/gomenu/pkg/metric"
)

const (
	choicePrompt = "\nChoice >> "

	exitLabel = "Exit"
	backLabel = "Go back."

	errPauseMessage = "Please read error message after that you can press enter to continue..."
)

// Menu is a composite item owning an ordered list of child items and
// driving the interactive select/dispatch loop. Children are displayed
// with 1-based numbers in insertion order; selector 0 is reserved for the
// exit/back sentinel and is never stored among the children.
type Menu struct {
	title   string
	root    bool
	items   []Item
	console console.Console
	events  metric.IncrementalCounter
}

// Option is a functional option for configuring a Menu.
type Option func(*Menu)

// WithRoot marks the menu as the session root: its sentinel line reads
// "Exit" rather than "Go back.".
func WithRoot() Option {
	return func(m *Menu) { m.root = true }
}

// WithConsole sets the console I/O provider for the menu and any sub-menus
// attached afterward. If not specified, a terminal bound to the standard
// streams is used.
func WithConsole(c console.Console) Option {
	return func(m *Menu) { m.console = c }
}

// WithEventCounter enables loop event counting (dispatch, invalid, error,
// exit), labeled by this menu's title. Counting is off by default.
func WithEventCounter(c metric.IncrementalCounter) Option {
	return func(m *Menu) { m.events = c }
}

// New creates a menu with the given title and options.
func New(title string, opts ...Option) *Menu {
	m := &Menu{
		title:   title,
		console: console.New(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Title returns the display label.
func (m *Menu) Title() string {
	return m.title
}

// Len returns the number of child items.
func (m *Menu) Len() int {
	return len(m.items)
}

// AddItem appends an existing item to the end of the list.
// Nil items are ignored. Duplicate titles are permitted.
func (m *Menu) AddItem(item Item) {
	if item == nil {
		return
	}

	m.items = append(m.items, item)
}

// AddAction appends a new leaf action bound to fn. Arguments for fn are
// captured by the closure at the call site.
func (m *Menu) AddAction(title string, fn ActionFunc) {
	m.items = append(m.items, NewAction(title, fn))
}

// AddSubMenu appends sub as a child and propagates this menu's console and
// event counter through sub's own tree, so the whole session shares one
// I/O surface.
func (m *Menu) AddSubMenu(sub *Menu) {
	if sub == nil {
		return
	}

	sub.propagate(m.console, m.events)
	m.items = append(m.items, sub)
}

// propagate pushes the console and counter down the sub-tree.
func (m *Menu) propagate(c console.Console, events metric.IncrementalCounter) {
	m.console = c
	m.events = events

	for _, item := range m.items {
		if sub, ok := item.(*Menu); ok {
			sub.propagate(c, events)
		}
	}
}

// Execute drives the render/read/dispatch loop until the user selects 0,
// then returns false to signal "went back" to the caller. Child failures
// are intercepted here, reported on the console error channel, and never
// unwind past the loop; Execute itself always returns a nil error.
func (m *Menu) Execute() (bool, error) {
	for {
		m.render()

		choice := m.console.ReadInt(choicePrompt)
		if choice == 0 {
			m.count(metric.EventExit)
			return false, nil
		}

		if choice < 1 || choice > len(m.items) {
			m.count(metric.EventInvalid)
			m.console.Notice("Invalid choice!")
			m.console.Pause("")
			continue
		}

		item := m.items[choice-1]
		m.count(metric.EventDispatch)

		cont, err := dispatch(item)
		if err != nil {
			m.count(metric.EventError)
			slog.Error("menu item failed", "menu", m.title, "item", item.Title(), "error", err)
			m.console.Error(err.Error())
			m.console.Pause(errPauseMessage)
			continue
		}

		// Pause after leaf work so its output stays readable; a sub-menu
		// that returned re-renders immediately.
		if cont {
			m.console.Pause("")
		}
	}
}

// render draws one screen: heading, numbered children, sentinel line.
func (m *Menu) render() {
	m.console.ClearScreen()
	m.console.Heading(m.title)

	for i, item := range m.items {
		m.console.Option(i+1, item.Title())
	}

	if m.root {
		m.console.Option(0, exitLabel)
	} else {
		m.console.Option(0, backLabel)
	}
}

func (m *Menu) count(event string) {
	if m.events == nil {
		return
	}

	m.events.Increment(m.title, event)
}

// dispatch runs a child item, converting a panic into an error so a
// misbehaving action cannot unwind past the menu loop.
func dispatch(item Item) (cont bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			cont = true
			err = fmt.Errorf("%s: %v", item.Title(), r)
		}
	}()

	return item.Execute()
}
