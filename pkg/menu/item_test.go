package menu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTitle(t *testing.T) {
	a := NewAction("Say Hello", nil)
	assert.Equal(t, "Say Hello", a.Title())
}

func TestActionNilFuncIsNoop(t *testing.T) {
	a := NewAction("noop", nil)

	cont, err := a.Execute()
	require.NoError(t, err)
	assert.True(t, cont)
}

func TestActionReturnsBoundFuncError(t *testing.T) {
	want := errors.New("nope")
	a := NewAction("fails", func() error { return want })

	cont, err := a.Execute()
	assert.True(t, cont)
	assert.ErrorIs(t, err, want)
}

func TestActionClosureCapturesArguments(t *testing.T) {
	var got string

	greet := func(name string) error {
		got = fmt.Sprintf("Hello, %s!", name)
		return nil
	}

	a := NewAction("Say Hello", func() error { return greet("World") })

	cont, err := a.Execute()
	require.NoError(t, err)
	assert.True(t, cont)
	assert.Equal(t, "Hello, World!", got)
}
