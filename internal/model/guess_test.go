package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderingString(t *testing.T) {
	assert.Equal(t, "less", OrderingLess.String())
	assert.Equal(t, "equal", OrderingEqual.String())
	assert.Equal(t, "greater", OrderingGreater.String())
	assert.Equal(t, "unknown", Ordering(5).String())
}

func TestOnlyTerminatedIsTerminal(t *testing.T) {
	for _, s := range []State{StatePrompting, StateReading, StateParsing, StateComparing} {
		assert.False(t, s.IsTerminal(), s)
	}
	assert.True(t, StateTerminated.IsTerminal())
}

func TestSecretRange(t *testing.T) {
	assert.Equal(t, Guess(1), MinSecret)
	assert.Equal(t, Guess(100), MaxSecret)
}
