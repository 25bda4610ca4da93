package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/guessgame/internal/model"
)

// ParseGuess trims surrounding whitespace from raw and parses it as an
// unsigned 32-bit decimal integer. A single leading '+' is allowed.
func ParseGuess(raw string) (model.Guess, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrGuessParse, strings.TrimSpace(raw))
	}
	return model.Guess(n), nil
}

// Compare orders guess relative to secret
func Compare(guess, secret model.Guess) model.Ordering {
	switch {
	case guess < secret:
		return model.OrderingLess
	case guess > secret:
		return model.OrderingGreater
	default:
		return model.OrderingEqual
	}
}
