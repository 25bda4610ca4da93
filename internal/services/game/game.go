package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mcoot/guessgame/internal/dependencies/clock"
	"github.com/mcoot/guessgame/internal/dependencies/random"
	"github.com/mcoot/guessgame/internal/model"
)

// Messages written to the player
const (
	MsgWelcome  = "Guess the number!"
	MsgPrompt   = "Please input your guess."
	MsgTooSmall = "Too small!"
	MsgTooBig   = "Too big!"
	MsgWin      = "You win!"
)

// Config holds the dependencies of a Game
type Config struct {
	// In is where guesses are read from (required)
	In io.Reader
	// Out receives the game transcript (required)
	Out io.Writer
	// Random draws the secret number (optional)
	// If nil, random.New() is used
	Random random.Random
	// Clock is used to time the game (optional)
	// If nil, clock.New() is used
	Clock clock.Clock
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// Game runs one round of the guessing loop. It is not safe for concurrent use.
type Game struct {
	in     *bufio.Reader
	out    io.Writer
	random random.Random
	clock  clock.Clock
	logger *slog.Logger

	started   bool
	state     model.State
	secret    model.Guess
	line      string
	guess     model.Guess
	attempts  int
	startedAt time.Time
	err       error
}

// New creates a Game; the secret is drawn by Start
func New(cfg Config) *Game {
	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Game{
		in:     bufio.NewReader(cfg.In),
		out:    cfg.Out,
		random: rnd,
		clock:  clk,
		logger: logger,
		state:  model.StatePrompting,
	}
}

// NewSecret draws a secret uniformly from [MinSecret, MaxSecret]
func NewSecret(rnd random.Random) model.Guess {
	return model.Guess(random.Between(rnd, int(model.MinSecret), int(model.MaxSecret)))
}

// State returns the current loop state
func (g *Game) State() model.State {
	return g.state
}

// Secret returns the secret number, or 0 before Start
func (g *Game) Secret() model.Guess {
	return g.secret
}

// Attempts returns the number of guesses that parsed successfully
func (g *Game) Attempts() int {
	return g.attempts
}

// Start prints the welcome banner and draws the secret. Calling it more than
// once has no effect.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.println(MsgWelcome)
	g.secret = NewSecret(g.random)
	g.startedAt = g.clock.Now()
	g.logger.Debug("secret generated",
		slog.Int("min", int(model.MinSecret)),
		slog.Int("max", int(model.MaxSecret)),
	)
}

// Run starts the game and steps it until it terminates. It returns nil once
// the secret is guessed, or an error wrapping model.ErrInputRead if the input
// could not be read.
func (g *Game) Run() error {
	g.Start()
	for !g.state.IsTerminal() {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return g.err
}

// Step performs a single state transition. The only error it returns is a
// read failure, after which the game is terminated.
func (g *Game) Step() error {
	g.Start()

	switch g.state {
	case model.StatePrompting:
		g.println(MsgPrompt)
		g.state = model.StateReading

	case model.StateReading:
		line, err := g.readLine()
		if err != nil {
			g.err = err
			g.state = model.StateTerminated
			g.logger.Error("could not read guess", slog.String("error", err.Error()))
			return err
		}
		g.line = line
		g.state = model.StateParsing

	case model.StateParsing:
		guess, err := ParseGuess(g.line)
		g.line = ""
		if err != nil {
			// Unparseable input is discarded without telling the player
			g.logger.Debug("guess discarded", slog.String("error", err.Error()))
			g.state = model.StatePrompting
			return nil
		}
		g.guess = guess
		g.attempts++
		g.printf("You guessed: %d\n", guess)
		g.state = model.StateComparing

	case model.StateComparing:
		ordering := Compare(g.guess, g.secret)
		g.logger.Debug("guess compared",
			slog.Int("attempt", g.attempts),
			slog.String("ordering", ordering.String()),
		)
		switch ordering {
		case model.OrderingLess:
			g.println(MsgTooSmall)
			g.state = model.StatePrompting
		case model.OrderingGreater:
			g.println(MsgTooBig)
			g.state = model.StatePrompting
		case model.OrderingEqual:
			g.println(MsgWin)
			g.state = model.StateTerminated
			g.logger.Info("game won",
				slog.Int("attempts", g.attempts),
				slog.Duration("elapsed", clock.Since(g.clock, g.startedAt)),
			)
		}

	case model.StateTerminated:
		return g.err
	}

	return nil
}

// RunOnce prints the banner and prompt, reads a single guess and echoes it
// back without comparing it to anything
func (g *Game) RunOnce() error {
	g.println(MsgWelcome)
	g.println(MsgPrompt)

	line, err := g.readLine()
	if err != nil {
		g.err = err
		g.state = model.StateTerminated
		g.logger.Error("could not read guess", slog.String("error", err.Error()))
		return err
	}

	g.printf("You guessed: %s\n", strings.TrimSpace(line))
	g.state = model.StateTerminated
	return nil
}

// readLine reads one line including its terminator. A final line without a
// terminator is returned as-is; end of input with nothing read is an error,
// as is a line that is not valid UTF-8.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", model.ErrInputRead, err)
	}
	if !utf8.ValidString(line) {
		return "", fmt.Errorf("%w: invalid UTF-8", model.ErrInputRead)
	}
	return line, nil
}

func (g *Game) println(msg string) {
	_, _ = fmt.Fprintln(g.out, msg)
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}
