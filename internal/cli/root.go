package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/guessgame/internal/services/game"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "guessgame",
		Short: "Guess the secret number between 1 and 100",
		Long: `guessgame picks a secret number between 1 and 100 and asks for guesses
on standard input, one per line, until the secret is found.

Each guess is answered with "Too small!" or "Too big!". Lines that are not
a whole number are ignored.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newGame(cmd).Run()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newOnceCmd())

	return rootCmd
}

// newGame creates a game wired to the command's streams
func newGame(cmd *cobra.Command) *game.Game {
	return game.New(game.Config{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Logger: cfg.NewLogger(cmd.ErrOrStderr()),
	})
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
