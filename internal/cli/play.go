package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

type playOptions struct {
	daily    bool
	noReplay bool
}

// loadWords is swapped in tests.
var loadWords console.Loader = words.Default

func newPlayCmd() *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Hangman in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.daily, "daily", false, "play the word of the day")
	cmd.Flags().BoolVar(&opts.noReplay, "no-replay", false, "play a single round")
	return cmd
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	pick := console.RandomWord(loadWords)
	if opts.daily {
		pick = console.DailyWord(loadWords, cfg.DailySalt, time.Now)
	}

	out := cmd.OutOrStdout()
	r := console.NewRenderer(out, cfg.Color && isTerminal(out))
	replay := cfg.Replay && !opts.noReplay && !opts.daily

	s := console.NewSession(cmd.InOrStdin(), r, pick, store.NewMemoryStore(), replay)
	return s.Run(cmd.Context())
}
