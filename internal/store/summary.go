package store

import "github.com/robalobadob/hangman/internal/game"

// Summary totals a session.
type Summary struct {
	Played int
	Won    int
	Lost   int
}

// Summarize counts wins and losses.
func Summarize(rounds []Round) Summary {
	var s Summary
	for _, r := range rounds {
		s.Played++
		switch r.Outcome {
		case game.OutcomeWin:
			s.Won++
		case game.OutcomeLoss:
			s.Lost++
		}
	}
	return s
}
