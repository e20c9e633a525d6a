package console

import (
	"context"
	"time"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/words"
)

// Picker supplies the secret word for a new round.
type Picker func(ctx context.Context) (string, error)

// Loader returns the word list, e.g. words.Default.
type Loader func() (*words.List, error)

// RandomWord picks a random word from the list for every round.
func RandomWord(load Loader) Picker {
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		l, err := load()
		if err != nil {
			return "", err
		}
		return l.Random()
	}
}

// DailyWord picks the word of the current UTC day.
func DailyWord(load Loader, salt string, now func() time.Time) Picker {
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		l, err := load()
		if err != nil {
			return "", err
		}
		return daily.Word(l, now(), salt)
	}
}
