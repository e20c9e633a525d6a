// internal/words/words.go
//
// Provides the word list for the game engine.
//
// Responsibilities:
//   - Decode the embedded word list (assets/words.json) once.
//   - Normalize entries to uppercase and drop anything non-alphabetic.
//   - Supply a random word for a new round, or a word by index for daily play.
//
// Word list format:
//   {"word_list": ["abruptly", "absurd", ...]}
//
// Constraints:
//   • Words are A–Z only, any length ≥ 1.
//   • An unreadable or empty list is reported as ErrSourceUnavailable;
//     callers treat it as a failure to start a round.

package words

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/robalobadob/hangman/assets"
)

// ErrSourceUnavailable is returned when no word can be supplied.
var ErrSourceUnavailable = errors.New("words: word source unavailable")

// List is an immutable, normalized word list.
type List struct {
	words []string
}

type document struct {
	WordList []string `json:"word_list"`
}

var (
	defaultOnce sync.Once
	defaultList *List
	defaultErr  error
)

// Default returns the embedded word list, decoding it on first use.
func Default() (*List, error) {
	defaultOnce.Do(func() {
		data, err := assets.WordList()
		if err != nil {
			defaultErr = fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
			return
		}
		defaultList, defaultErr = Parse(data)
	})
	return defaultList, defaultErr
}

// Parse decodes a word list document. Entries are trimmed and uppercased;
// entries that are empty or contain anything but letters are skipped.
func Parse(data []byte) (*List, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode word list: %v", ErrSourceUnavailable, err)
	}
	out := make([]string, 0, len(doc.WordList))
	for _, raw := range doc.WordList {
		w := strings.TrimSpace(raw)
		if w != "" && isLetters(w) {
			out = append(out, strings.ToUpper(w))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: word list is empty", ErrSourceUnavailable)
	}
	return &List{words: out}, nil
}

// Len returns the number of usable words.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() (string, error) {
	if l.Len() == 0 {
		return "", ErrSourceUnavailable
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return l.words[n.Int64()], nil
}

// At returns the word at index i, wrapping around the list length.
func (l *List) At(i int) (string, error) {
	n := l.Len()
	if n == 0 {
		return "", ErrSourceUnavailable
	}
	i %= n
	if i < 0 {
		i += n
	}
	return l.words[i], nil
}

// isLetters reports whether s is all ASCII letters. It runs before case
// folding, since strings.ToUpper maps some non-ASCII letters into A–Z.
func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
