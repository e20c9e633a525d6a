// Package daily picks the word of the day from the fixed word list.
//
// Every player gets the same word on the same UTC date. The word is chosen
// by keying HMAC-SHA256 with a salt over the date, so the sequence cannot
// be read off the list order without the salt.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/hangman/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Word returns the word of the day for date from list.
func Word(list *words.List, date time.Time, salt string) (string, error) {
	return list.At(index(date, salt, list.Len()))
}

// index maps the date onto 0..n-1; 0 for an empty list.
func index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	v := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(v % uint64(n))
}
