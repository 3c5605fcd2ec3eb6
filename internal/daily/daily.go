// Package daily picks the word of the day.
//
// The answer for a date is HMAC-SHA256(salt, YYYY-MM-DD) reduced modulo the
// corpus size, so every player using the same salt and word list gets the
// same word on the same UTC date, and the salt keeps it unguessable.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// Key returns the UTC calendar date of t as YYYY-MM-DD.
func Key(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// Word returns the word of the day for t.
func Word(c *words.Corpus, salt string, t time.Time) string {
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, Key(t))
	n := binary.BigEndian.Uint64(mac.Sum(nil))
	return c.At(int(n % uint64(c.Len())))
}

// Picker selects the word of the day for the game.
type Picker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// Pick implements game.Picker.
func (p Picker) Pick(c *words.Corpus) string {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return Word(c, p.Salt, now())
}
