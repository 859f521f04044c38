// internal/daily/daily.go
//
// Daily answer selection.
// Everyone playing on the same UTC date with the same salt gets the same
// answer: the index is HMAC-SHA256(salt, "YYYY-MM-DD") reduced modulo the
// answer count. Nothing is stored; the date alone decides.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"
)

var ErrNoAnswers = errors.New("daily: answer list is empty")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, answersLen) for the date of t.
func WordIndex(t time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answer picks the answer for the date of t from answers.
func Answer(t time.Time, salt string, answers []string) (string, error) {
	if len(answers) == 0 {
		return "", ErrNoAnswers
	}
	return answers[WordIndex(t, salt, len(answers))], nil
}
