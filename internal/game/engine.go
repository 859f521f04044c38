// internal/game/engine.go
//
// Evaluator for a single game session.
// Responsibilities:
//   - Create new games with a configurable row count (default 6).
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses using the classic two-pass algorithm.
//   - Track state transitions: playing → won/lost.
//
// The grid never calls into this package; the owner application does, and
// hands the resulting history to the grid as read-only props.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordgrid/internal/words"
)

const DefaultRows = 6

var (
	ErrFinished      = errors.New("game finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
	ErrInvalidAnswer = errors.New("invalid answer")
)

// CheckAnswer reports whether answer can be played against the word lists:
// words.WordLength letters a–z, any case.
func CheckAnswer(answer string) error {
	a := strings.ToLower(answer)
	if len(a) != words.WordLength || !isAlpha(a) {
		return fmt.Errorf("%w: want %d letters a-z, got %q", ErrInvalidAnswer, words.WordLength, answer)
	}
	return nil
}

// New constructs a new game instance.
// If answer is empty, a random answer is chosen from the words package.
// rows <= 0 falls back to DefaultRows.
func New(answer string, rows int) *Game {
	if answer == "" {
		answer = words.RandomAnswer()
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	answer = strings.ToLower(answer)
	return &Game{
		ID:      uuid.NewString(),
		Answer:  answer,
		Rows:    rows,
		Cols:    len([]rune(answer)),
		Results: []*GuessResult{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters and alphabetic a–z.
//   - Guess must be present in the allowed list.
//
// State transitions:
//   - If all tiles are correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (*GuessResult, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), fmt.Errorf("%w: want %d letters a-z, got %q", ErrInvalidGuess, g.Cols, guess)
	}
	if !words.IsAllowed(guess) {
		return nil, g.State(), fmt.Errorf("%w: %q", ErrNotInWordList, guess)
	}

	res := &GuessResult{Word: guess, Statuses: Score(g.Answer, guess)}
	g.Results = append(g.Results, res)

	if allCorrect(res.Statuses) {
		g.Finished, g.Won = true, true
	} else if len(g.Results) >= g.Rows {
		g.Finished = true
	}
	return res, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// History returns a copy of the scored guesses in attempt order.
func (g *Game) History() []*GuessResult {
	out := make([]*GuessResult, len(g.Results))
	copy(out, g.Results)
	return out
}

// Score implements the standard two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) answer letters.
//
// Pass 2:
//   - For each remaining guess letter: if there is a count left for that letter,
//     mark present and decrement; otherwise mark absent.
//
// This handles repeated letters in both answer and guess. Inputs of different
// length are scored up to the shorter one.
func Score(answer, guess string) []Status {
	answerRunes := []rune(answer)
	guessRunes := []rune(guess)
	n := len(guessRunes)
	if len(answerRunes) < n {
		n = len(answerRunes)
	}
	res := make([]Status, n)

	counts := make(map[rune]int, n)
	for i := 0; i < n; i++ {
		if guessRunes[i] == answerRunes[i] {
			res[i] = StatusCorrect
		} else {
			counts[answerRunes[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == StatusCorrect {
			continue
		}
		if c := guessRunes[i]; counts[c] > 0 {
			res[i] = StatusPresent
			counts[c]--
		} else {
			res[i] = StatusAbsent
		}
	}
	return res
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func allCorrect(s []Status) bool {
	for _, x := range s {
		if x != StatusCorrect {
			return false
		}
	}
	return true
}
