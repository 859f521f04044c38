// internal/game/types.go
//
// Core type definitions for the word game evaluator.
// Defines:
//   - Status: per-letter result of a guess (correct/present/absent).
//   - GuessResult: one scored guess, as consumed by the grid.
//   - Game: state for a single in-progress or finished game.

package game

// Status represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this position.
//   - "present": letter exists in the answer but at a different position.
//   - "absent":  letter does not exist in the answer (or all copies are used up).
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// GuessResult is one submitted guess plus its per-letter classification.
// Statuses[i] describes the i-th rune of Word. Values are never mutated after scoring.
type GuessResult struct {
	Word     string   `json:"word"`
	Statuses []Status `json:"statuses"`
}

// Letters returns the guessed word split into runes.
func (r *GuessResult) Letters() []rune {
	if r == nil {
		return nil
	}
	return []rune(r.Word)
}

// StatusAt returns the status of letter i, or "" when unscored.
func (r *GuessResult) StatusAt(i int) Status {
	if r == nil || i < 0 || i >= len(r.Statuses) {
		return ""
	}
	return r.Statuses[i]
}

// Game holds the state of a single game session.
type Game struct {
	ID       string         // Unique game identifier (uuid).
	Answer   string         // The solution word (always lowercase).
	Rows     int            // Maximum number of guesses allowed (typically 6).
	Cols     int            // Number of letters per word, len(Answer).
	Results  []*GuessResult // Scored guesses in attempt order.
	Finished bool           // True once the game is over (won or lost).
	Won      bool           // True if the game was finished with a win.
}
