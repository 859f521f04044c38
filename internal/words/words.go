// internal/words/words.go
//
// Dictionary collaborator for the game evaluator.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply Answers, RandomAnswer, IsAllowed, IsAnswer, Stats and Suggest.
//
// Initialization behavior (Init):
//   WORDS_ALLOWED_FILE drives the choice. Unset means the embedded
//   default_small_*.txt lists. Set alone, it supplies both answers and
//   guesses; WORDS_ANSWERS_FILE then narrows the answers.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase; lines starting with '#' are ignored.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

const WordLength = 5

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

var (
	initOnce   sync.Once
	answers    []string            // canonical answers
	allowed    []string            // sorted answers ∪ guesses, for suggestions
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
	initialErr error
)

var ErrEmptyAnswers = errors.New("words: answers list is empty")

// Init loads word lists exactly once.
// Returns an error if a configured file cannot be read or the answers list ends up empty.
func Init() error {
	initOnce.Do(func() {
		ans, extra, err := loadLists(os.Getenv("WORDS_ANSWERS_FILE"), os.Getenv("WORDS_ALLOWED_FILE"))
		if err != nil {
			initialErr = err
			return
		}
		index(ans, extra)
		if len(answers) == 0 {
			initialErr = ErrEmptyAnswers
		}
	})
	return initialErr
}

// loadLists picks the word sources: both files, the allowed file doubling
// as answers, or the embedded defaults when no allowed file is set.
func loadLists(answersPath, allowedPath string) (ans, extra []string, err error) {
	if allowedPath == "" {
		return normalizeLines(embeddedAnswers), normalizeLines(embeddedAllowed), nil
	}
	if extra, err = readWordFile(allowedPath); err != nil {
		return nil, nil, err
	}
	if answersPath == "" {
		return extra, nil, nil
	}
	if ans, err = readWordFile(answersPath); err != nil {
		return nil, nil, err
	}
	return ans, extra, nil
}

// index fills the package lookups; every answer is also a valid guess.
func index(ans, extra []string) {
	answers = ans
	answersSet = toSet(ans)
	allowedSet = toSet(ans)
	for _, w := range extra {
		allowedSet[w] = struct{}{}
	}
	allowed = make([]string, 0, len(allowedSet))
	for w := range allowedSet {
		allowed = append(allowed, w)
	}
	sort.Strings(allowed)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalize(line); ok {
			out = append(out, w)
		}
	}
	return out
}

func normalize(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if strings.HasPrefix(w, "#") || len(w) != WordLength || !isAlpha(w) {
		return "", false
	}
	return w, true
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random answer from the answers list.
// If answers are not loaded yet or empty, falls back to "crane".
func RandomAnswer() string {
	if len(answers) == 0 {
		return "crane"
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	if err != nil {
		return answers[0]
	}
	return answers[nBig.Int64()]
}

// Answers returns a copy of the answer list in file order.
func Answers() []string {
	out := make([]string, len(answers))
	copy(out, answers)
	return out
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowedSet)
}

// Suggest returns up to n allowed words closest to w, best match first.
// Matching is fuzzy on the lowercase word; an empty result means nothing resembles it.
func Suggest(w string, n int) []string {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" || n <= 0 {
		return nil
	}
	matches := fuzzy.Find(w, allowed)
	if len(matches) == 0 {
		// Fuzzy needs every rune in order; fall back to shared prefix.
		for _, cand := range allowed {
			if len(matches) >= n {
				break
			}
			if strings.HasPrefix(cand, w[:1]) {
				matches = append(matches, fuzzy.Match{Str: cand})
			}
		}
	}
	out := make([]string, 0, n)
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
