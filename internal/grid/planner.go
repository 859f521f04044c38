// internal/grid/planner.go
//
// Row planning for the guess grid.
//
// The grid always shows one row per past guess plus one blank row for the
// next entry. The editable row is the first row without a guess whose
// predecessor has one (or row 0), so progression is strictly sequential.
//
// Precondition: the history is contiguous, i.e. once an entry is nil every
// later entry is nil too. Plan does not enforce this. With a gap it still
// returns a deterministic plan, but more than one row can come out editable:
//
//	[G0, nil, G2] → rows 1 and 3 editable
//	[nil, G1]     → rows 0 and 2 editable
//
// CheckContiguous reports such a gap for diagnostics.
package grid

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordgrid/internal/game"
)

// ErrGap is returned by CheckContiguous for a guess that follows an absent one.
var ErrGap = errors.New("guess history has a gap")

// RowPlan is the per-row rendering instruction for one render pass.
type RowPlan struct {
	Index    int
	Guess    *game.GuessResult // nil when no guess exists at this row
	Editable bool
}

// TotalRows is the number of rows displayed for a history.
func TotalRows(history []*game.GuessResult) int {
	return len(history) + 1
}

// Plan derives the row plans for totalRows rows. It is pure and total:
// negative totalRows yields an empty plan, and rows beyond the history are blank.
func Plan(history []*game.GuessResult, totalRows int) []RowPlan {
	if totalRows < 0 {
		totalRows = 0
	}
	plans := make([]RowPlan, totalRows)
	for i := range plans {
		guess := at(history, i)
		plans[i] = RowPlan{
			Index:    i,
			Guess:    guess,
			Editable: guess == nil && (i == 0 || at(history, i-1) != nil),
		}
	}
	return plans
}

// CheckContiguous returns ErrGap, wrapped with the offending index, when a
// non-nil guess follows a nil one.
func CheckContiguous(history []*game.GuessResult) error {
	gap := -1
	for i, g := range history {
		switch {
		case g == nil && gap < 0:
			gap = i
		case g != nil && gap >= 0:
			return fmt.Errorf("%w: row %d is empty but row %d has a guess", ErrGap, gap, i)
		}
	}
	return nil
}

func at(history []*game.GuessResult, i int) *game.GuessResult {
	if i < 0 || i >= len(history) {
		return nil
	}
	return history[i]
}
