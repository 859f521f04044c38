package play

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/grid"
	"github.com/robalobadob/wordgrid/internal/theme"
)

// Result is what is left of a session once the program exits.
type Result struct {
	GameID string
	State  game.State
	Played int
	Won    int
}

// Run wraps the Bubble Tea entry point and returns the final session result.
func Run(opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	program := tea.NewProgram(New(opts), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	res := Result{GameID: m.game.ID, State: m.game.State()}
	res.Played, res.Won, err = m.store.Tally(context.Background())
	return res, err
}

// Render scores guesses against answer and returns the grid as it would
// appear after them, without starting a program.
func Render(answer string, guesses []string, rows int, t theme.Theme) (string, error) {
	if answer == "" {
		return "", errors.New("render: answer is required")
	}
	if err := game.CheckAnswer(answer); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	g := game.New(answer, rows)
	for _, w := range guesses {
		if _, _, err := g.ApplyGuess(w); err != nil {
			return "", fmt.Errorf("render guess %q: %w", w, err)
		}
	}
	return grid.New(grid.Props{PastGuesses: g.History(), Width: g.Cols}, t).View(), nil
}
