// internal/play/model.go
//
// Owner application for the guess grid.
// Responsibilities:
//   - Hold the current game and keep every game started this session in the store.
//   - Pass the game's history to the grid as props on every change.
//   - Receive submitted words from the grid, score them through the game
//     evaluator, and report rejections on the status line.
//
// With Options.Daily every game of the day gets the same date-derived answer.
//
// Keys: ctrl+n starts a new game, ctrl+c / esc quits. Everything else goes to the grid.
package play

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/daily"
	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/grid"
	"github.com/robalobadob/wordgrid/internal/store"
	"github.com/robalobadob/wordgrid/internal/theme"
	"github.com/robalobadob/wordgrid/internal/words"
)

const suggestionCount = 3

// Options configure a play session.
type Options struct {
	Store  store.Store
	Theme  theme.Theme
	Answer string // fixed answer for every game; random when empty
	Rows   int    // guesses per game; game.DefaultRows when <= 0

	// Daily picks the answer from today's date and Salt instead of at random.
	// Answer wins when both are set.
	Daily bool
	Salt  string
	Now   func() time.Time // clock for Daily; time.Now when nil
}

// validate rejects options no game could be played with.
func (o Options) validate() error {
	if o.Answer != "" {
		return game.CheckAnswer(o.Answer)
	}
	return nil
}

type Model struct {
	opts   Options
	store  store.Store
	game   *game.Game
	grid   *grid.Grid
	status string
	width  int

	// pending holds commands produced inside the grid's outbound handler,
	// which cannot return them itself; Update hands them to the program.
	pending []tea.Cmd

	title, statusLine, help lipgloss.Style
}

func New(opts Options) *Model {
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	m := &Model{
		opts:       opts,
		store:      opts.Store,
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(opts.Theme.Correct)).Padding(0, 1),
		statusLine: lipgloss.NewStyle().Padding(0, 1),
		help:       lipgloss.NewStyle().Faint(true).Padding(0, 1),
	}
	m.pending = append(m.pending, m.newGame())
	return m
}

func (m *Model) Game() *game.Game { return m.game }
func (m *Model) Grid() *grid.Grid { return m.grid }
func (m *Model) Status() string   { return m.status }

func (m *Model) props() grid.Props {
	return grid.Props{
		PastGuesses:         m.game.History(),
		Width:               m.game.Cols,
		OnGuessedWordChange: m.onGuessedWord,
	}
}

func (m *Model) answer() string {
	if m.opts.Answer != "" || !m.opts.Daily {
		return m.opts.Answer
	}
	now := time.Now
	if m.opts.Now != nil {
		now = m.opts.Now
	}
	a, err := daily.Answer(now(), m.opts.Salt, words.Answers())
	if err != nil {
		log.Warn().Err(err).Msg("daily answer unavailable, picking at random")
		return ""
	}
	log.Info().Str("date", daily.DateKey(now())).Msg("daily game")
	return a
}

// newGame replaces the current game. The grid is reset rather than re-propped
// so text typed for the old game does not show up in the new one.
func (m *Model) newGame() tea.Cmd {
	m.game = game.New(m.answer(), m.opts.Rows)
	if err := m.store.Save(context.Background(), m.game); err != nil {
		log.Error().Err(err).Str("gameId", m.game.ID).Msg("save game")
	}
	var cmd tea.Cmd
	if m.grid == nil {
		m.grid = grid.New(m.props(), m.opts.Theme)
	} else {
		cmd = m.grid.Reset(m.props())
	}
	m.status = fmt.Sprintf("Guess the %d-letter word.", m.game.Cols)
	log.Info().Str("gameId", m.game.ID).Int("rows", m.game.Rows).Msg("new game")
	return cmd
}

// onGuessedWord is the grid's outbound handler.
func (m *Model) onGuessedWord(word string) {
	res, state, err := m.game.ApplyGuess(word)
	if err != nil {
		log.Info().Err(err).Str("gameId", m.game.ID).Str("word", word).Msg("guess rejected")
		m.status = rejection(err, word, m.game.Cols)
		return
	}
	if err := m.store.Save(context.Background(), m.game); err != nil {
		log.Error().Err(err).Str("gameId", m.game.ID).Msg("save game")
	}
	log.Debug().Str("gameId", m.game.ID).Str("word", res.Word).Str("state", string(state)).Msg("guess applied")

	m.pending = append(m.pending, m.grid.SetProps(m.props()))

	switch state {
	case game.StateWon:
		m.status = fmt.Sprintf("Solved in %d/%d. ctrl+n for another.", len(m.game.Results), m.game.Rows)
	case game.StateLost:
		m.status = fmt.Sprintf("The word was %s. ctrl+n for another.", strings.ToUpper(m.game.Answer))
	default:
		m.status = fmt.Sprintf("%d guesses left.", m.game.Rows-len(m.game.Results))
	}
}

func rejection(err error, word string, cols int) string {
	switch {
	case errors.Is(err, game.ErrFinished):
		return "Game over. ctrl+n starts a new one."
	case errors.Is(err, game.ErrNotInWordList):
		msg := fmt.Sprintf("%s is not in the word list.", strings.ToUpper(strings.TrimSpace(word)))
		if s := words.Suggest(word, suggestionCount); len(s) > 0 {
			msg += " Try: " + strings.Join(s, ", ")
		}
		return msg
	case errors.Is(err, game.ErrInvalidGuess):
		return fmt.Sprintf("Use exactly %d letters a-z.", cols)
	}
	return err.Error()
}

func (m *Model) Init() tea.Cmd { return m.flush() }

func (m *Model) flush() tea.Cmd {
	cmd := tea.Batch(m.pending...)
	m.pending = nil
	return cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+n":
			return m, tea.Batch(m.newGame(), m.flush())
		}
	}
	cmd := m.grid.Update(msg)
	return m, tea.Batch(cmd, m.flush())
}

func (m *Model) View() string {
	status := m.status
	if played, won, err := m.store.Tally(context.Background()); err == nil && played > 0 {
		status = fmt.Sprintf("%s  [%d/%d won]", status, won, played)
	}
	if m.width > 2 {
		status = runewidth.Truncate(status, m.width-2, "…")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.title.Render("wordgrid"),
		m.grid.View(),
		m.statusLine.Render(status),
		m.help.Render("enter submit • ctrl+n new game • esc quit"),
	)
}
