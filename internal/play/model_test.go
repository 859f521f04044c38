package play

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgrid/internal/daily"
	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/grid"
	"github.com/robalobadob/wordgrid/internal/theme"
	"github.com/robalobadob/wordgrid/internal/words"
)

func newTestModel(t *testing.T, rows int) *Model {
	t.Helper()
	require.NoError(t, words.Init())
	return New(Options{Theme: theme.Default(), Answer: "crane", Rows: rows})
}

// submit types word into the editable row, presses enter and feeds the
// resulting messages back through the model like the program loop would.
func submit(m *Model, word string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				m.Update(c())
			}
		}
		return
	}
	m.Update(msg)
}

func TestValidGuessAdvancesTheGrid(t *testing.T) {
	m := newTestModel(t, 6)
	assert.Equal(t, []int{0}, m.Grid().EditableRows())

	submit(m, "slate")

	require.Len(t, m.Game().Results, 1)
	assert.Equal(t, "slate", m.Game().Results[0].Word)
	assert.Equal(t, []int{1}, m.Grid().EditableRows())
	assert.Same(t, m.Game().Results[0], m.Grid().Plans()[0].Guess)
	assert.Equal(t, "5 guesses left.", m.Status())
}

func TestRejectedGuessLeavesHistoryAlone(t *testing.T) {
	m := newTestModel(t, 6)

	submit(m, "crank")
	require.Len(t, m.Game().Results, 1)

	submit(m, "cranx")

	assert.Len(t, m.Game().Results, 1)
	assert.Equal(t, []int{1}, m.Grid().EditableRows())
	assert.Contains(t, m.Status(), "CRANX is not in the word list")
	assert.Contains(t, m.Status(), "Try:")
	assert.Equal(t, "cranx", m.Grid().Lines()[1].Value(), "rejected text stays editable")
}

func TestWinAndNewGame(t *testing.T) {
	m := newTestModel(t, 6)
	first := m.Game().ID

	submit(m, "crane")
	assert.Equal(t, game.StateWon, m.Game().State())
	assert.Contains(t, m.Status(), "Solved in 1/6")
	assert.Contains(t, m.View(), "[1/1 won]")

	submit(m, "slate")
	assert.Contains(t, m.Status(), "Game over")
	assert.Len(t, m.Game().Results, 1)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.NotEqual(t, first, m.Game().ID)
	assert.Empty(t, m.Game().Results)
	assert.Equal(t, []int{0}, m.Grid().EditableRows())
	require.Len(t, m.Grid().Lines(), 1)
}

func TestLossRevealsAnswer(t *testing.T) {
	m := newTestModel(t, 2)
	submit(m, "slate")
	submit(m, "ghost")

	assert.Equal(t, game.StateLost, m.Game().State())
	assert.Contains(t, m.Status(), "The word was CRANE")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, 6)
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestViewTruncatesStatusToWidth(t *testing.T) {
	m := newTestModel(t, 6)
	m.Update(tea.WindowSizeMsg{Width: 12, Height: 40})
	m.status = strings.Repeat("x", 40)

	view := m.View()
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, strings.Repeat("x", 11))
}

func TestRender(t *testing.T) {
	require.NoError(t, words.Init())

	out, err := Render("crane", []string{"slate", "ghost"}, 6, theme.Default())
	require.NoError(t, err)
	for _, r := range "SLATEGHOST" {
		assert.Contains(t, out, string(r))
	}

	_, err = Render("crane", []string{"zzzzz"}, 6, theme.Default())
	assert.ErrorIs(t, err, game.ErrNotInWordList)

	_, err = Render("", nil, 6, theme.Default())
	assert.Error(t, err)
}

func TestGridHandlerIsTheModel(t *testing.T) {
	m := newTestModel(t, 6)
	var p grid.Props = m.Grid().Props()
	require.NotNil(t, p.OnGuessedWordChange)

	p.OnGuessedWordChange("slate")
	assert.Len(t, m.Game().Results, 1)
}

func TestNewGameDropsTypedText(t *testing.T) {
	m := newTestModel(t, 6)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cra")})
	require.Equal(t, "cra", m.Grid().Lines()[0].Value())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	assert.Equal(t, "", m.Grid().Lines()[0].Value())
}

func TestGridCommandsReachTheProgram(t *testing.T) {
	m := newTestModel(t, 6)
	m.Init()
	assert.Empty(t, m.pending)

	submit(m, "slate")
	assert.Empty(t, m.pending, "commands from the word handler are returned by Update")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Empty(t, m.pending)
}

func TestInvalidGuessNamesTheLength(t *testing.T) {
	m := newTestModel(t, 6)
	submit(m, "cr4ne")

	assert.Empty(t, m.Game().Results)
	assert.Equal(t, "Use exactly 5 letters a-z.", m.Status())
}

func TestDailyAnswerIsStableForTheDay(t *testing.T) {
	require.NoError(t, words.Init())
	day := time.Date(2024, 3, 9, 15, 4, 0, 0, time.UTC)
	want, err := daily.Answer(day, "test_salt", words.Answers())
	require.NoError(t, err)

	m := New(Options{Theme: theme.Default(), Daily: true, Salt: "test_salt", Now: func() time.Time { return day }})
	assert.Equal(t, want, m.Game().Answer)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, want, m.Game().Answer, "every game of the day shares the answer")

	fixed := New(Options{Theme: theme.Default(), Answer: "crane", Daily: true, Salt: "test_salt", Now: func() time.Time { return day }})
	assert.Equal(t, "crane", fixed.Game().Answer)
}

func TestBadAnswerIsRejectedUpFront(t *testing.T) {
	require.NoError(t, words.Init())

	_, err := Render("abcd", nil, 6, theme.Default())
	assert.ErrorIs(t, err, game.ErrInvalidAnswer)

	_, err = Render("cr4ne", nil, 6, theme.Default())
	assert.ErrorIs(t, err, game.ErrInvalidAnswer)

	_, err = Run(Options{Theme: theme.Default(), Answer: "toolong"})
	assert.ErrorIs(t, err, game.ErrInvalidAnswer)
}
