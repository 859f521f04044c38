package grid

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/theme"
)

func TestLineCellsFromGuess(t *testing.T) {
	l := newLine(newStyles(theme.Default()))
	l.SetProps(LineProps{Guess: guess("slate"), Width: 5})

	cells := l.Cells()
	assert.Equal(t, Cell{Letter: 's', Status: game.StatusAbsent}, cells[0])
	assert.Equal(t, Cell{Letter: 'a', Status: game.StatusCorrect}, cells[2])
	assert.Equal(t, Cell{Letter: 'e', Status: game.StatusCorrect}, cells[4])
}

func TestLineCellsPadShortGuess(t *testing.T) {
	l := newLine(newStyles(theme.Default()))
	l.SetProps(LineProps{Guess: &game.GuessResult{Word: "ab"}, Width: 4})

	assert.Equal(t, []Cell{{Letter: 'a'}, {Letter: 'b'}, {}, {}}, l.Cells())
}

func TestLineTypingMovesCursor(t *testing.T) {
	l := newLine(newStyles(theme.Default()))
	l.SetProps(LineProps{Editable: true, Width: 3})

	assert.True(t, l.Cells()[0].Cursor)
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	cells := l.Cells()
	assert.Equal(t, 'a', cells[0].Letter)
	assert.True(t, cells[1].Cursor)

	l.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", l.Value())
}

func TestNonEditableLineIgnoresInput(t *testing.T) {
	l := newLine(newStyles(theme.Default()))
	l.SetProps(LineProps{Width: 5})

	assert.Nil(t, l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}))
	assert.Equal(t, "", l.Value())
	assert.Equal(t, make([]Cell, 5), l.Cells())
}

func TestLineLosesTextWhenNoLongerEditable(t *testing.T) {
	l := newLine(newStyles(theme.Default()))
	l.SetProps(LineProps{Editable: true, Width: 5})
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gho")})

	l.SetProps(LineProps{Guess: guess("ghost"), Width: 5})
	assert.Equal(t, "", l.Value())

	l.SetProps(LineProps{Editable: true, Width: 5})
	assert.Equal(t, "", l.Value())
}
