package grid

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordgrid/internal/game"
)

// LineProps binds one row of the grid.
type LineProps struct {
	Editable bool
	Guess    *game.GuessResult
	Width    int
	// OnChange is set only on the editable row. It turns a full-width word
	// into the command that reports it to the grid.
	OnChange func(word string) tea.Cmd
}

// Cell is one rendered letter slot.
type Cell struct {
	Letter rune        // 0 when empty
	Status game.Status // "" when unscored
	Cursor bool
}

// Line renders Width letter cells. While editable it owns a text input
// whose value fills the cells left to right.
type Line struct {
	props  LineProps
	styles styles
	input  textinput.Model
	active bool
}

func newLine(st styles) *Line {
	return &Line{styles: st}
}

func (l *Line) Props() LineProps { return l.props }

// SetProps rebinds the line. Typed text survives when the line stays
// editable at the same width.
func (l *Line) SetProps(p LineProps) tea.Cmd {
	prev := l.props
	l.props = p
	if !p.Editable {
		l.active = false
		l.input = textinput.Model{}
		return nil
	}
	if l.active && prev.Width == p.Width {
		return nil
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.CharLimit = p.Width
	ti.Cursor.SetMode(cursor.CursorHide)
	l.input = ti
	l.active = true
	return l.input.Focus()
}

// Value is the text typed into the editable line so far.
func (l *Line) Value() string {
	if !l.active {
		return ""
	}
	return l.input.Value()
}

func (l *Line) Update(msg tea.Msg) tea.Cmd {
	if !l.active || l.props.Width <= 0 {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		word := l.input.Value()
		if l.props.OnChange == nil || utf8.RuneCountInString(word) != l.props.Width {
			return nil
		}
		return l.props.OnChange(word)
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return cmd
}

// Cells lays out exactly Width cells for the current props.
func (l *Line) Cells() []Cell {
	n := l.props.Width
	if n < 0 {
		n = 0
	}
	cells := make([]Cell, n)
	switch {
	case l.props.Guess != nil:
		letters := l.props.Guess.Letters()
		for i := range cells {
			if i < len(letters) {
				cells[i].Letter = letters[i]
			}
			cells[i].Status = l.props.Guess.StatusAt(i)
		}
	case l.active:
		typed := []rune(l.input.Value())
		for i := range cells {
			if i < len(typed) {
				cells[i].Letter = typed[i]
			}
		}
		if pos := l.input.Position(); pos < n {
			cells[pos].Cursor = true
		}
	}
	return cells
}

func (l *Line) View() string {
	cells := l.Cells()
	rendered := make([]string, len(cells))
	for i, c := range cells {
		letter := " "
		if c.Letter != 0 {
			letter = strings.ToUpper(string(c.Letter))
		}
		rendered[i] = l.styles.forCell(c).Render(letter)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
