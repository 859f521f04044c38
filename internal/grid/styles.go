package grid

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/theme"
)

const cellWidth = 3

type styles struct {
	table                    lipgloss.Style
	empty, typed, cursor     lipgloss.Style
	correct, present, absent lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(t.Text)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.Border))

	return styles{
		table: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Padding(0, 1),
		empty:   cell,
		typed:   cell.BorderForeground(lipgloss.Color(t.Text)),
		cursor:  cell.BorderForeground(lipgloss.Color(t.Cursor)).Underline(true),
		correct: cell.Background(lipgloss.Color(t.Correct)).BorderForeground(lipgloss.Color(t.Correct)),
		// Present letters get the rounded border so they stay distinguishable without color.
		present: cell.Background(lipgloss.Color(t.Present)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Present)),
		absent: cell.Background(lipgloss.Color(t.Absent)).BorderForeground(lipgloss.Color(t.Absent)),
	}
}

func (s styles) forCell(c Cell) lipgloss.Style {
	switch c.Status {
	case game.StatusCorrect:
		return s.correct
	case game.StatusPresent:
		return s.present
	case game.StatusAbsent:
		return s.absent
	}
	switch {
	case c.Cursor:
		return s.cursor
	case c.Letter != 0:
		return s.typed
	}
	return s.empty
}
