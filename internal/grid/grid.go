// internal/grid/grid.go
//
// Guess grid component.
// Responsibilities:
//   - Re-plan rows on every SetProps (props always count as changed).
//   - Bind one Line per row; only the editable row gets a change handler.
//   - Route key input to the editable row and relay its completed word to the owner.
//
// Data flows down (props → rows → cells) and the only signal flowing up is
// WordChangedMsg, which the grid hands to OnGuessedWordChange unchanged.
// The grid never mutates the history it is given; the owner answers a
// submitted word by calling SetProps with the new history.
package grid

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/theme"
)

// Props is everything the owner supplies on each render.
type Props struct {
	PastGuesses         []*game.GuessResult
	Width               int // letters per row, same for every row
	OnGuessedWordChange WordHandler
}

type Grid struct {
	props  Props
	styles styles
	plans  []RowPlan
	lines  []*Line
	relay  Relay
}

// New builds a grid with an explicit theme and plans it for props.
func New(props Props, t theme.Theme) *Grid {
	g := &Grid{styles: newStyles(t)}
	g.SetProps(props)
	return g
}

// SetProps replaces the props and re-derives every row. Lines are reused
// by index so the editable row keeps its typed text across identical props.
func (g *Grid) SetProps(p Props) tea.Cmd {
	g.props = p
	g.relay = Relay{OnWord: p.OnGuessedWordChange}

	if err := CheckContiguous(p.PastGuesses); err != nil {
		log.Debug().Err(err).Int("rows", TotalRows(p.PastGuesses)).Msg("planning grid over non-contiguous history")
	}
	g.plans = Plan(p.PastGuesses, TotalRows(p.PastGuesses))

	lines := make([]*Line, len(g.plans))
	cmds := make([]tea.Cmd, 0, len(g.plans))
	for i, plan := range g.plans {
		lp := LineProps{Editable: plan.Editable, Guess: plan.Guess, Width: p.Width}
		if plan.Editable {
			lp.OnChange = func(word string) tea.Cmd {
				return func() tea.Msg { return WordChangedMsg{Word: word} }
			}
		}
		if i < len(g.lines) {
			lines[i] = g.lines[i]
		} else {
			lines[i] = newLine(g.styles)
		}
		cmds = append(cmds, lines[i].SetProps(lp))
	}
	g.lines = lines
	return tea.Batch(cmds...)
}

// Reset drops every line before planning p, so no typed text carries over.
// Owners call it when p belongs to a different game.
func (g *Grid) Reset(p Props) tea.Cmd {
	g.lines = nil
	return g.SetProps(p)
}

func (g *Grid) Props() Props { return g.props }

// Plans returns a copy of the current row plans.
func (g *Grid) Plans() []RowPlan {
	out := make([]RowPlan, len(g.plans))
	copy(out, g.plans)
	return out
}

func (g *Grid) Lines() []*Line { return g.lines }

// EditableRows lists the indexes of editable rows. With a contiguous
// history this is exactly one index, len(PastGuesses).
func (g *Grid) EditableRows() []int {
	var out []int
	for _, p := range g.plans {
		if p.Editable {
			out = append(out, p.Index)
		}
	}
	return out
}

// Update relays WordChangedMsg to the owner and feeds anything else to the
// editable rows. Relaying returns no command: the owner decides whether the
// history changes and pushes new props itself.
func (g *Grid) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(WordChangedMsg); ok {
		g.relay.Forward(msg)
		return nil
	}
	var cmds []tea.Cmd
	for i, plan := range g.plans {
		if plan.Editable {
			cmds = append(cmds, g.lines[i].Update(msg))
		}
	}
	return tea.Batch(cmds...)
}

func (g *Grid) View() string {
	rows := make([]string, len(g.lines))
	for i, l := range g.lines {
		rows[i] = l.View()
	}
	return g.styles.table.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
