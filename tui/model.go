// Package tui renders the board in a terminal with Bubble Tea. Arrow keys or
// hjkl move the cursor, space or enter toggles the cell under it.
package tui

import (
	"fmt"
	"strings"

	"lightsout/controller"
	"lightsout/engine"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	litGlyph       = "■"
	unlitGlyph     = "·"
	VictoryMessage = "Congratulations! You won!"
	helpLine       = "arrows/hjkl: move  space/enter: toggle  q: quit"
)

type Model struct {
	ctrl   *controller.Controller
	cursor engine.Coord
}

func New(ctrl *controller.Controller) Model {
	return Model{ctrl: ctrl}
}

func (m Model) Cursor() engine.Coord {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}

	// the grid is gone once won; only quitting is left
	if m.ctrl.HasWon() {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.move(engine.Up)
	case "down", "j":
		m.move(engine.Down)
	case "left", "h":
		m.move(engine.Left)
	case "right", "l":
		m.move(engine.Right)
	case " ", "enter":
		m.ctrl.CellHandler(m.cursor)()
	}

	return m, nil
}

func (m *Model) move(dir engine.Direction) {
	next := engine.GetNeighbor(dir, m.cursor)
	if m.ctrl.State().Board.InBounds(next) {
		m.cursor = next
	}
}

func (m Model) View() string {
	var sb strings.Builder

	if m.ctrl.HasWon() {
		sb.WriteString(VictoryMessage)
		sb.WriteString("\n\nq: quit\n")
		return sb.String()
	}

	state := m.ctrl.State()
	for _, row := range state.Board.Cells {
		for _, cell := range row {
			glyph := unlitGlyph
			if cell.Lit {
				glyph = litGlyph
			}
			if cell.Coord == m.cursor {
				sb.WriteString("[" + glyph + "]")
			} else {
				sb.WriteString(" " + glyph + " ")
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\nMoves: %d\n%s\n", state.Moves, helpLine)
	return sb.String()
}

// Run blocks until the user quits.
func Run(ctrl *controller.Controller) error {
	_, err := tea.NewProgram(New(ctrl)).Run()
	return err
}
