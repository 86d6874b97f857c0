// Package render draws boards and solved paths for terminal output.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/zip/internal/domain"
)

var (
	clueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const cellWidth = 4

func pad(s string) string {
	if len(s) < cellWidth {
		return strings.Repeat(" ", cellWidth-len(s)) + s
	}
	return s
}

// Board renders the clue layout: clue numbers on their cells, dots elsewhere.
func Board(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell := b.CellAt(domain.Coordinate{Row: r, Col: c})
			if cell.IsClue() {
				sb.WriteString(clueStyle.Render(pad(strconv.Itoa(cell.Number))))
			} else {
				sb.WriteString(emptyStyle.Render(pad(".")))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Path renders a solved path as per-cell step numbers, with clue cells
// highlighted.
func Path(b *domain.Board, path []domain.Coordinate) string {
	steps := make([]int, b.TotalCells())
	for i, c := range path {
		steps[b.Index(c)] = i + 1
	}
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			at := domain.Coordinate{Row: r, Col: c}
			label := pad(strconv.Itoa(steps[b.Index(at)]))
			if b.CellAt(at).IsClue() {
				sb.WriteString(clueStyle.Render(label))
			} else {
				sb.WriteString(stepStyle.Render(label))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
