package board

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	MineGlyph   = "*"
	HiddenGlyph = " "
)

// Render draws the player's view of the board: column index header, a rule,
// one line per row prefixed with its index, and a closing rule.
// Unrevealed cells are blank.
func (b *Board) Render() string {
	visible := make([][]string, b.size)
	for r := range visible {
		visible[r] = make([]string, b.size)
		for c := range visible[r] {
			if b.IsRevealed(r, c) {
				visible[r][c] = b.cells[r][c].String()
			} else {
				visible[r][c] = HiddenGlyph
			}
		}
	}

	// Column width is the widest cell in the column, widened to fit its index label
	widths := make([]int, b.size)
	for c := range widths {
		for r := range visible {
			widths[c] = max(widths[c], runewidth.StringWidth(visible[r][c]))
		}
		widths[c] = max(widths[c], runewidth.StringWidth(strconv.Itoa(c)))
	}
	labelWidth := len(strconv.Itoa(b.size - 1))

	lineWidth := labelWidth + 2
	for _, w := range widths {
		lineWidth += w + 3
	}
	rule := strings.Repeat("-", lineWidth)

	var sb strings.Builder

	header := make([]string, b.size)
	for c := range header {
		header[c] = runewidth.FillRight(strconv.Itoa(c), widths[c])
	}
	sb.WriteString(strings.TrimRight(strings.Repeat(" ", labelWidth+3)+strings.Join(header, "   "), " "))
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")

	for r, row := range visible {
		sb.WriteString(runewidth.FillRight(strconv.Itoa(r), labelWidth))
		sb.WriteString(" |")
		for c, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(cell, widths[c]))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(rule)

	return sb.String()
}
