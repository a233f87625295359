package display

import (
	"strings"
)

// countColors maps neighbor counts to their colors; zero stays plain
var countColors = [9]string{
	1: Blue,
	2: Green,
	3: Yellow,
	4: Magenta,
	5: Red,
	6: Red,
	7: Red,
	8: Red,
}

// ColorizeBoard adds ANSI colors to a rendered board: indices cyan, counts
// by value, mines bold red. Stripping the escape codes gives back the input.
func ColorizeBoard(rendered string) string {
	lines := strings.Split(rendered, "\n")
	var sb strings.Builder

	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		switch {
		case i == 0:
			// Column indices
			writeDigits(&sb, line, Cyan)
		case strings.HasPrefix(line, "-"):
			sb.WriteString(line)
		default:
			label, cells, ok := strings.Cut(line, "|")
			if !ok {
				sb.WriteString(line)
				continue
			}
			writeDigits(&sb, label, Cyan)
			sb.WriteByte('|')
			writeCells(&sb, cells)
		}
	}

	return sb.String()
}

func writeDigits(sb *strings.Builder, s, color string) {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteString(color)
			sb.WriteRune(r)
			sb.WriteString(Reset)
		} else {
			sb.WriteRune(r)
		}
	}
}

func writeCells(sb *strings.Builder, s string) {
	for _, r := range s {
		switch {
		case r == '*':
			sb.WriteString(Bold + Red)
			sb.WriteRune(r)
			sb.WriteString(Reset)
		case r >= '1' && r <= '8':
			sb.WriteString(countColors[r-'0'])
			sb.WriteRune(r)
			sb.WriteString(Reset)
		default:
			sb.WriteRune(r)
		}
	}
}

// ColorForOutcome returns a colored outcome label
func ColorForOutcome(outcome string) string {
	if outcome == "detonated" {
		return Red + outcome + Reset
	}
	return Green + outcome + Reset
}
