package board

import (
	"strings"
	"testing"
)

func TestRenderHidden(t *testing.T) {
	b, _ := FromMines(3, []Coord{{0, 0}})

	want := strings.Join([]string{
		"    0   1   2",
		"---------------",
		"0 |   |   |   |",
		"1 |   |   |   |",
		"2 |   |   |   |",
		"---------------",
	}, "\n")

	if got := b.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderRevealAll(t *testing.T) {
	b, _ := FromMines(3, []Coord{{0, 0}})
	b.RevealAll()

	want := strings.Join([]string{
		"    0   1   2",
		"---------------",
		"0 | * | 1 | 0 |",
		"1 | 1 | 1 | 0 |",
		"2 | 0 | 0 | 0 |",
		"---------------",
	}, "\n")

	if got := b.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderPartial(t *testing.T) {
	b, _ := FromMines(3, []Coord{{0, 0}})
	if _, err := b.Reveal(2, 2); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"    0   1   2",
		"---------------",
		"0 |   | 1 | 0 |",
		"1 | 1 | 1 | 0 |",
		"2 | 0 | 0 | 0 |",
		"---------------",
	}, "\n")

	if got := b.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderAlignsWideIndices(t *testing.T) {
	b, _ := FromMines(11, []Coord{{5, 5}})
	b.RevealAll()

	lines := strings.Split(b.Render(), "\n")
	if len(lines) != 11+3 {
		t.Fatalf("got %d lines, want 14", len(lines))
	}

	rule := lines[1]
	if strings.Trim(rule, "-") != "" {
		t.Fatalf("second line is not a rule: %q", rule)
	}
	if lines[len(lines)-1] != rule {
		t.Errorf("closing rule %q differs from %q", lines[len(lines)-1], rule)
	}

	for r, line := range lines[2 : len(lines)-1] {
		if len(line) != len(rule) {
			t.Errorf("row %d width %d, rule width %d", r, len(line), len(rule))
		}
	}

	// Header label for column 10 sits above the column's cells
	row0 := lines[2]
	headerAt := strings.Index(lines[0], "10")
	if headerAt < 0 {
		t.Fatalf("header missing column 10: %q", lines[0])
	}
	if row0[headerAt-2:headerAt] != "| " {
		t.Errorf("column 10 header at %d not aligned with cells in %q", headerAt, row0)
	}
	if !strings.HasPrefix(lines[12], "10 |") {
		t.Errorf("row label for row 10: %q", lines[12])
	}
}

func TestRenderIsPure(t *testing.T) {
	b, _ := FromMines(4, []Coord{{1, 2}})
	b.Reveal(3, 0)

	first := b.Render()
	count := b.RevealedCount()
	if second := b.Render(); second != first {
		t.Error("Render output changed between calls")
	}
	if b.RevealedCount() != count {
		t.Error("Render mutated revealed set")
	}
}
