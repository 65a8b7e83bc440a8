package t2048

import (
	"math/rand"
	"testing"
)

func TestRowCompress(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
		changed  bool
	}{
		{"already packed", Row{4, 2, 0, 0}, Row{4, 2, 0, 0}, false},
		{"gap in front", Row{0, 0, 2, 4}, Row{2, 4, 0, 0}, true},
		{"gaps between", Row{2, 0, 0, 2}, Row{2, 2, 0, 0}, true},
		{"order preserved", Row{0, 8, 0, 2}, Row{8, 2, 0, 0}, true},
		{"empty row", Row{}, Row{}, false},
		{"full row", Row{2, 4, 8, 16}, Row{2, 4, 8, 16}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.input
			changed := row.compress()
			if row != tt.expected {
				t.Errorf("compress(%v) = %v, want %v", tt.input, row, tt.expected)
			}
			if changed != tt.changed {
				t.Errorf("compress(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestRowSlide(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
		score    int
	}{
		{"simple merge", Row{2, 2, 0, 0}, Row{4, 0, 0, 0}, 4},
		{"merge with trailing tile", Row{2, 2, 2, 0}, Row{4, 2, 0, 0}, 4},
		{"double merge", Row{2, 2, 2, 2}, Row{4, 4, 0, 0}, 8},
		{"one merge per tile", Row{4, 4, 4, 4}, Row{8, 8, 0, 0}, 16},
		{"fresh tile not re-merged", Row{4, 4, 8, 0}, Row{8, 8, 0, 0}, 8},
		{"two different pairs", Row{2, 2, 4, 4}, Row{4, 8, 0, 0}, 12},
		{"middle pair", Row{2, 4, 4, 2}, Row{2, 8, 2, 0}, 8},
		{"no merge possible", Row{2, 4, 8, 16}, Row{2, 4, 8, 16}, 0},
		{"slide with gap", Row{0, 0, 2, 2}, Row{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", Row{2, 0, 0, 2}, Row{4, 0, 0, 0}, 4},
		{"single tile", Row{0, 4, 0, 0}, Row{4, 0, 0, 0}, 0},
		{"empty row", Row{}, Row{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Grid{tt.input}
			_, score, _ := g.slideLeft()
			if g[0] != tt.expected {
				t.Errorf("slideLeft(%v) = %v, want %v", tt.input, g[0], tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeftGrid(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	changed, score, produced := g.slideLeft()

	if g != expected {
		t.Errorf("slideLeft: got\n%v\nwant\n%v", g, expected)
	}
	if !changed {
		t.Error("slideLeft should indicate board changed")
	}
	if score != 4+8+4+4 {
		t.Errorf("slideLeft score = %d, want 20", score)
	}
	if produced != 8 {
		t.Errorf("slideLeft produced = %d, want 8", produced)
	}

	_, _, produced = g.slideLeft()
	if produced != 8 {
		t.Errorf("second slideLeft should merge 4+4 into 8, produced = %d", produced)
	}
}

func TestRotateClockwise(t *testing.T) {
	g := Grid{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	expected := Grid{
		{13, 9, 5, 1},
		{14, 10, 6, 2},
		{15, 11, 7, 3},
		{16, 12, 8, 4},
	}

	if got := g.Rotate(); got != expected {
		t.Errorf("Rotate: got\n%v\nwant\n%v", got, expected)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 100 {
		var g Grid
		for y := range Size {
			for x := range Size {
				g[y][x] = rng.Intn(2048)
			}
		}

		if got := g.Rotate().Rotate().Rotate().Rotate(); got != g {
			t.Fatalf("case %d: four rotations changed the grid:\n%v\nwant\n%v", i, got, g)
		}
		for _, dir := range Directions {
			n := dir.rotations()
			if got := g.RotateN(n).RotateN(4 - n); got != g {
				t.Fatalf("case %d: %s rotation not restored", i, dir)
			}
		}
	}
}

func TestGridAggregates(t *testing.T) {
	g := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	if got := g.EmptyCount(); got != 8 {
		t.Errorf("EmptyCount = %d, want 8", got)
	}
	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := g.Sum(); got != 2+8+64+256+512+2048+16+64 {
		t.Errorf("Sum = %d, want 2970", got)
	}
}
