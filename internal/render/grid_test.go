package render

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// createTestPlots returns n plots with well-formed filenames.
func createTestPlots(n int) []model.Plot {
	plots := make([]model.Plot, 0, n)
	for i := 0; i < n; i++ {
		plots = append(plots, model.NewPlot(fmt.Sprintf("L1-TEST_CHANNEL-%d.png", 1<<i), ""))
	}
	return plots
}

// divBalance returns the number of opened and closed div elements in a
// fragment, counted with a real tokenizer so attribute text cannot skew
// the result.
func divBalance(t *testing.T, fragment string) (open, closed int) {
	t.Helper()

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return open, closed
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "div" {
				open++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "div" {
				closed++
			}
		}
	}
}

// TestScaffoldPlots tests the thumbnail grid builder.
func TestScaffoldPlots(t *testing.T) {
	t.Parallel()

	t.Run("row count is the ceiling of plots over row width", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			plots  int
			perRow int
			rows   int
		}{
			{plots: 4, perRow: 2, rows: 2},
			{plots: 3, perRow: 2, rows: 2},
			{plots: 2, perRow: 2, rows: 1},
			{plots: 5, perRow: 3, rows: 2},
			{plots: 1, perRow: 4, rows: 1},
		}
		for _, tt := range tests {
			tt := tt
			name := fmt.Sprintf("%d plots %d per row", tt.plots, tt.perRow)
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				got := ScaffoldPlots(createTestPlots(tt.plots), tt.perRow)
				if rows := strings.Count(got, `<div class="row"`); rows != tt.rows {
					t.Errorf("got %d rows, expected %d", rows, tt.rows)
				}
				open, closed := divBalance(t, got)
				if open != closed {
					t.Errorf("unbalanced markup: %d opened divs, %d closed", open, closed)
				}
			})
		}
	})

	t.Run("cell width divides the twelve unit grid", func(t *testing.T) {
		t.Parallel()

		got := ScaffoldPlots(createTestPlots(3), 3)
		if !strings.Contains(got, `<div class="col-sm-4">`) {
			t.Errorf("expected third-width cells, got %q", got)
		}
		got = ScaffoldPlots(createTestPlots(2), 2)
		if !strings.Contains(got, `<div class="col-sm-6">`) {
			t.Errorf("expected half-width cells, got %q", got)
		}
	})

	t.Run("saturated final row is not followed by an empty one", func(t *testing.T) {
		t.Parallel()

		got := ScaffoldPlots(createTestPlots(4), 2)
		if strings.Contains(got, "</div>\n</div>\n</div>\n") {
			t.Errorf("unexpected extra row close: %q", got)
		}
		open, closed := divBalance(t, got)
		if open != closed {
			t.Errorf("unbalanced markup: %d opened divs, %d closed", open, closed)
		}
	})

	t.Run("zero plots renders no grid", func(t *testing.T) {
		t.Parallel()
		if got := ScaffoldPlots(nil, 2); got != "" {
			t.Errorf("got %q, expected empty fragment", got)
		}
	})

	t.Run("out of range row width falls back to two", func(t *testing.T) {
		t.Parallel()

		for _, perRow := range []int{0, -1, 13} {
			got := ScaffoldPlots(createTestPlots(2), perRow)
			if !strings.Contains(got, `<div class="col-sm-6">`) {
				t.Errorf("perRow=%d: expected half-width cells, got %q", perRow, got)
			}
		}
	})

	t.Run("each cell holds one thumbnail", func(t *testing.T) {
		t.Parallel()

		got := ScaffoldPlots(createTestPlots(3), 2)
		if n := strings.Count(got, `class="fancybox"`); n != 3 {
			t.Errorf("got %d thumbnails, expected 3", n)
		}
	})
}
