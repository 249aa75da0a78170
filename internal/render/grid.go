package render

import (
	"fmt"
	"strings"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// DefaultPlotsPerRow is the number of plot thumbnails per grid row on a
// desktop screen. Two per row keeps spectrograms legible without forcing
// the reader to scroll for every time range.
const DefaultPlotsPerRow = 2

// ScaffoldPlots arranges plots into a Bootstrap grid with perRow
// thumbnails per row. Cell widths are perRow-ths of the 12-unit grid.
// The final row may be short; a fully-saturated final row must not be
// followed by an empty one, and a short final row must still be closed.
//
// Zero plots renders no grid at all (an empty fragment) rather than an
// empty row.
func ScaffoldPlots(plots []model.Plot, perRow int) string {
	if len(plots) == 0 {
		return ""
	}
	if perRow < 1 || perRow > 12 {
		perRow = DefaultPlotsPerRow
	}
	width := 12 / perRow

	var b strings.Builder
	for i, p := range plots {
		if i%perRow == 0 {
			b.WriteString(`<div class="row" style="width:96%;">` + "\n")
		}
		fmt.Fprintf(&b, `<div class="col-sm-%d">`+"\n%s\n</div>\n", width, FancyboxImage(p, nil, nil))
		if i%perRow == perRow-1 {
			b.WriteString("</div>\n")
		}
	}
	// Close the dangling row when the final row is short.
	if len(plots)%perRow != 0 {
		b.WriteString("</div>\n")
	}
	return b.String()
}
