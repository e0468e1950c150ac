package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/dinofacts/internal/dinosaur"
)

// maxCellWidth caps any single column; longer cells are truncated with "…".
const maxCellWidth = 28

var tableHeader = []string{"ID", "NAME", "LENGTH (m)", "PERIOD", "MYA"}

// Table prints records as aligned columns.
func (p *Printer) Table(records []dinosaur.Record) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			r.Name,
			formatNumber(r.LengthInMeters),
			r.Period,
			r.MyaString(),
		})
	}

	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	fmt.Fprintln(p.w, p.paint(color.Bold, p.line(tableHeader, widths)))
	for _, row := range rows {
		fmt.Fprintln(p.w, p.line(row, widths))
	}
	fmt.Fprintf(p.w, "\nTotal: %d dinosaur(s)\n", len(records))
}

func (p *Printer) line(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		cell = runewidth.Truncate(cell, widths[i], "…")
		if i == len(cells)-1 {
			padded[i] = cell
			continue
		}
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(padded, "  ")
}
