// Package render formats query results for the terminal.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/dbsmedya/dinofacts/internal/dinosaur"
)

// Printer writes query results to w, optionally colored.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer. Color codes are emitted only when colored is set.
func New(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, color: colored}
}

func (p *Printer) paint(c color.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

// Longest prints the name and length in feet of each entry.
func (p *Printer) Longest(result map[string]float64) {
	if len(result) == 0 {
		fmt.Fprintln(p.w, "No dinosaurs to compare.")
		return
	}

	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(p.w, "%s: %s ft\n", p.paint(color.Bold, name), formatNumber(result[name]))
	}
}

// Description prints a description, highlighting its heading line.
func (p *Printer) Description(text string) {
	heading, rest, found := strings.Cut(text, "\n")
	if !found {
		fmt.Fprintln(p.w, text)
		return
	}
	fmt.Fprintln(p.w, p.paint(color.Bold, heading))
	fmt.Fprintln(p.w, rest)
}

// Values prints one projected value per line.
func (p *Printer) Values(mya float64, values []any) {
	if len(values) == 0 {
		fmt.Fprintf(p.w, "No dinosaurs were alive %s million years ago.\n", dinosaur.FormatMya(mya))
		return
	}
	for _, v := range values {
		fmt.Fprintln(p.w, FormatValue(v))
	}
}

// Fact prints the fun fact for name, or a notice when there is none.
func (p *Printer) Fact(name, fact string, ok bool) {
	if !ok {
		fmt.Fprintf(p.w, "No fun fact available for %s.\n", p.paint(color.Yellow, name))
		return
	}
	fmt.Fprintln(p.w, p.paint(color.Green, fact))
}

// FormatValue renders a projected field value as plain text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatNumber(x)
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = formatNumber(f)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FactNames prints the names in the fun fact table, in table order.
func (p *Printer) FactNames() {
	names := dinosaur.FactNames()
	for _, name := range names {
		fmt.Fprintln(p.w, name)
	}
	fmt.Fprintf(p.w, "\nTotal: %d dinosaur(s) with fun facts\n", len(names))
}
