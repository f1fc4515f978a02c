package report

import "github.com/mattn/go-runewidth"

// ColumnWidths returns one width per header column: the widest cell (header
// included) measured in display columns, plus padding, capped at maxWidth.
func ColumnWidths(header []string, rows [][]string, padding, maxWidth int) []float64 {
	widths := make([]int, len(header))

	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([]float64, len(widths))
	for i, w := range widths {
		out[i] = float64(min(w+padding, maxWidth))
	}

	return out
}
