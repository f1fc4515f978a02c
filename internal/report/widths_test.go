package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnWidths(t *testing.T) {
	header := []string{"ID", "Órgão", "Texto"}
	rows := [][]string{
		{"123456", "Vara", strings.Repeat("x", 200)},
		{"1", "1ª Vara Cível", ""},
	}

	got := ColumnWidths(header, rows, 2, 50)

	assert.Equal(t, []float64{8, 15, 50}, got)
}

func TestColumnWidths_HeaderDominates(t *testing.T) {
	got := ColumnWidths([]string{"Data Disponibilização"}, [][]string{{"2024-03-15"}}, 2, 50)

	assert.Equal(t, []float64{23}, got)
}

func TestColumnWidths_ShortRowsAndNoRows(t *testing.T) {
	assert.Equal(t, []float64{4, 6}, ColumnWidths([]string{"ID", "Meio"}, nil, 2, 50))
	assert.Equal(t, []float64{5, 6}, ColumnWidths([]string{"ID", "Meio"}, [][]string{{"abc"}}, 2, 6))
}
