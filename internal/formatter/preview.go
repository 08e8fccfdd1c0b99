// Package formatter provides table rendering for the normalization preview.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderTable renders a header and a set of rows as a pipe-delimited table
// with columns aligned on display width. Rows shorter than the header are
// padded with empty cells; longer rows keep their extra cells.
func RenderTable(header []string, rows [][]string) string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	// Calculate max widths using display width, not byte length, so wide
	// runes keep the columns aligned.
	colWidths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	measure(header)

	for _, row := range rows {
		measure(row)
	}

	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			padding := colWidths[j] - runewidth.StringWidth(content)
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(header)

	sb.WriteString("|")

	for j := 0; j < colCount; j++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", colWidths[j]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return strings.TrimRight(sb.String(), "\n")
}
