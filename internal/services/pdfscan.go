package services

import (
	"fmt"
	"log"
	"sort"

	"github.com/ledongthuc/pdf"
)

// cellGapPoints is the horizontal whitespace, in PDF points, that separates
// two table columns. Word gaps inside a cell stay well under this.
const cellGapPoints = 18.0

// ExtractTables reads every page of a PDF and reconstructs its tabular
// content. Each page becomes one table; each visual text row becomes one
// row of cells, split wherever the horizontal gap between words exceeds the
// column threshold. Pages that fail to parse are logged and skipped so one
// bad page never loses the rest of the document.
func ExtractTables(path string) ([][][]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer f.Close()

	var tables [][][]string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("Warning: failed to read page %d of %s: %v", pageNum, path, err)
			continue
		}

		var table [][]string
		for _, row := range rows {
			cells := SplitRowCells(row.Content)
			if len(cells) > 0 {
				table = append(table, cells)
			}
		}
		if len(table) > 0 {
			tables = append(tables, table)
		}
	}

	return tables, nil
}

// SplitRowCells groups the positioned words of one text row into cells. A
// new cell starts whenever the gap between the end of the previous word and
// the start of the next exceeds cellGapPoints.
func SplitRowCells(words []pdf.Text) []string {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []string
	current := sorted[0].S
	prevEnd := sorted[0].X + sorted[0].W

	for _, word := range sorted[1:] {
		if word.X-prevEnd > cellGapPoints {
			cells = append(cells, current)
			current = word.S
		} else if current == "" {
			current = word.S
		} else {
			current += " " + word.S
		}
		if end := word.X + word.W; end > prevEnd {
			prevEnd = end
		}
	}
	cells = append(cells, current)

	return cells
}
