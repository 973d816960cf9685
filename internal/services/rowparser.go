package services

import "strings"

// headerMarkers identify the header row of a bid opening table. A row
// containing any of these (case-insensitive) is the column header; only rows
// below it are data rows.
var headerMarkers = []string{"COLLECTIVE", "RFP TITLE", "CLOSING DATE", "COMPANIES"}

// RawContractRow is the positional slice of a data row before
// classification and scoring: collective number, title, closing date,
// companies blob and optional country.
type RawContractRow struct {
	CollectiveNumber string
	Title            string
	ClosingDate      string
	Companies        string
	Country          string
}

// FindHeaderRow returns the index of the header row in a table, or -1 when
// the table carries no recognizable header. Tables without a header (or with
// nothing below it) hold no contract data.
func FindHeaderRow(table [][]string) int {
	for i, row := range table {
		joined := strings.ToUpper(strings.Join(row, " "))
		for _, marker := range headerMarkers {
			if strings.Contains(joined, marker) {
				return i
			}
		}
	}
	return -1
}

// ParseContractRow extracts the raw fields from one table row. It returns
// nil when the row is not a data row: fewer than four non-empty cells, an
// empty or header-text title, or a "BID OPENING" section marker. A nil
// return is a skip signal, not an error.
func ParseContractRow(row []string) *RawContractRow {
	cleaned := make([]string, len(row))
	nonEmpty := 0
	for i, cell := range row {
		cleaned[i] = strings.TrimSpace(cell)
		if cleaned[i] != "" {
			nonEmpty++
		}
	}

	if len(cleaned) < 4 || nonEmpty < 4 {
		return nil
	}

	title := cleaned[1]
	upperTitle := strings.ToUpper(title)
	if title == "" || upperTitle == "RFP TITLE" || upperTitle == "TITLE" {
		return nil
	}
	if strings.Contains(upperTitle, "BID OPENING") {
		return nil
	}

	raw := &RawContractRow{
		CollectiveNumber: cleaned[0],
		Title:            title,
		ClosingDate:      cleaned[2],
		Companies:        cleaned[3],
	}
	if len(cleaned) > 4 {
		raw.Country = cleaned[4]
	}
	return raw
}
