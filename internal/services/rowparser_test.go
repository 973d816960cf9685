package services

import "testing"

func TestParseContractRow_ValidRow(t *testing.T) {
	row := []string{"4500123456", "SATELLITE COMMUNICATION SHELTER", "15 Mar 2024", "Alpha GmbH\nBeta SpA", "Germany"}

	raw := ParseContractRow(row)
	if raw == nil {
		t.Fatal("Expected parse to succeed")
	}
	if raw.CollectiveNumber != "4500123456" {
		t.Errorf("Expected collective number %q, got %q", "4500123456", raw.CollectiveNumber)
	}
	if raw.Title != "SATELLITE COMMUNICATION SHELTER" {
		t.Errorf("Expected title %q, got %q", "SATELLITE COMMUNICATION SHELTER", raw.Title)
	}
	if raw.ClosingDate != "15 Mar 2024" {
		t.Errorf("Expected closing date %q, got %q", "15 Mar 2024", raw.ClosingDate)
	}
	if raw.Country != "Germany" {
		t.Errorf("Expected country %q, got %q", "Germany", raw.Country)
	}
}

func TestParseContractRow_MissingCountry(t *testing.T) {
	row := []string{"4500123456", "TRUCK CARGO TRAILER", "01 Jun 2023", "Gamma SA"}

	raw := ParseContractRow(row)
	if raw == nil {
		t.Fatal("Expected parse to succeed")
	}
	if raw.Country != "" {
		t.Errorf("Expected empty country, got %q", raw.Country)
	}
}

func TestParseContractRow_TooFewCells(t *testing.T) {
	row := []string{"4500123456", "MEDICAL SUPPLIES", "01 Jun 2023"}

	if raw := ParseContractRow(row); raw != nil {
		t.Errorf("Expected nil for 3-cell row, got %+v", raw)
	}
}

func TestParseContractRow_TooFewNonEmptyCells(t *testing.T) {
	// Five cells but only three carry content
	row := []string{"4500123456", "MEDICAL SUPPLIES", "", "  ", "Italy"}

	if raw := ParseContractRow(row); raw != nil {
		t.Errorf("Expected nil for row with 3 non-empty cells, got %+v", raw)
	}
}

func TestParseContractRow_HeaderText(t *testing.T) {
	for _, title := range []string{"RFP TITLE", "rfp title", "TITLE", "Title"} {
		row := []string{"COLLECTIVE", title, "CLOSING DATE", "COMPANIES"}
		if raw := ParseContractRow(row); raw != nil {
			t.Errorf("Expected nil for header title %q, got %+v", title, raw)
		}
	}
}

func TestParseContractRow_BidOpeningMarker(t *testing.T) {
	row := []string{"14/2024", "Bid Opening 14/2024", "some date", "some text"}

	if raw := ParseContractRow(row); raw != nil {
		t.Errorf("Expected nil for bid opening marker row, got %+v", raw)
	}
}

func TestFindHeaderRow_Found(t *testing.T) {
	table := [][]string{
		{"Bid Opening Session 3/2024"},
		{"Collective No", "RFP Title", "Closing Date", "Companies", "Country"},
		{"4500123456", "FUEL SUPPLY", "01 Jun 2024", "Delta AS"},
	}

	if got := FindHeaderRow(table); got != 1 {
		t.Errorf("Expected header row 1, got %d", got)
	}
}

func TestFindHeaderRow_NotFound(t *testing.T) {
	table := [][]string{
		{"Some narrative text"},
		{"More narrative"},
	}

	if got := FindHeaderRow(table); got != -1 {
		t.Errorf("Expected -1 for headerless table, got %d", got)
	}
}
