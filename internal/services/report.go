package services

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"procintel/pipeline/internal/models"
)

// PrintSummaryReport renders the console dashboard for a pipeline run:
// per-category counts and average values, the risk-score histogram, and the
// run totals.
func PrintSummaryReport(w io.Writer, records []models.ContractRecord, stats *ExtractionStats) {
	color.New(color.FgCyan, color.Bold).Fprintln(w, "PROCUREMENT CONTRACT INTELLIGENCE SUMMARY")

	if len(records) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No contracts extracted")
		return
	}

	type categoryAgg struct {
		count      int
		totalValue int64
		totalScore int
	}
	byCategory := make(map[string]*categoryAgg)
	riskCounts := make(map[int]int)
	var totalValue int64

	for _, rec := range records {
		agg, ok := byCategory[rec.ContractType]
		if !ok {
			agg = &categoryAgg{}
			byCategory[rec.ContractType] = agg
		}
		agg.count++
		agg.totalValue += rec.EstimatedValueEur
		agg.totalScore += rec.RiskScore
		riskCounts[rec.RiskScore]++
		totalValue += rec.EstimatedValueEur
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Contracts", "Avg Value (EUR)", "Avg Risk Score"})
	for _, category := range categories {
		agg := byCategory[category]
		table.Append([]string{
			category,
			strconv.Itoa(agg.count),
			fmt.Sprintf("%d", agg.totalValue/int64(agg.count)),
			fmt.Sprintf("%.1f", float64(agg.totalScore)/float64(agg.count)),
		})
	}
	table.Render()

	scores := make([]int, 0, len(riskCounts))
	for score := range riskCounts {
		scores = append(scores, score)
	}
	sort.Ints(scores)

	riskTable := tablewriter.NewWriter(w)
	riskTable.SetHeader([]string{"Risk Score", "Contracts"})
	for _, score := range scores {
		riskTable.Append([]string{strconv.Itoa(score), strconv.Itoa(riskCounts[score])})
	}
	riskTable.Render()

	color.New(color.FgGreen).Fprintf(w, "Contracts extracted: %d\n", len(records))
	color.New(color.FgGreen).Fprintf(w, "Total estimated value: EUR %d\n", totalValue)
	color.New(color.FgGreen).Fprintf(w, "Average value: EUR %d\n", totalValue/int64(len(records)))
	if stats != nil {
		fmt.Fprintf(w, "Files: %d  Tables: %d  Skipped rows: %d  Errors: %d\n",
			stats.Files, stats.Tables, stats.Skipped, stats.Errors)
	}
}
