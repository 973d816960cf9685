package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"procintel/pipeline/internal/models"
)

// Value buckets used for the derived value_category column.
const (
	ValueCategorySmall     = "Small"
	ValueCategoryMedium    = "Medium"
	ValueCategoryLarge     = "Large"
	ValueCategoryVeryLarge = "Very_Large"
)

// ValueCategory buckets an estimated value: <2M Small, <10M Medium,
// <50M Large, otherwise Very_Large.
func ValueCategory(valueEur int64) string {
	switch {
	case valueEur < 2_000_000:
		return ValueCategorySmall
	case valueEur < 10_000_000:
		return ValueCategoryMedium
	case valueEur < 50_000_000:
		return ValueCategoryLarge
	default:
		return ValueCategoryVeryLarge
	}
}

// LogValue is ln(1 + value), the standard log feature for skewed amounts.
func LogValue(valueEur int64) float64 {
	return math.Log1p(float64(valueEur))
}

var rawCSVHeader = []string{
	"contract_id", "rfp_title", "contract_type", "closing_date", "companies",
	"country", "bidder_count", "estimated_value_eur", "year",
	"risk_likelihood", "risk_impact", "risk_score", "complexity_category",
	"is_multi_national", "technology_level", "log_value", "value_category",
}

// WriteRawCSV writes the complete contract dataset, one row per record,
// with the derived log_value and value_category columns appended.
func WriteRawCSV(path string, records []models.ContractRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rawCSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.ContractID,
			rec.Title,
			rec.ContractType,
			rec.ClosingDate,
			rec.Companies,
			rec.Country,
			strconv.Itoa(rec.BidderCount),
			strconv.FormatInt(rec.EstimatedValueEur, 10),
			strconv.Itoa(rec.Year),
			string(rec.RiskLikelihood),
			string(rec.RiskImpact),
			strconv.Itoa(rec.RiskScore),
			rec.Complexity,
			strconv.FormatBool(rec.IsMultiNational),
			rec.TechnologyLevel,
			strconv.FormatFloat(LogValue(rec.EstimatedValueEur), 'f', 6, 64),
			ValueCategory(rec.EstimatedValueEur),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// FeatureCSVHeader returns the fixed feature-table column layout: numeric
// features, one-hot category columns in classification order (plus Other),
// one-hot technology columns, and the risk_score target last.
func FeatureCSVHeader() []string {
	header := []string{
		"estimated_value_eur", "log_value", "bidder_count",
		"is_high_tech", "is_complex", "is_multi_national",
	}
	for _, category := range append(ContractCategories(), CategoryOther) {
		header = append(header, "type_"+category)
	}
	for _, level := range []string{TechLevelHigh, TechLevelMedium, TechLevelLow} {
		header = append(header, "tech_"+level)
	}
	return append(header, "risk_score")
}

// WriteFeatureCSV writes the derived feature table used for model training.
// Column order is identical for every run so downstream training jobs can
// rely on it.
func WriteFeatureCSV(path string, records []models.ContractRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	categories := append(ContractCategories(), CategoryOther)
	techLevels := []string{TechLevelHigh, TechLevelMedium, TechLevelLow}

	w := csv.NewWriter(f)
	if err := w.Write(FeatureCSVHeader()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.EstimatedValueEur, 10),
			strconv.FormatFloat(LogValue(rec.EstimatedValueEur), 'f', 6, 64),
			strconv.Itoa(rec.BidderCount),
			oneHot(rec.TechnologyLevel == TechLevelHigh),
			oneHot(rec.Complexity == ComplexityHigh),
			oneHot(rec.IsMultiNational),
		}
		for _, category := range categories {
			row = append(row, oneHot(rec.ContractType == category))
		}
		for _, level := range techLevels {
			row = append(row, oneHot(rec.TechnologyLevel == level))
		}
		row = append(row, strconv.Itoa(rec.RiskScore))

		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func oneHot(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Summary is the JSON analysis summary emitted alongside the datasets.
// RiskDistribution is keyed by risk score.
type Summary struct {
	RunID            string         `json:"runId"`
	GeneratedAt      time.Time      `json:"generatedAt"`
	TotalContracts   int            `json:"totalContracts"`
	YearsCovered     []int          `json:"yearsCovered"`
	ContractTypes    map[string]int `json:"contractTypes"`
	AvgValueEur      int64          `json:"avgValueEur"`
	RiskDistribution map[string]int `json:"riskDistribution"`
}

// BuildSummary aggregates a record set into its analysis summary.
func BuildSummary(records []models.ContractRecord) Summary {
	summary := Summary{
		RunID:            uuid.NewString(),
		GeneratedAt:      time.Now().UTC(),
		TotalContracts:   len(records),
		ContractTypes:    make(map[string]int),
		RiskDistribution: make(map[string]int),
	}

	years := make(map[int]bool)
	var totalValue int64
	for _, rec := range records {
		years[rec.Year] = true
		summary.ContractTypes[rec.ContractType]++
		summary.RiskDistribution[strconv.Itoa(rec.RiskScore)]++
		totalValue += rec.EstimatedValueEur
	}

	for year := range years {
		summary.YearsCovered = append(summary.YearsCovered, year)
	}
	sort.Ints(summary.YearsCovered)

	if len(records) > 0 {
		summary.AvgValueEur = totalValue / int64(len(records))
	}

	return summary
}

// WriteSummaryJSON writes the analysis summary as indented JSON.
func WriteSummaryJSON(path string, summary Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
