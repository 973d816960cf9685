package services

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"procintel/pipeline/internal/models"
)

// ExtractionStats accumulates the outcome of one pipeline run. Skipped
// counts rows that were recognizably not contract data; Errors counts
// sources or rows that failed outright.
type ExtractionStats struct {
	Files     int
	Tables    int
	Extracted int
	Skipped   int
	Errors    int
}

// ContractPipeline chains row parsing, classification, value estimation and
// risk scoring over the tables of a bid-opening document set. Processing is
// sequential and single-pass; every per-row failure is logged and skipped,
// never fatal to the batch.
type ContractPipeline struct {
	estimator *ValueEstimator
	scorer    *RiskScorer
}

// NewContractPipeline builds a pipeline around the given random source,
// which feeds both value jitter and impact sampling. Seed it for
// reproducible runs.
func NewContractPipeline(rng *rand.Rand) *ContractPipeline {
	return &ContractPipeline{
		estimator: NewValueEstimator(rng),
		scorer:    NewRiskScorer(rng),
	}
}

// BuildRecord turns a parsed raw row into a full ContractRecord: category,
// estimated value, bidder count and the derived risk assessment.
func (p *ContractPipeline) BuildRecord(raw *RawContractRow, year int) models.ContractRecord {
	contractType := CategorizeContract(raw.Title)
	estimatedValue := p.estimator.Estimate(raw.Title)
	bidderCount := CountBidders(raw.Companies)
	risk := p.scorer.Assess(raw.Title, contractType, estimatedValue, bidderCount)

	return models.ContractRecord{
		ContractID:        raw.CollectiveNumber,
		Title:             raw.Title,
		ContractType:      contractType,
		ClosingDate:       raw.ClosingDate,
		Companies:         raw.Companies,
		Country:           raw.Country,
		BidderCount:       bidderCount,
		EstimatedValueEur: estimatedValue,
		Year:              year,
		RiskLikelihood:    risk.Likelihood,
		RiskImpact:        risk.Impact,
		RiskScore:         risk.Score,
		Complexity:        risk.Complexity,
		IsMultiNational:   IsMultinational(raw.Companies),
		TechnologyLevel:   AssessTechnologyLevel(raw.Title),
	}
}

// ExtractFromTables walks a document's tables and extracts every data row
// below each table's header. Tables without a header row, or with fewer
// than two rows, hold no contract data and are passed over.
func (p *ContractPipeline) ExtractFromTables(tables [][][]string, year int, stats *ExtractionStats) []models.ContractRecord {
	var records []models.ContractRecord

	for _, table := range tables {
		if len(table) < 2 {
			continue
		}
		headerRow := FindHeaderRow(table)
		if headerRow < 0 {
			continue
		}
		stats.Tables++

		for _, row := range table[headerRow+1:] {
			raw := ParseContractRow(row)
			if raw == nil {
				stats.Skipped++
				continue
			}
			records = append(records, p.BuildRecord(raw, year))
			stats.Extracted++
		}
	}

	return records
}

// ProcessFolder runs the pipeline over every PDF in a folder. An unreadable
// file aborts that file only; the batch continues. The returned error is
// non-nil only when the folder itself cannot be read.
func (p *ContractPipeline) ProcessFolder(folder string) ([]models.ContractRecord, *ExtractionStats, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	stats := &ExtractionStats{}
	var records []models.ContractRecord

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		stats.Files++

		path := filepath.Join(folder, entry.Name())
		tables, err := ExtractTables(path)
		if err != nil {
			log.Printf("Error processing %s: %v", path, err)
			stats.Errors++
			continue
		}

		year := FileYear(entry.Name())
		extracted := p.ExtractFromTables(tables, year, stats)
		log.Printf("   Extracted %d contracts from %s", len(extracted), entry.Name())
		records = append(records, extracted...)
	}

	return records, stats, nil
}

var yearPattern = regexp.MustCompile(`20(\d{2})`)

// defaultFileYear is assumed when a filename carries no 20xx year.
const defaultFileYear = 2025

// FileYear extracts the four-digit year embedded in a source filename.
func FileYear(name string) int {
	match := yearPattern.FindStringSubmatch(name)
	if match == nil {
		return defaultFileYear
	}
	year, err := strconv.Atoi("20" + match[1])
	if err != nil {
		return defaultFileYear
	}
	return year
}
