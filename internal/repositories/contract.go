package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"procintel/pipeline/internal/models"
)

type ContractRepository struct {
	db *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

type SearchParams struct {
	Category   string
	Year       int
	MinScore   int
	SearchText string
	Limit      int
	Offset     int
}

type SearchResult struct {
	Items        []models.ContractRecord
	TotalRecords int
	Limit        int
	Offset       int
	HasMore      bool
}

const contractColumns = `
	contract_id, rfp_title, contract_type, closing_date, companies, country,
	bidder_count, estimated_value_eur, year, risk_likelihood, risk_impact,
	risk_score, complexity_category, is_multi_national, technology_level`

// UpsertContract stores a record keyed by (contract_id, year) and reports
// whether it was "new" or "updated".
func (r *ContractRepository) UpsertContract(ctx context.Context, rec models.ContractRecord) (string, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM contract WHERE contract_id = $1 AND year = $2)",
		rec.ContractID, rec.Year,
	).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("failed to check contract existence: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO contract (`+contractColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (contract_id, year) DO UPDATE SET
			rfp_title = EXCLUDED.rfp_title,
			contract_type = EXCLUDED.contract_type,
			closing_date = EXCLUDED.closing_date,
			companies = EXCLUDED.companies,
			country = EXCLUDED.country,
			bidder_count = EXCLUDED.bidder_count,
			estimated_value_eur = EXCLUDED.estimated_value_eur,
			risk_likelihood = EXCLUDED.risk_likelihood,
			risk_impact = EXCLUDED.risk_impact,
			risk_score = EXCLUDED.risk_score,
			complexity_category = EXCLUDED.complexity_category,
			is_multi_national = EXCLUDED.is_multi_national,
			technology_level = EXCLUDED.technology_level,
			last_updated = now()
	`,
		rec.ContractID, rec.Title, rec.ContractType, rec.ClosingDate, rec.Companies,
		rec.Country, rec.BidderCount, rec.EstimatedValueEur, rec.Year,
		string(rec.RiskLikelihood), string(rec.RiskImpact), rec.RiskScore,
		rec.Complexity, rec.IsMultiNational, rec.TechnologyLevel,
	)
	if err != nil {
		return "", fmt.Errorf("failed to upsert contract: %w", err)
	}

	if exists {
		return "updated", nil
	}
	return "new", nil
}

// SearchContracts searches stored contracts with filters, pagination, and
// case-insensitive title search.
func (r *ContractRepository) SearchContracts(ctx context.Context, params SearchParams) (*SearchResult, error) {
	// Build WHERE clause
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("contract_type = $%d", argPos))
		args = append(args, params.Category)
		argPos++
	}

	if params.Year > 0 {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argPos))
		args = append(args, params.Year)
		argPos++
	}

	if params.MinScore > 0 {
		conditions = append(conditions, fmt.Sprintf("risk_score >= $%d", argPos))
		args = append(args, params.MinScore)
		argPos++
	}

	if params.SearchText != "" {
		conditions = append(conditions, fmt.Sprintf("rfp_title ILIKE $%d", argPos))
		args = append(args, "%"+params.SearchText+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM contract %s", whereClause)
	var totalRecords int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalRecords); err != nil {
		return nil, fmt.Errorf("failed to count contracts: %w", err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM contract
		%s
		ORDER BY risk_score DESC, estimated_value_eur DESC, contract_id
		LIMIT $%d OFFSET $%d
	`, contractColumns, whereClause, argPos, argPos+1)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	contracts, err := scanContracts(rows)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Items:        contracts,
		TotalRecords: totalRecords,
		Limit:        limit,
		Offset:       offset,
		HasMore:      offset+limit < totalRecords,
	}, nil
}

// GetContractByID retrieves all stored years of one contract, newest first.
func (r *ContractRepository) GetContractByID(ctx context.Context, contractID string) ([]models.ContractRecord, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM contract
		WHERE contract_id = $1
		ORDER BY year DESC
	`, contractColumns), contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	defer rows.Close()

	contracts, err := scanContracts(rows)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, fmt.Errorf("contract %s not found", contractID)
	}
	return contracts, nil
}

func scanContracts(rows pgx.Rows) ([]models.ContractRecord, error) {
	var contracts []models.ContractRecord
	for rows.Next() {
		var rec models.ContractRecord
		var likelihood, impact string

		err := rows.Scan(
			&rec.ContractID, &rec.Title, &rec.ContractType, &rec.ClosingDate,
			&rec.Companies, &rec.Country, &rec.BidderCount, &rec.EstimatedValueEur,
			&rec.Year, &likelihood, &impact, &rec.RiskScore, &rec.Complexity,
			&rec.IsMultiNational, &rec.TechnologyLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}

		rec.RiskLikelihood = models.Rating(likelihood)
		rec.RiskImpact = models.Rating(impact)
		contracts = append(contracts, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contracts: %w", err)
	}
	return contracts, nil
}

// ContractSummary aggregates the stored dataset for the summary endpoint.
type ContractSummary struct {
	TotalContracts   int            `json:"totalContracts"`
	AvgValueEur      int64          `json:"avgValueEur"`
	ContractTypes    map[string]int `json:"contractTypes"`
	RiskDistribution map[string]int `json:"riskDistribution"`
}

// GetSummary computes counts by category, the risk-score histogram, and the
// mean estimated value over everything stored.
func (r *ContractRepository) GetSummary(ctx context.Context) (*ContractSummary, error) {
	summary := &ContractSummary{
		ContractTypes:    make(map[string]int),
		RiskDistribution: make(map[string]int),
	}

	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(AVG(estimated_value_eur), 0)::BIGINT FROM contract",
	).Scan(&summary.TotalContracts, &summary.AvgValueEur)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate contracts: %w", err)
	}

	rows, err := r.db.Query(ctx,
		"SELECT contract_type, COUNT(*) FROM contract GROUP BY contract_type",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count by type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var contractType string
		var count int
		if err := rows.Scan(&contractType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		summary.ContractTypes[contractType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type counts: %w", err)
	}

	riskRows, err := r.db.Query(ctx,
		"SELECT risk_score, COUNT(*) FROM contract GROUP BY risk_score ORDER BY risk_score",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count by risk score: %w", err)
	}
	defer riskRows.Close()
	for riskRows.Next() {
		var score, count int
		if err := riskRows.Scan(&score, &count); err != nil {
			return nil, fmt.Errorf("failed to scan risk count: %w", err)
		}
		summary.RiskDistribution[fmt.Sprintf("%d", score)] = count
	}
	if err := riskRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk counts: %w", err)
	}

	return summary, nil
}
