package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func init() {
	// .env is optional for local runs
	_ = godotenv.Load()
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer pool.Close()

	// Create the contract table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS contract (
			contract_id VARCHAR NOT NULL,
			rfp_title TEXT NOT NULL,
			contract_type VARCHAR NOT NULL,
			closing_date VARCHAR,
			companies TEXT,
			country VARCHAR,
			bidder_count INT NOT NULL DEFAULT 0,
			estimated_value_eur BIGINT NOT NULL,
			year INT NOT NULL,
			risk_likelihood VARCHAR NOT NULL,
			risk_impact VARCHAR NOT NULL,
			risk_score INT NOT NULL,
			complexity_category VARCHAR NOT NULL,
			is_multi_national BOOLEAN NOT NULL DEFAULT false,
			technology_level VARCHAR NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (contract_id, year)
		);
	`)
	if err != nil {
		log.Fatal("Failed to create contract table:", err)
	}
	log.Println("✅ Created contract table")

	// Indexes for the search endpoint filters
	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_contract_type ON contract (contract_type);
		CREATE INDEX IF NOT EXISTS idx_contract_risk_score ON contract (risk_score DESC);
		CREATE INDEX IF NOT EXISTS idx_contract_year ON contract (year);
	`)
	if err != nil {
		log.Fatal("Failed to create indexes:", err)
	}
	log.Println("✅ Created contract indexes")
}
