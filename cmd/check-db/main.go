package main

import (
	"context"
	"fmt"
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

	var total int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM contract").Scan(&total)
	if err != nil {
		log.Fatal("Failed to count:", err)
	}

	var years int
	err = pool.QueryRow(ctx, "SELECT COUNT(DISTINCT year) FROM contract").Scan(&years)
	if err != nil {
		log.Fatal("Failed to count years:", err)
	}

	fmt.Printf("📊 Database Statistics:\n")
	fmt.Printf("   Contracts: %d\n", total)
	fmt.Printf("   Years covered: %d\n", years)

	// Show the highest-risk contracts
	rows, err := pool.Query(ctx, `
		SELECT contract_id, rfp_title, risk_score
		FROM contract ORDER BY risk_score DESC, estimated_value_eur DESC LIMIT 5
	`)
	if err != nil {
		log.Fatal("Failed to query:", err)
	}
	defer rows.Close()

	fmt.Printf("\n📋 Highest risk contracts:\n")
	for rows.Next() {
		var contractID, title string
		var score int
		if err := rows.Scan(&contractID, &title, &score); err != nil {
			continue
		}
		fmt.Printf("   %s: %s (risk score: %d)\n", contractID, title, score)
	}
}
