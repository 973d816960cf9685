package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"procintel/pipeline/internal/repositories"
	"procintel/pipeline/internal/services"
)

const (
	// Advisory lock key for the ingestion job
	ingestionLockKey = 1
	defaultPDFFolder = "bid_pdfs"
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

	pdfFolder := os.Getenv("PDF_FOLDER")
	if pdfFolder == "" {
		pdfFolder = defaultPDFFolder
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer pool.Close()

	// Try to acquire advisory lock
	var lockAcquired bool
	err = pool.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", ingestionLockKey).Scan(&lockAcquired)
	if err != nil {
		log.Fatal("Failed to check advisory lock:", err)
	}

	if !lockAcquired {
		log.Println("Another ingestion job is already running. Exiting gracefully.")
		os.Exit(0)
	}

	// Ensure lock is released on exit
	defer func() {
		_, unlockErr := pool.Exec(ctx, "SELECT pg_advisory_unlock($1)", ingestionLockKey)
		if unlockErr != nil {
			log.Printf("Warning: Failed to release advisory lock: %v", unlockErr)
		}
	}()

	runID := uuid.NewString()
	log.Printf("✅ Acquired advisory lock, starting ingestion run %s...", runID)

	seed := time.Now().UnixNano()
	if seedStr := os.Getenv("PIPELINE_SEED"); seedStr != "" {
		if parsed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			seed = parsed
		}
	}

	pipeline := services.NewContractPipeline(rand.New(rand.NewSource(seed)))
	records, stats, err := pipeline.ProcessFolder(pdfFolder)
	if err != nil {
		log.Fatalf("❌ Ingestion failed: %v", err)
	}

	repo := repositories.NewContractRepository(pool)

	newCount, updatedCount, errorCount := 0, 0, 0
	for _, rec := range records {
		result, err := repo.UpsertContract(ctx, rec)
		if err != nil {
			errorCount++
			// Log error but continue processing
			log.Printf("Error storing contract %s: %v", rec.ContractID, err)
			continue
		}
		switch result {
		case "new":
			newCount++
		case "updated":
			updatedCount++
		}
	}

	log.Println("✅ Ingestion completed")
	log.Printf("📊 Statistics:")
	log.Printf("   Files processed: %d", stats.Files)
	log.Printf("   Tables scanned: %d", stats.Tables)
	log.Printf("   Contracts extracted: %d", stats.Extracted)
	log.Printf("   Rows skipped: %d", stats.Skipped)
	log.Printf("   New: %d", newCount)
	log.Printf("   Updated: %d", updatedCount)
	log.Printf("   Errors: %d", stats.Errors+errorCount)

	if stats.Errors+errorCount > 0 {
		log.Printf("⚠️  Warning: %d errors occurred during ingestion", stats.Errors+errorCount)
		os.Exit(1)
	}
}
