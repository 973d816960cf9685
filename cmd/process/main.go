package main

import (
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"procintel/pipeline/internal/services"
)

const (
	defaultPDFFolder    = "bid_pdfs"
	defaultOutputFolder = "contract_data"
)

func init() {
	// .env is optional for local runs
	_ = godotenv.Load()
}

func main() {
	pdfFolder := os.Getenv("PDF_FOLDER")
	if pdfFolder == "" {
		pdfFolder = defaultPDFFolder
	}
	if len(os.Args) > 1 {
		pdfFolder = os.Args[1]
	}

	outputFolder := os.Getenv("OUTPUT_FOLDER")
	if outputFolder == "" {
		outputFolder = defaultOutputFolder
	}

	// Seeded runs are reproducible; default to a time seed
	seed := time.Now().UnixNano()
	if seedStr := os.Getenv("PIPELINE_SEED"); seedStr != "" {
		if parsed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			seed = parsed
		}
	}

	log.Printf("🔍 Processing bid opening PDFs in %s...", pdfFolder)

	pipeline := services.NewContractPipeline(rand.New(rand.NewSource(seed)))
	records, stats, err := pipeline.ProcessFolder(pdfFolder)
	if err != nil {
		log.Fatalf("❌ Processing failed: %v", err)
	}

	if len(records) == 0 {
		log.Fatal("❌ No contracts extracted. Check the PDF folder.")
	}

	if err := os.MkdirAll(outputFolder, 0o755); err != nil {
		log.Fatalf("❌ Failed to create output folder: %v", err)
	}

	rawFile := filepath.Join(outputFolder, "contracts_raw.csv")
	if err := services.WriteRawCSV(rawFile, records); err != nil {
		log.Fatalf("❌ Failed to write raw dataset: %v", err)
	}

	featureFile := filepath.Join(outputFolder, "contracts_features.csv")
	if err := services.WriteFeatureCSV(featureFile, records); err != nil {
		log.Fatalf("❌ Failed to write feature table: %v", err)
	}

	summaryFile := filepath.Join(outputFolder, "analysis_summary.json")
	if err := services.WriteSummaryJSON(summaryFile, services.BuildSummary(records)); err != nil {
		log.Fatalf("❌ Failed to write summary: %v", err)
	}

	services.PrintSummaryReport(os.Stdout, records, stats)

	log.Printf("📁 Files saved in %s/:", outputFolder)
	log.Printf("   1. %s - Complete contract data", rawFile)
	log.Printf("   2. %s - Training feature table", featureFile)
	log.Printf("   3. %s - Analysis summary", summaryFile)
}
