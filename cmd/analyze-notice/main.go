package main

import (
	"fmt"
	"log"
	"os"

	"procintel/pipeline/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run ./cmd/analyze-notice <notice-text-file>")
	}

	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read notice: %v", err)
	}

	fields := services.ExtractNoticeFields(string(content))
	riskClass := services.ClassifyNoticeRisk(fields)

	fmt.Printf("📋 Notice Analysis:\n")
	if fields.ContractValueEur > 0 {
		fmt.Printf("   Contract value: EUR %d\n", fields.ContractValueEur)
	} else {
		fmt.Printf("   Contract value: not specified\n")
	}
	if fields.Duration != "" {
		fmt.Printf("   Duration: %s\n", fields.Duration)
	}
	if fields.RiskLevel != "" {
		fmt.Printf("   Stated risk level: %s\n", fields.RiskLevel)
	}
	if fields.Classification != "" {
		fmt.Printf("   Classification: %s\n", fields.Classification)
	}
	if fields.StrategicPriority != "" {
		fmt.Printf("   Strategic priority: %s\n", fields.StrategicPriority)
	}
	if len(fields.KeyRequirements) > 0 {
		fmt.Printf("   Key requirements:\n")
		for _, req := range fields.KeyRequirements {
			fmt.Printf("      - %s\n", req)
		}
	}
	fmt.Printf("\n🎯 Risk classification: %s\n", riskClass)
}
