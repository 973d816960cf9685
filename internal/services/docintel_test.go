package services

import (
	"testing"

	"procintel/pipeline/internal/models"
)

const sampleNotice = `
CONTRACT AWARD NOTICE
Project: Advanced Cybersecurity Infrastructure
Contract Value: €3,250,000
Duration: 30 months
Classification: NATO UNCLASSIFIED
Risk Assessment: HIGH - Critical security infrastructure
Strategic Priority: URGENT - Cyber threat mitigation

Key Requirements:
- Zero-trust architecture implementation
- 24/7 SOC monitoring capabilities
- GDPR compliance
- Multi-factor authentication integration
- Advanced threat detection
- Extra requirement beyond the cap

Deliverables:
- Security architecture design
`

func TestExtractNoticeFields(t *testing.T) {
	fields := ExtractNoticeFields(sampleNotice)

	if fields.ContractValueEur != 3_250_000 {
		t.Errorf("Expected value 3250000, got %d", fields.ContractValueEur)
	}
	if fields.DurationMonths != 30 {
		t.Errorf("Expected 30 months, got %d", fields.DurationMonths)
	}
	if fields.Duration != "30 months" {
		t.Errorf("Expected duration %q, got %q", "30 months", fields.Duration)
	}
	if fields.RiskLevel != "HIGH" {
		t.Errorf("Expected risk level %q, got %q", "HIGH", fields.RiskLevel)
	}
	if fields.Classification != "UNCLASSIFIED" {
		t.Errorf("Expected classification %q, got %q", "UNCLASSIFIED", fields.Classification)
	}
	if fields.StrategicPriority != "URGENT" {
		t.Errorf("Expected priority %q, got %q", "URGENT", fields.StrategicPriority)
	}
	if len(fields.KeyRequirements) != 5 {
		t.Fatalf("Expected 5 requirements (capped), got %d", len(fields.KeyRequirements))
	}
	if fields.KeyRequirements[0] != "Zero-trust architecture implementation" {
		t.Errorf("Unexpected first requirement %q", fields.KeyRequirements[0])
	}
}

func TestExtractNoticeFields_EstimatedValueVariant(t *testing.T) {
	fields := ExtractNoticeFields("Estimated Value: €890,000\nTimeline: 18 months")

	if fields.ContractValueEur != 890_000 {
		t.Errorf("Expected value 890000, got %d", fields.ContractValueEur)
	}
	if fields.DurationMonths != 18 {
		t.Errorf("Expected 18 months, got %d", fields.DurationMonths)
	}
}

func TestExtractNoticeFields_Empty(t *testing.T) {
	fields := ExtractNoticeFields("No structured fields here at all.")

	if fields.ContractValueEur != 0 || fields.DurationMonths != 0 ||
		fields.RiskLevel != "" || fields.Classification != "" ||
		len(fields.KeyRequirements) != 0 {
		t.Errorf("Expected zero fields for unstructured text, got %+v", fields)
	}
}

func TestClassifyNoticeRisk(t *testing.T) {
	cases := []struct {
		name     string
		fields   models.NoticeFields
		expected string
	}{
		{
			name: "high value long duration urgent",
			fields: models.NoticeFields{
				ContractValueEur:  3_250_000, // +3
				DurationMonths:    30,        // +2
				StrategicPriority: "URGENT",  // +3
			},
			expected: models.NoticeRiskHigh,
		},
		{
			name: "mid value mid duration",
			fields: models.NoticeFields{
				ContractValueEur:  1_850_000, // +2
				DurationMonths:    24,        // +1
				StrategicPriority: "HIGH",    // +2
			},
			expected: models.NoticeRiskMedium,
		},
		{
			name:     "small contract",
			fields:   models.NoticeFields{ContractValueEur: 500_000}, // +1
			expected: models.NoticeRiskLow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyNoticeRisk(tc.fields); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
