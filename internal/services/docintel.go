package services

import (
	"regexp"
	"strconv"
	"strings"

	"procintel/pipeline/internal/models"
)

// Compiled regex patterns (reused across calls)
var (
	contractValuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Contract Value:\s*€([\d,]+)`),
		regexp.MustCompile(`Estimated Value:\s*€([\d,]+)`),
		regexp.MustCompile(`Value:\s*€([\d,]+)`),
	}
	durationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Duration:\s*(\d+)\s*months`),
		regexp.MustCompile(`Timeline:\s*(\d+)\s*months`),
	}
	riskLevelPattern = regexp.MustCompile(`Risk[^:\r\n]*:\s*([A-Z-]+)`)
	priorityPattern  = regexp.MustCompile(`Strategic (?:Priority|Importance):\s*([A-Za-z]+)`)
)

// maxKeyRequirements caps the bullet list carried on a notice.
const maxKeyRequirements = 5

// ExtractNoticeFields pulls the structured fields out of a free-text
// procurement notice. Fields the notice does not state are left at their
// zero value; extraction never fails.
func ExtractNoticeFields(content string) models.NoticeFields {
	fields := models.NoticeFields{
		Classification:  extractClassification(content),
		KeyRequirements: extractRequirements(content),
	}

	for _, pattern := range contractValuePatterns {
		if match := pattern.FindStringSubmatch(content); match != nil {
			digits := strings.ReplaceAll(match[1], ",", "")
			if value, err := strconv.ParseInt(digits, 10, 64); err == nil {
				fields.ContractValueEur = value
			}
			break
		}
	}

	for _, pattern := range durationPatterns {
		if match := pattern.FindStringSubmatch(content); match != nil {
			if months, err := strconv.Atoi(match[1]); err == nil {
				fields.DurationMonths = months
				fields.Duration = match[1] + " months"
			}
			break
		}
	}

	if match := riskLevelPattern.FindStringSubmatch(content); match != nil {
		fields.RiskLevel = match[1]
	}

	if match := priorityPattern.FindStringSubmatch(content); match != nil {
		fields.StrategicPriority = strings.ToUpper(match[1])
	}

	return fields
}

func extractClassification(content string) string {
	if strings.Contains(content, "NATO UNCLASSIFIED") {
		return "UNCLASSIFIED"
	}
	if strings.Contains(content, "NATO SECRET") {
		return "SECRET"
	}
	return ""
}

// extractRequirements collects the dash-bulleted lines that follow a
// "Requirements:" or "Key Requirements:" heading, stopping at the first
// blank line after the list starts.
func extractRequirements(content string) []string {
	var requirements []string
	inRequirements := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.Contains(line, "Key Requirements:") || strings.Contains(line, "Requirements:"):
			inRequirements = true
		case inRequirements && strings.HasPrefix(trimmed, "-"):
			requirements = append(requirements, strings.TrimSpace(strings.TrimPrefix(trimmed, "-")))
			if len(requirements) == maxKeyRequirements {
				return requirements
			}
		case inRequirements && trimmed == "":
			return requirements
		}
	}

	return requirements
}

// ClassifyNoticeRisk buckets a notice into a coarse risk class by additive
// scoring: contract value, duration and stated strategic priority each
// contribute a fixed number of points.
func ClassifyNoticeRisk(fields models.NoticeFields) string {
	score := 0

	switch {
	case fields.ContractValueEur > 2_000_000:
		score += 3
	case fields.ContractValueEur > 1_000_000:
		score += 2
	default:
		score++
	}

	switch {
	case fields.DurationMonths > 24:
		score += 2
	case fields.DurationMonths > 12:
		score++
	}

	switch fields.StrategicPriority {
	case "URGENT":
		score += 3
	case "HIGH":
		score += 2
	}

	switch {
	case score >= 6:
		return models.NoticeRiskHigh
	case score >= 4:
		return models.NoticeRiskMedium
	default:
		return models.NoticeRiskLow
	}
}
