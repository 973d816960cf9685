package models

// NoticeFields holds the structured fields extracted from a free-text
// procurement notice (award notices, procurement requests, service
// contracts). A zero value for any field means the notice did not state it.
type NoticeFields struct {
	ContractValueEur  int64    `json:"contractValueEur"`
	Duration          string   `json:"duration"`
	DurationMonths    int      `json:"durationMonths"`
	RiskLevel         string   `json:"riskLevel"`
	Classification    string   `json:"classification"`
	StrategicPriority string   `json:"strategicPriority"`
	KeyRequirements   []string `json:"keyRequirements"`
}

// Notice risk classes produced by the additive scoring in
// services.ClassifyNoticeRisk.
const (
	NoticeRiskLow    = "LOW_RISK"
	NoticeRiskMedium = "MEDIUM_RISK"
	NoticeRiskHigh   = "HIGH_RISK"
)
