package models

// Rating is one band of the 4x4 likelihood/impact risk matrix.
type Rating string

const (
	RatingLow      Rating = "Low"
	RatingMedium   Rating = "Medium"
	RatingHigh     Rating = "High"
	RatingVeryHigh Rating = "Very High"
)

// Rank returns the numeric position of the rating in the matrix.
// Unknown ratings rank as 1 so a malformed rating can never inflate a score.
func (r Rating) Rank() int {
	switch r {
	case RatingMedium:
		return 2
	case RatingHigh:
		return 3
	case RatingVeryHigh:
		return 4
	default:
		return 1
	}
}

// RiskAssessment is the derived risk profile of a single contract.
// Score is always the product of the two ranks, so the only valid values
// are {1, 2, 3, 4, 6, 8, 9, 12, 16}.
type RiskAssessment struct {
	Likelihood Rating `json:"likelihood"`
	Impact     Rating `json:"impact"`
	Score      int    `json:"score"`
	Complexity string `json:"complexity"`
}

// ContractRecord is one fully extracted bid-opening table row.
// Records are immutable after creation; the pipeline builds each one in a
// single pass and never updates it afterwards.
type ContractRecord struct {
	ContractID        string `json:"contractId"`
	Title             string `json:"rfpTitle"`
	ContractType      string `json:"contractType"`
	ClosingDate       string `json:"closingDate"`
	Companies         string `json:"companies"`
	Country           string `json:"country"`
	BidderCount       int    `json:"bidderCount"`
	EstimatedValueEur int64  `json:"estimatedValueEur"`
	Year              int    `json:"year"`
	RiskLikelihood    Rating `json:"riskLikelihood"`
	RiskImpact        Rating `json:"riskImpact"`
	RiskScore         int    `json:"riskScore"`
	Complexity        string `json:"complexityCategory"`
	IsMultiNational   bool   `json:"isMultiNational"`
	TechnologyLevel   string `json:"technologyLevel"`
}
