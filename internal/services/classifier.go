package services

import "strings"

// CategoryKeywords binds a contract category to the title keywords that
// select it. Classification walks the list in declaration order and the
// first category with a matching keyword wins, so ties between overlapping
// keyword sets are resolved explicitly rather than by map iteration order.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// CategoryOther is the fallback when no keyword list matches a title.
const CategoryOther = "Other"

var contractCategories = []CategoryKeywords{
	{"Ammunition", []string{"CARTRIDGE", "PROJECTILE", "MORTAR", "BOMBS", "MUNITION"}},
	{"Logistics_Support", []string{"LOGISTIC", "SUPPORT", "MAINTENANCE", "SUPPLY"}},
	{"IT_Infrastructure", []string{"MICROSOFT", "INFRASTRUCTURE", "SOFTWARE", "SYSTEM"}},
	{"Medical_Equipment", []string{"MEDICAL", "SURGICAL", "HEATER", "INFUSION"}},
	{"Communications", []string{"COMMUNICATION", "SATELLITE", "CIS", "SHELTER"}},
	{"Vehicles_Transport", []string{"VEHICLE", "TRUCK", "TRAILER", "CARGO"}},
	{"Construction", []string{"CONSTRUCTION", "BUILDING", "WAREHOUSE"}},
	{"Training", []string{"TRAINING", "SIMULATOR", "SERVICES"}},
	{"Fuel_Energy", []string{"FUEL", "GENERATOR", "POWER", "UPS"}},
	{"Defense_Systems", []string{"DEFENSE", "SECURITY", "GBAD", "RADAR"}},
}

// ContractCategories returns the known categories in classification order,
// without the Other fallback. Exporters rely on this order for stable
// one-hot column layout.
func ContractCategories() []string {
	names := make([]string, 0, len(contractCategories))
	for _, c := range contractCategories {
		names = append(names, c.Category)
	}
	return names
}

// CategorizeContract maps a free-text RFP title to a contract category.
// Matching is case-insensitive substring containment.
func CategorizeContract(title string) string {
	upper := strings.ToUpper(title)
	for _, c := range contractCategories {
		for _, keyword := range c.Keywords {
			if strings.Contains(upper, keyword) {
				return c.Category
			}
		}
	}
	return CategoryOther
}

// Technology levels assigned by AssessTechnologyLevel.
const (
	TechLevelHigh   = "High"
	TechLevelMedium = "Medium"
	TechLevelLow    = "Low"
)

var (
	highTechKeywords   = []string{"SATELLITE", "AI", "CYBER", "ADVANCED", "SIMULATOR", "RADAR"}
	mediumTechKeywords = []string{"ELECTRONIC", "COMMUNICATION", "SOFTWARE", "SYSTEM"}
)

// AssessTechnologyLevel buckets a title into a coarse technology tier.
func AssessTechnologyLevel(title string) string {
	upper := strings.ToUpper(title)
	if containsAny(upper, highTechKeywords) {
		return TechLevelHigh
	}
	if containsAny(upper, mediumTechKeywords) {
		return TechLevelMedium
	}
	return TechLevelLow
}

// bidderCountries are the country names recognized when deciding whether a
// companies blob spans more than one nation.
var bidderCountries = []string{
	"Germany", "Italy", "France", "Spain", "USA", "Canada", "Norway",
	"Netherlands", "Belgium", "Turkey", "Poland", "United Kingdom",
}

// IsMultinational reports whether more than one recognized country name
// appears in the companies blob.
func IsMultinational(companies string) bool {
	if companies == "" {
		return false
	}
	count := 0
	for _, country := range bidderCountries {
		if strings.Contains(companies, country) {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

// CountBidders estimates the number of bidding companies from a companies
// cell. The source tables list one company per line, so the count is the
// line count clamped to [1, 10]. An empty cell means no bidders.
func CountBidders(companies string) int {
	if companies == "" {
		return 0
	}
	count := strings.Count(companies, "\n") + 1
	if count > 10 {
		count = 10
	}
	if count < 1 {
		count = 1
	}
	return count
}

func containsAny(upper string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}
