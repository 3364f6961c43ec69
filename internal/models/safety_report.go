package models

type HazardSeverity string

const (
	HazardSeverityLow    HazardSeverity = "Low"
	HazardSeverityMedium HazardSeverity = "Medium"
	HazardSeverityHigh   HazardSeverity = "High"
)

// SafetyReport is a dated risk assessment embedded in a workspace. Reports
// are append-only history, stored newest first. ReportDate is a calendar
// date in YYYY-MM-DD form, not a timestamp.
type SafetyReport struct {
	ID         string   `json:"id"`
	ReportDate string   `json:"report_date"`
	RiskScore  int      `json:"risk_score"`
	Hazards    []Hazard `json:"hazards"`
	Summary    string   `json:"summary"`
}

type Hazard struct {
	Description    string         `json:"description"`
	Severity       HazardSeverity `json:"severity"`
	Recommendation string         `json:"recommendation"`
}

// SafetyScoreFor derives the workspace-wide safety score from a single
// report's risk score.
func SafetyScoreFor(riskScore int) int {
	score := 100 - riskScore
	if score < 0 {
		score = 0
	}
	return score
}
