package models

// Tier buckets a multibagger score. It drives which label pools and
// tier-specific texts an analysis uses.
type Tier string

const (
	TierHigh   Tier = "high"   // score >= 75
	TierMedium Tier = "medium" // 50 <= score < 75
	TierLow    Tier = "low"    // score < 50
)

// Tier thresholds on the 0-100 score scale.
const (
	HighScoreThreshold   = 75
	MediumScoreThreshold = 50
)

// TierForScore classifies a score. The three tiers partition the score
// range with no gaps at the 50 and 75 boundaries.
func TierForScore(score int) Tier {
	switch {
	case score >= HighScoreThreshold:
		return TierHigh
	case score >= MediumScoreThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// FinancialMetrics holds the display-formatted headline ratios.
type FinancialMetrics struct {
	RevenueGrowth string `json:"revenueGrowth"` // e.g. "27% YoY"
	ProfitMargin  string `json:"profitMargin"`  // e.g. "14%"
	DebtToEquity  string `json:"debtToEquity"`  // e.g. "0.85"
	ROE           string `json:"roe"`           // e.g. "19%"
}

// AnalysisResult is the multibagger report returned for one company.
type AnalysisResult struct {
	CompanyName      string           `json:"companyName"`
	MultibaggerScore int              `json:"multibaggerScore"` // 0-95
	GrowthPotential  string           `json:"growthPotential"`
	KeyStrengths     []string         `json:"keyStrengths"`
	Risks            []string         `json:"risks"`
	FinancialMetrics FinancialMetrics `json:"financialMetrics"`
	IndustryOutlook  string           `json:"industryOutlook"`
	Recommendation   string           `json:"recommendation"`
	TimeHorizon      string           `json:"timeHorizon"`
	RiskLevel        string           `json:"riskLevel"`
}

// Tier returns the tier of the result's score.
func (r *AnalysisResult) Tier() Tier {
	return TierForScore(r.MultibaggerScore)
}

// AnalyzeRequest is the input of one analysis.
type AnalyzeRequest struct {
	CompanyName string `json:"companyName"`
	Sector      string `json:"sector"` // optional; "" means none selected
}
