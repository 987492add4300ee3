// Package analyzer generates multibagger analysis reports.
//
// A report is assembled from a randomised base score, a sector multiplier
// and static text tables. The generator holds no mutable state of its own;
// all randomness comes from an injected source, so a seeded source
// reproduces a report exactly.
package analyzer

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/seenimoa/multibagger/internal/sector"
	"github.com/seenimoa/multibagger/pkg/models"
)

// Score parameters.
const (
	BaseScoreMin  = 50
	BaseScoreSpan = 40 // base score is drawn from [50, 89]
	MaxScore      = 95
)

// Financial metric ranges, as (minimum, number of integer steps).
const (
	revenueGrowthMin   = 15
	revenueGrowthSpan  = 30 // 15-44
	profitMarginMin    = 8
	profitMarginSpan   = 15 // 8-22
	roeMin             = 12
	roeSpan            = 18 // 12-29
	debtEquityMinCents = 30
	debtEquitySpan     = 120 // 0.30-1.49
)

// Rand is the random source a Generator draws from. IntN returns a value
// in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand uses the process-wide math/rand/v2 source, which is safe
// for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// lockedRand serialises access to a seeded source.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Generator produces AnalysisResults.
type Generator struct {
	rng Rand
}

// New returns a Generator drawing from rng. A nil rng uses the
// process-wide random source. The caller owns synchronisation of a
// non-nil rng if the Generator is shared across goroutines.
func New(rng Rand) *Generator {
	if rng == nil {
		rng = globalRand{}
	}
	return &Generator{rng: rng}
}

// NewSeeded returns a Generator over a deterministic PCG source. It is
// safe for concurrent use; the interleaving of concurrent callers decides
// which draws each one sees.
func NewSeeded(seed uint64) *Generator {
	return New(&lockedRand{r: rand.New(rand.NewPCG(seed, seed))})
}

// Generate builds the report for companyName in sectorName. It never
// fails; rejecting blank names is the caller's job. sectorName is matched
// exactly against the sector table, and anything unrecognised gets the
// neutral multiplier and the generic outlook.
//
// Draw order: base score, strength count, risk count, growth label,
// revenue growth, profit margin, debt/equity, ROE.
func (g *Generator) Generate(companyName, sectorName string) models.AnalysisResult {
	code, _ := sector.Parse(sectorName)

	base := BaseScoreMin + g.rng.IntN(BaseScoreSpan)
	score := FinalScore(base, code.Multiplier())
	tier := models.TierForScore(score)

	strengthPhrase := sectorName
	if strengthPhrase == "" {
		strengthPhrase = strengthSectorFallback
	}
	fill := strings.NewReplacer(phCompany, companyName, phSector, strengthPhrase)

	nStrengths := minStrengths + g.rng.IntN(maxStrengths-minStrengths+1)
	strengths := make([]string, nStrengths)
	for i := range strengths {
		strengths[i] = fill.Replace(strengthTemplates[i])
	}

	nRisks := minRisks + g.rng.IntN(maxRisks-minRisks+1)
	risks := make([]string, nRisks)
	copy(risks, riskTemplates[:nRisks])

	labels := growthLabels[tier]
	growth := labels[g.rng.IntN(len(labels))]

	metrics := models.FinancialMetrics{
		RevenueGrowth: fmt.Sprintf("%d%% YoY", revenueGrowthMin+g.rng.IntN(revenueGrowthSpan)),
		ProfitMargin:  fmt.Sprintf("%d%%", profitMarginMin+g.rng.IntN(profitMarginSpan)),
		DebtToEquity:  decimal.New(int64(debtEquityMinCents+g.rng.IntN(debtEquitySpan)), -2).StringFixed(2),
		ROE:           fmt.Sprintf("%d%%", roeMin+g.rng.IntN(roeSpan)),
	}

	tt := tierTexts[tier]
	return models.AnalysisResult{
		CompanyName:      companyName,
		MultibaggerScore: score,
		GrowthPotential:  growth,
		KeyStrengths:     strengths,
		Risks:            risks,
		FinancialMetrics: metrics,
		IndustryOutlook:  Outlook(code, sectorName),
		Recommendation:   strings.ReplaceAll(tt.recommendation, phCompany, companyName),
		TimeHorizon:      tt.timeHorizon,
		RiskLevel:        tt.riskLevel,
	}
}

// FinalScore applies the multiplier to a base score, floors it and caps
// it at MaxScore.
func FinalScore(base int, multiplier float64) int {
	score := int(math.Floor(float64(base) * multiplier))
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Outlook returns the bespoke paragraph for code, or the generic one
// naming sectorName ("यह सेक्टर" when empty).
func Outlook(code sector.Code, sectorName string) string {
	if info := code.Info(); info.HasOutlook() {
		return info.Outlook
	}
	name := sectorName
	if name == "" {
		name = outlookSectorFallback
	}
	return strings.ReplaceAll(genericOutlook, phSector, name)
}
